package usecase

import (
	"testing"

	"dental-clinic-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanzasUsecase_BuildTransaccion(t *testing.T) {
	u := &finanzasUsecase{}

	tx, err := u.buildTransaccion(&dto.CreateTransaccionRequest{
		Tipo:      "ingreso",
		Monto:     "1500.50",
		Categoria: "Consultas",
		Fecha:     "2025-03-14",
	})
	require.NoError(t, err)
	assert.Equal(t, "ingreso", tx.Tipo)
	assert.Equal(t, "1500.5", tx.Monto.String())
	assert.Equal(t, "2025-03-14", tx.Fecha.Format("2006-01-02"))
}

func TestFinanzasUsecase_BuildTransaccion_Invalid(t *testing.T) {
	u := &finanzasUsecase{}

	_, err := u.buildTransaccion(&dto.CreateTransaccionRequest{
		Tipo: "prestamo", Monto: "10", Categoria: "x", Fecha: "2025-03-14",
	})
	assert.ErrorIs(t, err, ErrInvalidTipo)

	_, err = u.buildTransaccion(&dto.CreateTransaccionRequest{
		Tipo: "gasto", Monto: "0", Categoria: "x", Fecha: "2025-03-14",
	})
	assert.ErrorIs(t, err, ErrInvalidMonto)

	_, err = u.buildTransaccion(&dto.CreateTransaccionRequest{
		Tipo: "gasto", Monto: "-5", Categoria: "x", Fecha: "2025-03-14",
	})
	assert.ErrorIs(t, err, ErrInvalidMonto)
}

func TestParseRango(t *testing.T) {
	rango, err := parseRango("2025-01-01", "2025-03-31")
	require.NoError(t, err)
	assert.False(t, rango.Desde.IsZero())
	assert.False(t, rango.Hasta.IsZero())

	rango, err = parseRango("", "")
	require.NoError(t, err)
	assert.True(t, rango.Desde.IsZero())

	_, err = parseRango("14/03/2025", "")
	assert.Error(t, err)
}
