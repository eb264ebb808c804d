package repository_test

import (
	"testing"
	"time"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTransaccionRepository_MontoRoundTrip(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTransaccionRepository()

	monto := decimal.RequireFromString("1234.56")
	mock.ExpectExec("INSERT INTO `transacciones_financieras`").
		WillReturnResult(sqlmock.NewResult(7, 1))

	err := repo.Create(db, &entity.TransaccionFinanciera{
		Tipo:      entity.TransaccionIngreso,
		Monto:     monto,
		Categoria: "Tratamientos",
		Fecha:     time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "tipo", "monto", "categoria"}).
		AddRow(7, "ingreso", "1234.56", "Tratamientos")
	mock.ExpectQuery("SELECT (.+) FROM `transacciones_financieras`").
		WillReturnRows(rows)

	stored, err := repo.FindByID(db, 7)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.True(t, stored.Monto.Equal(monto))
	require.Equal(t, "1234.56", stored.Monto.StringFixed(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaccionRepository_TotalsByTipo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTransaccionRepository()

	rows := sqlmock.NewRows([]string{"tipo", "total"}).
		AddRow("ingreso", "1500.00").
		AddRow("gasto", "320.50")
	mock.ExpectQuery("SELECT (.+) FROM `transacciones_financieras`").
		WillReturnRows(rows)

	totals, err := repo.TotalsByTipo(db, nil)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	require.Equal(t, "ingreso", totals[0].Tipo)
	require.Equal(t, "1500.00", totals[0].Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaccionRepository_TotalsByMes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTransaccionRepository()

	rows := sqlmock.NewRows([]string{"mes", "tipo", "total"}).
		AddRow("2025-02", "ingreso", "900.00").
		AddRow("2025-03", "ingreso", "600.00")
	mock.ExpectQuery("SELECT (.+) FROM `transacciones_financieras`").
		WillReturnRows(rows)

	totals, err := repo.TotalsByMes(db, nil)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	require.Equal(t, "2025-02", totals[0].Mes)
	require.NoError(t, mock.ExpectationsWereMet())
}
