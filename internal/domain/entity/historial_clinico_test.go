package entity_test

import (
	"testing"

	"dental-clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestHistorialClinico_ResumenMotivo(t *testing.T) {
	cases := []struct {
		name   string
		motivo string
		want   string
	}{
		{"plain text", "Dolor en molar superior", "Dolor en molar superior"},
		{"empty", "", "Consulta registrada"},
		{"whitespace", "   ", "Consulta registrada"},
		{"json motivo_principal", `{"motivo_principal":"Limpieza","detalle":"x"}`, "Limpieza"},
		{"json descripcion fallback", `{"descripcion":"Control de ortodoncia"}`, "Control de ortodoncia"},
		{"json motivo fallback", `{"motivo":"Extracción"}`, "Extracción"},
		{"json first string value", `{"zona":"superior","dolor":"agudo"}`, "agudo"},
		{"json without strings", `{"piezas":[18,17]}`, "Consulta registrada"},
		{"malformed json treated as text", `{"motivo":`, `{"motivo":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &entity.HistorialClinico{MotivoConsulta: tc.motivo}
			assert.Equal(t, tc.want, h.ResumenMotivo())
		})
	}
}
