package entity_test

import (
	"testing"

	"dental-clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestInventarioItem_NivelAlerta(t *testing.T) {
	cases := []struct {
		name     string
		actual   int
		minimo   int
		nivel    string
		severity string
	}{
		{"sin stock", 0, 5, entity.AlertaSinStock, "danger"},
		{"critico en el minimo", 5, 5, entity.AlertaStockCritico, "warning"},
		{"critico bajo el minimo", 3, 5, entity.AlertaStockCritico, "warning"},
		{"bajo dentro del margen", 7, 5, entity.AlertaStockBajo, "info"},
		{"justo en el margen", 6, 4, entity.AlertaStockBajo, "info"},
		{"normal", 20, 5, entity.AlertaNormal, "success"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := &entity.InventarioItem{StockActual: tc.actual, StockMinimo: tc.minimo}
			nivel, severity := item.NivelAlerta()
			assert.Equal(t, tc.nivel, nivel)
			assert.Equal(t, tc.severity, severity)
		})
	}
}
