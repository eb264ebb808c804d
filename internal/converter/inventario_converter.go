package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// InventarioToResponse converts an InventarioItem entity to
// InventarioResponse DTO. The alert classification is derived here,
// at read time.
func InventarioToResponse(item *entity.InventarioItem) *dto.InventarioResponse {
	if item == nil {
		return nil
	}

	nivel, tipo := item.NivelAlerta()

	return &dto.InventarioResponse{
		ID:             item.ID,
		Nombre:         item.Nombre,
		Descripcion:    item.Descripcion,
		Categoria:      item.Categoria,
		StockActual:    item.StockActual,
		StockMinimo:    item.StockMinimo,
		StockMaximo:    item.StockMaximo,
		PrecioUnitario: item.PrecioUnitario.StringFixed(2),
		NivelAlerta:    nivel,
		TipoAlerta:     tipo,
	}
}

// InventarioToResponses converts a slice of InventarioItem entities to InventarioResponse DTOs
func InventarioToResponses(items []entity.InventarioItem) []dto.InventarioResponse {
	responses := make([]dto.InventarioResponse, len(items))
	for i, item := range items {
		responses[i] = *InventarioToResponse(&item)
	}
	return responses
}
