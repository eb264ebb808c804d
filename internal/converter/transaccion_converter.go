package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// TransaccionToResponse converts a TransaccionFinanciera entity to TransaccionResponse DTO
func TransaccionToResponse(tx *entity.TransaccionFinanciera) *dto.TransaccionResponse {
	if tx == nil {
		return nil
	}

	return &dto.TransaccionResponse{
		ID:            tx.ID,
		Tipo:          tx.Tipo,
		Monto:         tx.Monto.StringFixed(2),
		Categoria:     tx.Categoria,
		Descripcion:   tx.Descripcion,
		Fecha:         tx.Fecha.Format("2006-01-02"),
		FechaCreacion: tx.FechaCreacion,
	}
}

// TransaccionesToResponses converts a slice of TransaccionFinanciera entities to TransaccionResponse DTOs
func TransaccionesToResponses(transacciones []entity.TransaccionFinanciera) []dto.TransaccionResponse {
	responses := make([]dto.TransaccionResponse, len(transacciones))
	for i, tx := range transacciones {
		responses[i] = *TransaccionToResponse(&tx)
	}
	return responses
}
