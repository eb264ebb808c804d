package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// TipoConsultaToResponse converts a TipoConsulta entity to TipoConsultaResponse DTO
func TipoConsultaToResponse(tipo *entity.TipoConsulta) *dto.TipoConsultaResponse {
	if tipo == nil {
		return nil
	}

	return &dto.TipoConsultaResponse{
		ID:          tipo.ID,
		Nombre:      tipo.Nombre,
		Descripcion: tipo.Descripcion,
		Precio:      tipo.Precio.StringFixed(2),
	}
}

// TiposConsultaToResponses converts a slice of TipoConsulta entities to TipoConsultaResponse DTOs
func TiposConsultaToResponses(tipos []entity.TipoConsulta) []dto.TipoConsultaResponse {
	responses := make([]dto.TipoConsultaResponse, len(tipos))
	for i, tipo := range tipos {
		responses[i] = *TipoConsultaToResponse(&tipo)
	}
	return responses
}
