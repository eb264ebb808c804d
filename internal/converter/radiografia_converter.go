package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// RadiografiaToResponse converts a Radiografia entity to RadiografiaResponse DTO
func RadiografiaToResponse(radiografia *entity.Radiografia) *dto.RadiografiaResponse {
	if radiografia == nil {
		return nil
	}

	return &dto.RadiografiaResponse{
		ID:            radiografia.ID,
		PacienteID:    radiografia.PacienteID,
		DoctorID:      radiografia.DoctorID,
		TipoEstudio:   radiografia.TipoEstudio,
		Descripcion:   radiografia.Descripcion,
		Estado:        radiografia.Estado,
		ArchivoURL:    radiografia.ArchivoURL,
		FechaCreacion: radiografia.FechaCreacion,
	}
}

// RadiografiasToResponses converts a slice of Radiografia entities to RadiografiaResponse DTOs
func RadiografiasToResponses(radiografias []entity.Radiografia) []dto.RadiografiaResponse {
	responses := make([]dto.RadiografiaResponse, len(radiografias))
	for i, radiografia := range radiografias {
		responses[i] = *RadiografiaToResponse(&radiografia)
	}
	return responses
}
