package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// HistorialToResponse converts a HistorialClinico entity to HistorialResponse DTO
func HistorialToResponse(historial *entity.HistorialClinico) *dto.HistorialResponse {
	if historial == nil {
		return nil
	}

	return &dto.HistorialResponse{
		ID:                        historial.ID,
		PacienteID:                historial.PacienteID,
		DoctorID:                  historial.DoctorID,
		FechaConsulta:             historial.FechaConsulta,
		ResumenMotivo:             historial.ResumenMotivo(),
		MotivoConsulta:            historial.MotivoConsulta,
		AntecedentesMedicos:       historial.AntecedentesMedicos,
		AntecedentesOdontologicos: historial.AntecedentesOdontologicos,
		ExamenExtraoral:           historial.ExamenExtraoral,
		ExamenIntraoral:           historial.ExamenIntraoral,
		Diagnostico:               historial.Diagnostico,
		Tratamiento:               historial.Tratamiento,
		PlanTratamiento:           historial.PlanTratamiento,
	}
}

// HistorialesToResponses converts a slice of HistorialClinico entities to HistorialResponse DTOs
func HistorialesToResponses(entradas []entity.HistorialClinico) []dto.HistorialResponse {
	responses := make([]dto.HistorialResponse, len(entradas))
	for i, entrada := range entradas {
		responses[i] = *HistorialToResponse(&entrada)
	}
	return responses
}
