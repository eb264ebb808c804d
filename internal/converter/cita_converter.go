package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// CitaToResponse converts a Cita entity to CitaResponse DTO
func CitaToResponse(cita *entity.Cita) *dto.CitaResponse {
	if cita == nil {
		return nil
	}

	response := &dto.CitaResponse{
		ID:             cita.ID,
		PacienteID:     cita.PacienteID,
		NombrePaciente: cita.NombrePaciente,
		DoctorID:       cita.DoctorID,
		FechaCita:      cita.FechaCita.Format("2006-01-02"),
		HoraCita:       cita.HoraCita,
		TipoConsultaID: cita.TipoConsultaID,
		Estado:         string(cita.Estado),
		Observaciones:  cita.Observaciones,
		Precio:         cita.Precio.StringFixed(2),
		FechaCreacion:  cita.FechaCreacion,
	}

	// Prefer the linked patient's name when the cita was booked with
	// only free text.
	if cita.Paciente != nil {
		response.NombrePaciente = cita.Paciente.Nombre
		if cita.Paciente.Apellidos != "" {
			response.NombrePaciente += " " + cita.Paciente.Apellidos
		}
	}
	if cita.TipoConsulta != nil {
		response.TipoConsulta = cita.TipoConsulta.Nombre
	}

	return response
}

// CitasToResponses converts a slice of Cita entities to CitaResponse DTOs
func CitasToResponses(citas []entity.Cita) []dto.CitaResponse {
	responses := make([]dto.CitaResponse, len(citas))
	for i, cita := range citas {
		responses[i] = *CitaToResponse(&cita)
	}
	return responses
}
