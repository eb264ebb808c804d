package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// PacienteToResponse converts a Paciente entity to PacienteResponse DTO
func PacienteToResponse(paciente *entity.Paciente) *dto.PacienteResponse {
	if paciente == nil {
		return nil
	}

	return &dto.PacienteResponse{
		ID:              paciente.ID,
		Nombre:          paciente.Nombre,
		Apellidos:       paciente.Apellidos,
		FechaNacimiento: paciente.FechaNacimiento,
		Sexo:            paciente.Sexo,
		Telefono:        paciente.Telefono,
		Direccion:       paciente.Direccion,
		Estado:          paciente.Estado,
		FechaCreacion:   paciente.FechaCreacion,
	}
}

// PacientesToResponses converts a slice of Paciente entities to PacienteResponse DTOs
func PacientesToResponses(pacientes []entity.Paciente) []dto.PacienteResponse {
	responses := make([]dto.PacienteResponse, len(pacientes))
	for i, paciente := range pacientes {
		responses[i] = *PacienteToResponse(&paciente)
	}
	return responses
}
