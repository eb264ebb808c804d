package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// ConsultaToResponse converts a ConsultaActual entity to ConsultaResponse DTO
func ConsultaToResponse(consulta *entity.ConsultaActual) *dto.ConsultaResponse {
	if consulta == nil {
		return nil
	}

	return &dto.ConsultaResponse{
		ID:                        consulta.ID,
		PacienteID:                consulta.PacienteID,
		DoctorID:                  consulta.DoctorID,
		CitaID:                    consulta.CitaID,
		Estado:                    string(consulta.Estado),
		MotivoConsulta:            consulta.MotivoConsulta,
		AntecedentesMedicos:       consulta.AntecedentesMedicos,
		AntecedentesOdontologicos: consulta.AntecedentesOdontologicos,
		ExamenExtraoral:           consulta.ExamenExtraoral,
		ExamenIntraoral:           consulta.ExamenIntraoral,
		Diagnostico:               consulta.Diagnostico,
		Tratamiento:               consulta.Tratamiento,
		PlanTratamiento:           consulta.PlanTratamiento,
		FechaInicio:               consulta.FechaInicio,
	}
}
