package dto

import "time"

type StartConsultaRequest struct {
	PacienteID uint  `json:"paciente_id" validate:"required,min=1"`
	CitaID     *uint `json:"cita_id" validate:"omitempty"`
	MotivoConsulta string `json:"motivo_consulta" validate:"omitempty"`
}

type UpdateConsultaRequest struct {
	MotivoConsulta            string `json:"motivo_consulta" validate:"omitempty"`
	AntecedentesMedicos       string `json:"antecedentes_medicos" validate:"omitempty"`
	AntecedentesOdontologicos string `json:"antecedentes_odontologicos" validate:"omitempty"`
	ExamenExtraoral           string `json:"examen_extraoral" validate:"omitempty"`
	ExamenIntraoral           string `json:"examen_intraoral" validate:"omitempty"`
	Diagnostico               string `json:"diagnostico" validate:"omitempty"`
	Tratamiento               string `json:"tratamiento" validate:"omitempty"`
	PlanTratamiento           string `json:"plan_tratamiento" validate:"omitempty"`
}

type UpdateConsultaEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=en_proceso pausada"`
}

type ConsultaResponse struct {
	ID             uint      `json:"id"`
	PacienteID     uint      `json:"paciente_id"`
	DoctorID       uint      `json:"doctor_id"`
	CitaID         *uint     `json:"cita_id,omitempty"`
	Estado         string    `json:"estado"`
	MotivoConsulta string    `json:"motivo_consulta,omitempty"`
	AntecedentesMedicos       string `json:"antecedentes_medicos,omitempty"`
	AntecedentesOdontologicos string `json:"antecedentes_odontologicos,omitempty"`
	ExamenExtraoral string    `json:"examen_extraoral,omitempty"`
	ExamenIntraoral string    `json:"examen_intraoral,omitempty"`
	Diagnostico     string    `json:"diagnostico,omitempty"`
	Tratamiento     string    `json:"tratamiento,omitempty"`
	PlanTratamiento string    `json:"plan_tratamiento,omitempty"`
	FechaInicio     time.Time `json:"fecha_inicio"`
}

type TerminarConsultaResponse struct {
	HistorialID uint `json:"historial_id"`
}
