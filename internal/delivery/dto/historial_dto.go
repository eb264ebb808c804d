package dto

import "time"

type CreateHistorialRequest struct {
	PacienteID                uint   `json:"paciente_id" validate:"required,min=1"`
	DoctorID                  uint   `json:"doctor_id" validate:"required,min=1"`
	MotivoConsulta            string `json:"motivo_consulta" validate:"omitempty"`
	AntecedentesMedicos       string `json:"antecedentes_medicos" validate:"omitempty"`
	AntecedentesOdontologicos string `json:"antecedentes_odontologicos" validate:"omitempty"`
	ExamenExtraoral           string `json:"examen_extraoral" validate:"omitempty"`
	ExamenIntraoral           string `json:"examen_intraoral" validate:"omitempty"`
	Diagnostico               string `json:"diagnostico" validate:"omitempty"`
	Tratamiento               string `json:"tratamiento" validate:"omitempty"`
	PlanTratamiento           string `json:"plan_tratamiento" validate:"omitempty"`
}

type HistorialResponse struct {
	ID            uint      `json:"id"`
	PacienteID    uint      `json:"paciente_id"`
	DoctorID      uint      `json:"doctor_id"`
	FechaConsulta time.Time `json:"fecha_consulta"`
	// ResumenMotivo is the human-readable summary extracted from
	// motivo_consulta, which may hold raw text or serialized JSON.
	ResumenMotivo             string `json:"resumen_motivo"`
	MotivoConsulta            string `json:"motivo_consulta,omitempty"`
	AntecedentesMedicos       string `json:"antecedentes_medicos,omitempty"`
	AntecedentesOdontologicos string `json:"antecedentes_odontologicos,omitempty"`
	ExamenExtraoral           string `json:"examen_extraoral,omitempty"`
	ExamenIntraoral           string `json:"examen_intraoral,omitempty"`
	Diagnostico               string `json:"diagnostico,omitempty"`
	Tratamiento               string `json:"tratamiento,omitempty"`
	PlanTratamiento           string `json:"plan_tratamiento,omitempty"`
}

type HistorialListResponse struct {
	Entradas []HistorialResponse `json:"entradas"`
	Total    int                 `json:"total"`
}
