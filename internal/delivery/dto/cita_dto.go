package dto

import "time"

// CreateCitaRequest books an appointment. Either paciente_id or
// nombre_paciente must be present; with only a name, a temporary
// patient record is synthesized.
type CreateCitaRequest struct {
	PacienteID     uint   `json:"paciente_id" validate:"omitempty,min=1"`
	NombrePaciente string `json:"nombre_paciente" validate:"omitempty,min=2"`
	DoctorID       uint   `json:"doctor_id" validate:"required,min=1"`
	FechaConsulta  string `json:"fecha_consulta" validate:"required,datetime=2006-01-02"`
	HorarioConsulta string `json:"horario_consulta" validate:"required,datetime=15:04"`
	TipoConsultaID uint   `json:"tipo_consulta" validate:"omitempty,min=1"`
	Precio         string `json:"precio" validate:"omitempty"`
	Observaciones  string `json:"observaciones" validate:"omitempty"`
}

type RescheduleCitaRequest struct {
	FechaConsulta   string `json:"fecha_consulta" validate:"omitempty,datetime=2006-01-02"`
	HorarioConsulta string `json:"horario_consulta" validate:"omitempty,datetime=15:04"`
	DoctorID        uint   `json:"doctor_id" validate:"omitempty,min=1"`
	Observaciones   string `json:"observaciones" validate:"omitempty"`
}

type UpdateCitaEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

type CitaResponse struct {
	ID             uint      `json:"id"`
	PacienteID     *uint     `json:"paciente_id,omitempty"`
	NombrePaciente string    `json:"nombre_paciente,omitempty"`
	DoctorID       uint      `json:"doctor_id"`
	FechaCita      string    `json:"fecha_cita"`
	HoraCita       string    `json:"hora_cita"`
	TipoConsultaID *uint     `json:"tipo_consulta_id,omitempty"`
	TipoConsulta   string    `json:"tipo_consulta,omitempty"`
	Estado         string    `json:"estado"`
	Observaciones  string    `json:"observaciones,omitempty"`
	Precio         string    `json:"precio"`
	FechaCreacion  time.Time `json:"fecha_creacion"`
}

type CitaListResponse struct {
	Citas []CitaResponse `json:"citas"`
	Total int            `json:"total"`
}

type SweepResponse struct {
	Marcadas int64 `json:"marcadas"`
}
