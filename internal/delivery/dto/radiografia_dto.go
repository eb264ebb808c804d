package dto

import "time"

type CreateRadiografiaRequest struct {
	PacienteID  uint   `json:"paciente_id" validate:"required,min=1"`
	TipoEstudio string `json:"tipo_estudio" validate:"required,min=2"`
	Descripcion string `json:"descripcion" validate:"omitempty"`
}

type RadiografiaResponse struct {
	ID          uint      `json:"id"`
	PacienteID  uint      `json:"paciente_id"`
	DoctorID    *uint     `json:"doctor_id,omitempty"`
	TipoEstudio string    `json:"tipo_estudio"`
	Descripcion string    `json:"descripcion,omitempty"`
	Estado      string    `json:"estado"`
	ArchivoURL  *string   `json:"archivo_url,omitempty"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

type UploadArchivoResponse struct {
	ArchivoURL string `json:"archivo_url"`
}
