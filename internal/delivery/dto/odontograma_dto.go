package dto

import "time"

type UpsertPiezaRequest struct {
	PiezaDental string `json:"pieza_dental" validate:"required,min=1,max=10"`
	Estado      string `json:"estado" validate:"required,min=1,max=50"`
	Notas       string `json:"notas" validate:"omitempty"`
}

type PiezaResponse struct {
	PiezaDental        string    `json:"pieza_dental"`
	Estado             string    `json:"estado"`
	Notas              string    `json:"notas,omitempty"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

type OdontogramaResponse struct {
	PacienteID uint            `json:"paciente_id"`
	Piezas     []PiezaResponse `json:"piezas"`
}
