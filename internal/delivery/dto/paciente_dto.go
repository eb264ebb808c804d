package dto

import "time"

type CreatePacienteRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=2"`
	Apellidos       string `json:"apellidos" validate:"omitempty"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Sexo            string `json:"sexo" validate:"omitempty,oneof=M F"`
	Telefono        string `json:"telefono" validate:"omitempty,min=7,max=20"`
	Direccion       string `json:"direccion" validate:"omitempty"`
}

type UpdatePacienteRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=2"`
	Apellidos       string `json:"apellidos" validate:"omitempty"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Sexo            string `json:"sexo" validate:"omitempty,oneof=M F"`
	Telefono        string `json:"telefono" validate:"omitempty,min=7,max=20"`
	Direccion       string `json:"direccion" validate:"omitempty"`
}

type PacienteResponse struct {
	ID              uint       `json:"id"`
	Nombre          string     `json:"nombre"`
	Apellidos       string     `json:"apellidos"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento,omitempty"`
	Sexo            string     `json:"sexo,omitempty"`
	Telefono        string     `json:"telefono,omitempty"`
	Direccion       string     `json:"direccion,omitempty"`
	Estado          string     `json:"estado"`
	FechaCreacion   time.Time  `json:"fecha_creacion"`
}

type PacienteListResponse struct {
	Pacientes []PacienteResponse `json:"pacientes"`
	Total     int64              `json:"total"`
}
