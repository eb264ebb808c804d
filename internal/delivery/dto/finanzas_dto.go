package dto

import "time"

type CreateTransaccionRequest struct {
	Tipo        string `json:"tipo" validate:"required,oneof=ingreso gasto"`
	Monto       string `json:"monto" validate:"required"`
	Categoria   string `json:"categoria" validate:"required,min=2"`
	Descripcion string `json:"descripcion" validate:"omitempty"`
	Fecha       string `json:"fecha" validate:"required,datetime=2006-01-02"`
}

type TransaccionResponse struct {
	ID            uint      `json:"id"`
	Tipo          string    `json:"tipo"`
	Monto         string    `json:"monto"`
	Categoria     string    `json:"categoria"`
	Descripcion   string    `json:"descripcion,omitempty"`
	Fecha         string    `json:"fecha"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

type TransaccionListResponse struct {
	Transacciones []TransaccionResponse `json:"transacciones"`
	Total         int64                 `json:"total"`
}
