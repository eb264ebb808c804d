package dto

import (
	"time"

	"dental-clinic-api/internal/domain/entity"
)

type LogResponse struct {
	ID            int64       `json:"id"`
	UsuarioID     *uint       `json:"usuario_id,omitempty"`
	Accion        string      `json:"accion"`
	Metadata      entity.JSON `json:"metadata,omitempty"`
	FechaCreacion time.Time   `json:"fecha_creacion"`
}

type LogListResponse struct {
	Logs  []LogResponse `json:"logs"`
	Total int64         `json:"total"`
}
