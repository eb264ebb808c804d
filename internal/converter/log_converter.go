package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// LogToResponse converts a LogSistema entity to LogResponse DTO
func LogToResponse(log *entity.LogSistema) *dto.LogResponse {
	if log == nil {
		return nil
	}

	return &dto.LogResponse{
		ID:            log.ID,
		UsuarioID:     log.UsuarioID,
		Accion:        log.Accion,
		Metadata:      log.Metadata,
		FechaCreacion: log.FechaCreacion,
	}
}

// LogsToResponses converts a slice of LogSistema entities to LogResponse DTOs
func LogsToResponses(logs []entity.LogSistema) []dto.LogResponse {
	responses := make([]dto.LogResponse, len(logs))
	for i, log := range logs {
		responses[i] = *LogToResponse(&log)
	}
	return responses
}
