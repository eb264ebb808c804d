package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// OdontogramaToResponse groups per-tooth rows into a single odontogram DTO
func OdontogramaToResponse(pacienteID uint, piezas []entity.Odontograma) *dto.OdontogramaResponse {
	responses := make([]dto.PiezaResponse, len(piezas))
	for i, pieza := range piezas {
		responses[i] = dto.PiezaResponse{
			PiezaDental:        pieza.PiezaDental,
			Estado:             pieza.Estado,
			Notas:              pieza.Notas,
			FechaActualizacion: pieza.FechaActualizacion,
		}
	}

	return &dto.OdontogramaResponse{
		PacienteID: pacienteID,
		Piezas:     responses,
	}
}
