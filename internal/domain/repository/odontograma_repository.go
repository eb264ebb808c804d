package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type OdontogramaRepository interface {
	// Upsert inserts or updates the estado of one dental piece,
	// keyed by (paciente_id, pieza_dental).
	Upsert(db *gorm.DB, pieza *entity.Odontograma) error
	FindByPaciente(db *gorm.DB, pacienteID uint) ([]entity.Odontograma, error)
}
