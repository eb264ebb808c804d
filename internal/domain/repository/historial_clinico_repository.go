package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type HistorialClinicoRepository interface {
	Create(db *gorm.DB, historial *entity.HistorialClinico) error
	FindByID(db *gorm.DB, id uint) (*entity.HistorialClinico, error)
	FindByPaciente(db *gorm.DB, pacienteID uint) ([]entity.HistorialClinico, error)
}
