package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type RadiografiaRepository interface {
	Create(db *gorm.DB, radiografia *entity.Radiografia) error
	FindByID(db *gorm.DB, id uint) (*entity.Radiografia, error)
	FindByPaciente(db *gorm.DB, pacienteID uint) ([]entity.Radiografia, error)
	Update(db *gorm.DB, radiografia *entity.Radiografia) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
}
