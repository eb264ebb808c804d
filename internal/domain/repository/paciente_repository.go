package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PacienteRepository interface {
	Create(db *gorm.DB, paciente *entity.Paciente) error
	FindByID(db *gorm.DB, id uint) (*entity.Paciente, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Paciente, int64, error)
	Search(db *gorm.DB, term string) ([]entity.Paciente, error)
	Update(db *gorm.DB, paciente *entity.Paciente) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
}
