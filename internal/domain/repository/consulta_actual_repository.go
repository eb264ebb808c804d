package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultaActualRepository interface {
	Create(db *gorm.DB, consulta *entity.ConsultaActual) error
	FindByID(db *gorm.DB, id uint) (*entity.ConsultaActual, error)
	FindActiveByPaciente(db *gorm.DB, pacienteID uint) (*entity.ConsultaActual, error)
	Update(db *gorm.DB, consulta *entity.ConsultaActual) error
	Delete(db *gorm.DB, id uint) error
}
