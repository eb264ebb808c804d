package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type TipoConsultaRepository interface {
	Create(db *gorm.DB, tipo *entity.TipoConsulta) error
	FindByID(db *gorm.DB, id uint) (*entity.TipoConsulta, error)
	FindAll(db *gorm.DB) ([]entity.TipoConsulta, error)
	Update(db *gorm.DB, tipo *entity.TipoConsulta) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
}
