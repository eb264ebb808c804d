package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type tipoConsultaRepository struct{}

func NewTipoConsultaRepository() domainRepo.TipoConsultaRepository {
	return &tipoConsultaRepository{}
}

func (r *tipoConsultaRepository) Create(db *gorm.DB, tipo *entity.TipoConsulta) error {
	return db.Create(tipo).Error
}

func (r *tipoConsultaRepository) FindByID(db *gorm.DB, id uint) (*entity.TipoConsulta, error) {
	var tipo entity.TipoConsulta
	err := db.Where("id = ? AND activo = ?", id, true).First(&tipo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tipo, nil
}

func (r *tipoConsultaRepository) FindAll(db *gorm.DB) ([]entity.TipoConsulta, error) {
	var tipos []entity.TipoConsulta
	err := db.Where("activo = ?", true).Order("nombre").Find(&tipos).Error
	if err != nil {
		return nil, err
	}
	return tipos, nil
}

func (r *tipoConsultaRepository) Update(db *gorm.DB, tipo *entity.TipoConsulta) error {
	return db.Save(tipo).Error
}

func (r *tipoConsultaRepository) Deactivate(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.TipoConsulta{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	return result.RowsAffected, result.Error
}
