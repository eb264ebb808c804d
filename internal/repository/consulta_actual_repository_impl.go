package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type consultaActualRepository struct{}

func NewConsultaActualRepository() domainRepo.ConsultaActualRepository {
	return &consultaActualRepository{}
}

func (r *consultaActualRepository) Create(db *gorm.DB, consulta *entity.ConsultaActual) error {
	return db.Create(consulta).Error
}

func (r *consultaActualRepository) FindByID(db *gorm.DB, id uint) (*entity.ConsultaActual, error) {
	var consulta entity.ConsultaActual
	err := db.Where("id = ?", id).First(&consulta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consulta, nil
}

func (r *consultaActualRepository) FindActiveByPaciente(db *gorm.DB, pacienteID uint) (*entity.ConsultaActual, error) {
	var consulta entity.ConsultaActual
	err := db.Where("paciente_id = ?", pacienteID).First(&consulta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consulta, nil
}

func (r *consultaActualRepository) Update(db *gorm.DB, consulta *entity.ConsultaActual) error {
	return db.Save(consulta).Error
}

func (r *consultaActualRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&entity.ConsultaActual{}, id).Error
}
