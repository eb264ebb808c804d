package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type historialClinicoRepository struct{}

func NewHistorialClinicoRepository() domainRepo.HistorialClinicoRepository {
	return &historialClinicoRepository{}
}

func (r *historialClinicoRepository) Create(db *gorm.DB, historial *entity.HistorialClinico) error {
	return db.Create(historial).Error
}

func (r *historialClinicoRepository) FindByID(db *gorm.DB, id uint) (*entity.HistorialClinico, error) {
	var historial entity.HistorialClinico
	err := db.Where("id = ?", id).First(&historial).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &historial, nil
}

func (r *historialClinicoRepository) FindByPaciente(db *gorm.DB, pacienteID uint) ([]entity.HistorialClinico, error) {
	var entradas []entity.HistorialClinico
	err := db.Where("paciente_id = ?", pacienteID).
		Order("fecha_consulta DESC").
		Find(&entradas).Error
	if err != nil {
		return nil, err
	}
	return entradas, nil
}
