package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type radiografiaRepository struct{}

func NewRadiografiaRepository() domainRepo.RadiografiaRepository {
	return &radiografiaRepository{}
}

func (r *radiografiaRepository) Create(db *gorm.DB, radiografia *entity.Radiografia) error {
	return db.Create(radiografia).Error
}

func (r *radiografiaRepository) FindByID(db *gorm.DB, id uint) (*entity.Radiografia, error) {
	var radiografia entity.Radiografia
	err := db.Where("id = ? AND activo = ?", id, true).First(&radiografia).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &radiografia, nil
}

func (r *radiografiaRepository) FindByPaciente(db *gorm.DB, pacienteID uint) ([]entity.Radiografia, error) {
	var radiografias []entity.Radiografia
	err := db.Where("paciente_id = ? AND activo = ?", pacienteID, true).
		Order("fecha_creacion DESC").
		Find(&radiografias).Error
	if err != nil {
		return nil, err
	}
	return radiografias, nil
}

func (r *radiografiaRepository) Update(db *gorm.DB, radiografia *entity.Radiografia) error {
	return db.Save(radiografia).Error
}

func (r *radiografiaRepository) Deactivate(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Radiografia{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	return result.RowsAffected, result.Error
}
