package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type pacienteRepository struct{}

func NewPacienteRepository() domainRepo.PacienteRepository {
	return &pacienteRepository{}
}

func (r *pacienteRepository) Create(db *gorm.DB, paciente *entity.Paciente) error {
	return db.Create(paciente).Error
}

func (r *pacienteRepository) FindByID(db *gorm.DB, id uint) (*entity.Paciente, error) {
	var paciente entity.Paciente
	err := db.Where("id = ? AND activo = ?", id, true).First(&paciente).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Paciente, int64, error) {
	var pacientes []entity.Paciente
	var total int64

	query := db.Model(&entity.Paciente{}).Where("activo = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("apellidos, nombre").Limit(limit).Offset(offset).Find(&pacientes).Error
	if err != nil {
		return nil, 0, err
	}
	return pacientes, total, nil
}

func (r *pacienteRepository) Search(db *gorm.DB, term string) ([]entity.Paciente, error) {
	var pacientes []entity.Paciente
	pattern := "%" + term + "%"
	err := db.Where("activo = ? AND (nombre LIKE ? OR apellidos LIKE ? OR telefono LIKE ?)",
		true, pattern, pattern, pattern).
		Order("apellidos, nombre").
		Limit(50).
		Find(&pacientes).Error
	if err != nil {
		return nil, err
	}
	return pacientes, nil
}

func (r *pacienteRepository) Update(db *gorm.DB, paciente *entity.Paciente) error {
	return db.Save(paciente).Error
}

func (r *pacienteRepository) Deactivate(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Paciente{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	return result.RowsAffected, result.Error
}
