package repository

import (
	"errors"
	"time"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type citaRepository struct{}

func NewCitaRepository() domainRepo.CitaRepository {
	return &citaRepository{}
}

func (r *citaRepository) Create(db *gorm.DB, cita *entity.Cita) error {
	return db.Create(cita).Error
}

func (r *citaRepository) FindByID(db *gorm.DB, id uint) (*entity.Cita, error) {
	var cita entity.Cita
	err := db.Preload("Paciente").Preload("TipoConsulta").Where("id = ?", id).First(&cita).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cita, nil
}

func (r *citaRepository) Search(db *gorm.DB, filter *domainRepo.CitaFilter) ([]entity.Cita, error) {
	var citas []entity.Cita

	query := db.Preload("Paciente").Preload("TipoConsulta")
	if filter != nil {
		if filter.Fecha != "" {
			query = query.Where("fecha_cita = ?", filter.Fecha)
		}
		if filter.DoctorID != 0 {
			query = query.Where("doctor_id = ?", filter.DoctorID)
		}
		if filter.PacienteID != 0 {
			query = query.Where("paciente_id = ?", filter.PacienteID)
		}
	}

	err := query.Order("fecha_cita, hora_cita").Find(&citas).Error
	if err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *citaRepository) Update(db *gorm.DB, cita *entity.Cita) error {
	return db.Save(cita).Error
}

// UpdateEstado atomically moves a cita from one estado to another.
// The WHERE clause on the source estado prevents double transitions
// under concurrent requests. Terminal targets release the slot key so
// the slot becomes bookable again.
func (r *citaRepository) UpdateEstado(db *gorm.DB, id uint, from, to entity.CitaEstado) (int64, error) {
	updates := map[string]interface{}{"estado": to}
	if to.IsTerminal() {
		updates["slot_key"] = nil
	}
	result := db.Model(&entity.Cita{}).
		Where("id = ? AND estado = ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// Cancel never deletes the row; it only sets estado and frees the
// slot. Cancelling twice affects 0 rows the second time.
func (r *citaRepository) Cancel(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Cita{}).
		Where("id = ? AND estado NOT IN ?", id,
			[]entity.CitaEstado{entity.CitaCompletada, entity.CitaCancelada, entity.CitaNoAsistio}).
		Updates(map[string]interface{}{
			"estado":   entity.CitaCancelada,
			"slot_key": nil,
		})
	return result.RowsAffected, result.Error
}

// SweepNoShows is safe to run concurrently: the conditional UPDATE is
// idempotent, so overlapping sweeps cannot double-process a row.
func (r *citaRepository) SweepNoShows(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Model(&entity.Cita{}).
		Where("estado IN ?", []entity.CitaEstado{entity.CitaProgramada, entity.CitaConfirmada}).
		Where("TIMESTAMP(fecha_cita, CONCAT(hora_cita, ':00')) < ?", cutoff).
		Updates(map[string]interface{}{
			"estado":   entity.CitaNoAsistio,
			"slot_key": nil,
		})
	return result.RowsAffected, result.Error
}
