package repository

import (
	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type odontogramaRepository struct{}

func NewOdontogramaRepository() domainRepo.OdontogramaRepository {
	return &odontogramaRepository{}
}

// Upsert relies on the unique index over (paciente_id, pieza_dental):
// posting the same pieza twice updates the existing row, never
// creating a second one.
func (r *odontogramaRepository) Upsert(db *gorm.DB, pieza *entity.Odontograma) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "paciente_id"}, {Name: "pieza_dental"}},
		DoUpdates: clause.AssignmentColumns([]string{"estado", "notas", "fecha_actualizacion"}),
	}).Create(pieza).Error
}

func (r *odontogramaRepository) FindByPaciente(db *gorm.DB, pacienteID uint) ([]entity.Odontograma, error) {
	var piezas []entity.Odontograma
	err := db.Where("paciente_id = ?", pacienteID).
		Order("pieza_dental").
		Find(&piezas).Error
	if err != nil {
		return nil, err
	}
	return piezas, nil
}
