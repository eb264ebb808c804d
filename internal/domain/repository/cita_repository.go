package repository

import (
	"time"

	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

// CitaFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type CitaFilter struct {
	Fecha      string // Format: YYYY-MM-DD
	DoctorID   uint
	PacienteID uint
}

type CitaRepository interface {
	Create(db *gorm.DB, cita *entity.Cita) error
	FindByID(db *gorm.DB, id uint) (*entity.Cita, error)
	Search(db *gorm.DB, filter *CitaFilter) ([]entity.Cita, error)
	Update(db *gorm.DB, cita *entity.Cita) error
	// UpdateEstado conditionally moves a cita between estados, clearing
	// the slot key when the target estado is terminal. Returns affected
	// rows: 0 means the cita did not exist or was not in fromEstado.
	UpdateEstado(db *gorm.DB, id uint, from, to entity.CitaEstado) (int64, error)
	// Cancel soft-cancels regardless of current non-terminal estado.
	// Idempotent: cancelling an already cancelled cita affects 0 rows.
	Cancel(db *gorm.DB, id uint) (int64, error)
	// SweepNoShows flips Programada/Confirmada citas whose start time is
	// older than cutoff to No_Asistio. Idempotent conditional UPDATE.
	SweepNoShows(db *gorm.DB, cutoff time.Time) (int64, error)
}
