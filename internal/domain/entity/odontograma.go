package entity

import "time"

// Odontograma holds the current estado of one dental piece for one
// patient. Upsert semantics: exactly one row per (paciente, pieza).
type Odontograma struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID  uint      `gorm:"column:paciente_id;not null;uniqueIndex:idx_odontograma_pieza" json:"paciente_id"`
	PiezaDental string    `gorm:"column:pieza_dental;type:varchar(10);not null;uniqueIndex:idx_odontograma_pieza" json:"pieza_dental"`
	Estado      string    `gorm:"type:varchar(50);not null" json:"estado"`
	Notas       string    `gorm:"type:text" json:"notas,omitempty"`
	FechaActualizacion time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (Odontograma) TableName() string {
	return "odontograma"
}
