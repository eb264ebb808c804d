package entity

import "time"

// RadiografiaEstado values for an imaging study request.
const (
	RadiografiaPendiente  = "pendiente"
	RadiografiaCompletada = "completada"
)

// Radiografia is a request/record for an imaging study. Soft-deleted
// via Activo; the attached file lives under the upload directory and
// ArchivoURL holds its public path.
type Radiografia struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID  uint      `gorm:"column:paciente_id;not null;index" json:"paciente_id"`
	DoctorID    *uint     `gorm:"column:doctor_id" json:"doctor_id,omitempty"`
	TipoEstudio string    `gorm:"column:tipo_estudio;type:varchar(100);not null" json:"tipo_estudio"`
	Descripcion string    `gorm:"type:text" json:"descripcion,omitempty"`
	Estado      string    `gorm:"type:varchar(20);not null;default:'pendiente';index" json:"estado"`
	ArchivoURL  *string   `gorm:"column:archivo_url;type:varchar(255)" json:"archivo_url,omitempty"`
	Activo      bool      `gorm:"not null;default:true;index" json:"activo"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (Radiografia) TableName() string {
	return "radiografias"
}
