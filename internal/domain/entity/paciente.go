package entity

import "time"

// PacienteEstado values. Temporal patients are placeholder records
// created inline from the appointment form.
const (
	PacienteEstadoRegistrado = "Registrado"
	PacienteEstadoTemporal   = "Temporal"
)

type Paciente struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre          string     `gorm:"type:varchar(100);not null;index" json:"nombre"`
	Apellidos       string     `gorm:"type:varchar(150)" json:"apellidos"`
	FechaNacimiento *time.Time `gorm:"column:fecha_nacimiento;type:date" json:"fecha_nacimiento,omitempty"`
	Sexo            string     `gorm:"type:char(1)" json:"sexo,omitempty"`
	Telefono        string     `gorm:"type:varchar(20);index" json:"telefono,omitempty"`
	Direccion       string     `gorm:"type:text" json:"direccion,omitempty"`
	Estado          string     `gorm:"type:varchar(20);not null;default:'Registrado'" json:"estado"`
	Activo          bool       `gorm:"not null;default:true;index" json:"activo"`
	CreadoPor       *uint      `gorm:"column:creado_por" json:"creado_por,omitempty"`
	FechaCreacion   time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (Paciente) TableName() string {
	return "pacientes"
}

// IsTemporal reports whether this is a placeholder record created from
// the appointment form.
func (p *Paciente) IsTemporal() bool {
	return p.Estado == PacienteEstadoTemporal
}
