package entity

import "time"

// ConsultaEstado values for the in-progress clinical encounter.
type ConsultaEstado string

const (
	ConsultaEnProceso ConsultaEstado = "en_proceso"
	ConsultaPausada   ConsultaEstado = "pausada"
	ConsultaCompletada ConsultaEstado = "completada"
)

// ConsultaActual is the transient record of an exam in progress.
// The unique index on PacienteID enforces at most one active
// consultation per patient at the database level. On finalize the row
// is copied into historial_clinico and deleted in one transaction, so
// a record is never both current and historical.
type ConsultaActual struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID     uint           `gorm:"column:paciente_id;not null;uniqueIndex" json:"paciente_id"`
	DoctorID       uint           `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	CitaID         *uint          `gorm:"column:cita_id" json:"cita_id,omitempty"`
	Estado         ConsultaEstado `gorm:"type:varchar(20);not null;default:'en_proceso'" json:"estado"`
	MotivoConsulta string         `gorm:"column:motivo_consulta;type:text" json:"motivo_consulta,omitempty"`
	AntecedentesMedicos       string `gorm:"column:antecedentes_medicos;type:text" json:"antecedentes_medicos,omitempty"`
	AntecedentesOdontologicos string `gorm:"column:antecedentes_odontologicos;type:text" json:"antecedentes_odontologicos,omitempty"`
	ExamenExtraoral string        `gorm:"column:examen_extraoral;type:text" json:"examen_extraoral,omitempty"`
	ExamenIntraoral string        `gorm:"column:examen_intraoral;type:text" json:"examen_intraoral,omitempty"`
	Diagnostico     string        `gorm:"type:text" json:"diagnostico,omitempty"`
	Tratamiento     string        `gorm:"type:text" json:"tratamiento,omitempty"`
	PlanTratamiento string        `gorm:"column:plan_tratamiento;type:text" json:"plan_tratamiento,omitempty"`
	FechaInicio     time.Time     `gorm:"column:fecha_inicio;autoCreateTime" json:"fecha_inicio"`
	FechaActualizacion time.Time  `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (ConsultaActual) TableName() string {
	return "consultas_actuales"
}

// ToHistorial snapshots the consultation into an append-only clinical
// history entry.
func (c *ConsultaActual) ToHistorial() *HistorialClinico {
	return &HistorialClinico{
		PacienteID:                c.PacienteID,
		DoctorID:                  c.DoctorID,
		FechaConsulta:             time.Now(),
		MotivoConsulta:            c.MotivoConsulta,
		AntecedentesMedicos:       c.AntecedentesMedicos,
		AntecedentesOdontologicos: c.AntecedentesOdontologicos,
		ExamenExtraoral:           c.ExamenExtraoral,
		ExamenIntraoral:           c.ExamenIntraoral,
		Diagnostico:               c.Diagnostico,
		Tratamiento:               c.Tratamiento,
		PlanTratamiento:           c.PlanTratamiento,
	}
}
