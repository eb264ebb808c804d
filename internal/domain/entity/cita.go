package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CitaEstado represents the scheduling state of an appointment.
type CitaEstado string

const (
	CitaProgramada CitaEstado = "Programada"
	CitaConfirmada CitaEstado = "Confirmada"
	CitaReagendada CitaEstado = "Reagendada"
	CitaEnProceso  CitaEstado = "En_Proceso"
	CitaCompletada CitaEstado = "Completada"
	CitaCancelada  CitaEstado = "Cancelada"
	CitaNoAsistio  CitaEstado = "No_Asistio"
)

// citaTransitions defines the allowed estado transitions. Terminal
// states (Completada, Cancelada, No_Asistio) have no outgoing edges.
var citaTransitions = map[CitaEstado][]CitaEstado{
	CitaProgramada: {CitaConfirmada, CitaEnProceso, CitaCancelada, CitaNoAsistio, CitaReagendada},
	CitaConfirmada: {CitaEnProceso, CitaCancelada, CitaNoAsistio, CitaReagendada},
	CitaReagendada: {CitaConfirmada, CitaEnProceso, CitaCancelada, CitaNoAsistio},
	CitaEnProceso:  {CitaCompletada, CitaCancelada, CitaNoAsistio},
}

// IsValidCitaEstado reports whether s names a known estado.
func IsValidCitaEstado(s string) bool {
	switch CitaEstado(s) {
	case CitaProgramada, CitaConfirmada, CitaReagendada, CitaEnProceso, CitaCompletada, CitaCancelada, CitaNoAsistio:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (e CitaEstado) IsTerminal() bool {
	switch e {
	case CitaCompletada, CitaCancelada, CitaNoAsistio:
		return true
	}
	return false
}

// CanTransition reports whether estado may move from e to target.
func (e CitaEstado) CanTransition(target CitaEstado) bool {
	for _, allowed := range citaTransitions[e] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Cita is an appointment. PacienteID may be nil when the appointment
// was booked with only a free-text patient name; in that case a
// temporary Paciente is synthesized at creation time.
//
// SlotKey backs the at-most-one-active-appointment-per-slot invariant:
// it is "<doctor>|<fecha>|<hora>" while the cita is non-terminal and
// NULL afterwards, so the unique index only constrains live rows.
type Cita struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID      *uint           `gorm:"column:paciente_id;index" json:"paciente_id,omitempty"`
	NombrePaciente  string          `gorm:"column:nombre_paciente;type:varchar(255)" json:"nombre_paciente,omitempty"`
	DoctorID        uint            `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	FechaCita       time.Time       `gorm:"column:fecha_cita;type:date;not null;index" json:"fecha_cita"`
	HoraCita        string          `gorm:"column:hora_cita;type:varchar(5);not null" json:"hora_cita"`
	TipoConsultaID  *uint           `gorm:"column:tipo_consulta_id" json:"tipo_consulta_id,omitempty"`
	Estado          CitaEstado      `gorm:"type:varchar(20);not null;default:'Programada';index" json:"estado"`
	Observaciones   string          `gorm:"type:text" json:"observaciones,omitempty"`
	Precio          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"precio"`
	SlotKey         *string         `gorm:"column:slot_key;type:varchar(64);uniqueIndex" json:"-"`
	FechaCreacion   time.Time       `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time    `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`

	// Relationships
	Paciente     *Paciente     `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
	TipoConsulta *TipoConsulta `gorm:"foreignKey:TipoConsultaID" json:"tipo_consulta,omitempty"`
}

func (Cita) TableName() string {
	return "citas"
}

// BuildSlotKey returns the uniqueness key for a doctor/date/time slot.
func BuildSlotKey(doctorID uint, fecha time.Time, hora string) string {
	return fmt.Sprintf("%d|%s|%s", doctorID, fecha.Format("2006-01-02"), hora)
}
