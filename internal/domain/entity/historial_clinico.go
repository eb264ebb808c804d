package entity

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// HistorialClinico is an append-only per-consultation snapshot. Rows
// are only ever inserted, either directly or by finalizing a
// ConsultaActual.
type HistorialClinico struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID    uint      `gorm:"column:paciente_id;not null;index" json:"paciente_id"`
	DoctorID      uint      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	FechaConsulta time.Time `gorm:"column:fecha_consulta;not null;index" json:"fecha_consulta"`
	MotivoConsulta string   `gorm:"column:motivo_consulta;type:text" json:"motivo_consulta,omitempty"`
	AntecedentesMedicos       string `gorm:"column:antecedentes_medicos;type:text" json:"antecedentes_medicos,omitempty"`
	AntecedentesOdontologicos string `gorm:"column:antecedentes_odontologicos;type:text" json:"antecedentes_odontologicos,omitempty"`
	ExamenExtraoral string  `gorm:"column:examen_extraoral;type:text" json:"examen_extraoral,omitempty"`
	ExamenIntraoral string  `gorm:"column:examen_intraoral;type:text" json:"examen_intraoral,omitempty"`
	Diagnostico     string  `gorm:"type:text" json:"diagnostico,omitempty"`
	Tratamiento     string  `gorm:"type:text" json:"tratamiento,omitempty"`
	PlanTratamiento string  `gorm:"column:plan_tratamiento;type:text" json:"plan_tratamiento,omitempty"`
	FechaCreacion   time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (HistorialClinico) TableName() string {
	return "historial_clinico"
}

// ResumenMotivo extracts a displayable reason from motivo_consulta,
// which historically holds either plain text or serialized JSON.
// For JSON the lookup order is motivo_principal, descripcion, motivo,
// then the first string value (by key order); an empty field yields
// the generic "Consulta registrada".
func (h *HistorialClinico) ResumenMotivo() string {
	raw := strings.TrimSpace(h.MotivoConsulta)
	if raw == "" {
		return "Consulta registrada"
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}

	for _, key := range []string{"motivo_principal", "descripcion", "motivo"} {
		if v, ok := parsed[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v, ok := parsed[k].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}

	return "Consulta registrada"
}
