package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// LogSistema is a system audit trail entry.
type LogSistema struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID     *uint     `gorm:"column:usuario_id;index" json:"usuario_id,omitempty"`
	Accion        string    `gorm:"type:varchar(100);not null;index" json:"accion"`
	Metadata      JSON      `gorm:"type:json" json:"metadata,omitempty"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime;index" json:"fecha_creacion"`
}

func (LogSistema) TableName() string {
	return "logs_sistema"
}

// JSON type for GORM JSON column support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into JSON, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AccionLogin            = "auth.login"
	AccionLogin2FA         = "auth.login_2fa"
	AccionLogout           = "auth.logout"
	AccionSesionExtendida  = "auth.extend_session"
	Accion2FASetup         = "auth.2fa_setup"
	Accion2FAConfirmado    = "auth.2fa_confirm"
	AccionCitaCrear        = "cita.crear"
	AccionCitaReagendar    = "cita.reagendar"
	AccionCitaCancelar     = "cita.cancelar"
	AccionCitaEstado       = "cita.cambio_estado"
	AccionCitaNoAsistio    = "cita.no_asistio_sweep"
	AccionConsultaIniciar  = "consulta.iniciar"
	AccionConsultaTerminar = "consulta.terminar"
	AccionUsuarioCrear     = "usuario.crear"
	AccionUsuarioActualizar = "usuario.actualizar"
	AccionUsuarioDesactivar = "usuario.desactivar"
	AccionRadiografiaSubir = "radiografia.subir_archivo"
)
