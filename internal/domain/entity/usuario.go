package entity

import "time"

// Usuario is the centralized authentication record. Accounts are never
// hard-deleted; deactivation flips Activo.
type Usuario struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre           string    `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellidos        string    `gorm:"type:varchar(150);not null" json:"apellidos"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"type:varchar(255);not null" json:"-"`
	Rol              string    `gorm:"type:varchar(20);not null;index" json:"rol"`
	Activo           bool      `gorm:"not null;default:true;index" json:"activo"`
	AdminPIN         string    `gorm:"column:admin_pin;type:varchar(255)" json:"-"`
	TOTPSecret       string    `gorm:"column:totp_secret;type:varchar(64)" json:"-"`
	TwoFactorEnabled bool      `gorm:"column:two_factor_enabled;not null;default:false" json:"two_factor_enabled"`
	FechaCreacion    time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// Role constants
const (
	RolAdministrador = "Administrador"
	RolDoctor        = "Doctor"
	RolSecretaria    = "Secretaria"
)

// NombreCompleto returns "Nombre Apellidos" for token claims and logs.
func (u *Usuario) NombreCompleto() string {
	if u.Apellidos == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellidos
}

// IsAdministrador reports whether the user holds the administrator role.
func (u *Usuario) IsAdministrador() bool {
	return u.Rol == RolAdministrador
}
