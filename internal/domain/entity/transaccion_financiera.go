package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. Monto must be positive for both.
const (
	TransaccionIngreso = "ingreso"
	TransaccionGasto   = "gasto"
)

type TransaccionFinanciera struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Tipo          string          `gorm:"type:varchar(10);not null;index" json:"tipo"`
	Monto         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monto"`
	Categoria     string          `gorm:"type:varchar(100);not null;index" json:"categoria"`
	Descripcion   string          `gorm:"type:text" json:"descripcion,omitempty"`
	Fecha         time.Time       `gorm:"type:date;not null;index" json:"fecha"`
	RegistradoPor *uint           `gorm:"column:registrado_por" json:"registrado_por,omitempty"`
	FechaCreacion time.Time       `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (TransaccionFinanciera) TableName() string {
	return "transacciones_financieras"
}

// IsValidTransaccionTipo reports whether tipo is ingreso or gasto.
func IsValidTransaccionTipo(tipo string) bool {
	return tipo == TransaccionIngreso || tipo == TransaccionGasto
}
