package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoConsulta is a catalog entry for consultation types and their
// default pricing.
type TipoConsulta struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string          `gorm:"type:varchar(100);not null;uniqueIndex" json:"nombre"`
	Descripcion string          `gorm:"type:text" json:"descripcion,omitempty"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"precio"`
	Activo      bool            `gorm:"not null;default:true" json:"activo"`
	FechaCreacion time.Time     `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (TipoConsulta) TableName() string {
	return "tipos_consulta"
}
