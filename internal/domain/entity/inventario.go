package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert levels derived from stock thresholds. Never persisted; always
// recomputed at read time.
const (
	AlertaSinStock     = "Sin stock"
	AlertaStockCritico = "Stock crítico"
	AlertaStockBajo    = "Stock bajo"
	AlertaNormal       = "Normal"
)

// InventarioItem is a stock-tracked supply item.
type InventarioItem struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre         string          `gorm:"type:varchar(255);not null" json:"nombre"`
	Descripcion    string          `gorm:"type:text" json:"descripcion,omitempty"`
	Categoria      string          `gorm:"type:varchar(100);index" json:"categoria,omitempty"`
	StockActual    int             `gorm:"column:stock_actual;not null;default:0" json:"stock_actual"`
	StockMinimo    int             `gorm:"column:stock_minimo;not null;default:0" json:"stock_minimo"`
	StockMaximo    int             `gorm:"column:stock_maximo;not null;default:0" json:"stock_maximo"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:decimal(10,2);not null;default:0" json:"precio_unitario"`
	Activo         bool            `gorm:"not null;default:true;index" json:"activo"`
	FechaCreacion  time.Time       `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time   `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (InventarioItem) TableName() string {
	return "inventario"
}

// NivelAlerta classifies the item against its thresholds. Returns the
// alert level and its severity tag (danger/warning/info/success).
func (i *InventarioItem) NivelAlerta() (string, string) {
	switch {
	case i.StockActual == 0:
		return AlertaSinStock, "danger"
	case i.StockActual <= i.StockMinimo:
		return AlertaStockCritico, "warning"
	case float64(i.StockActual) <= float64(i.StockMinimo)*1.5:
		return AlertaStockBajo, "info"
	default:
		return AlertaNormal, "success"
	}
}
