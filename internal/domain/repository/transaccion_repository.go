package repository

import (
	"time"

	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

// RangoFechas is an optional date-range filter for aggregations.
// Zero values mean unbounded.
type RangoFechas struct {
	Desde time.Time
	Hasta time.Time
}

// TotalPorTipo is an aggregation row: SUM(monto) grouped by tipo.
type TotalPorTipo struct {
	Tipo  string `json:"tipo"`
	Total string `json:"total"`
}

// TotalPorCategoria groups by categoria and tipo.
type TotalPorCategoria struct {
	Categoria string `json:"categoria"`
	Tipo      string `json:"tipo"`
	Total     string `json:"total"`
}

// TotalPorMes groups by month (YYYY-MM) and tipo.
type TotalPorMes struct {
	Mes   string `json:"mes"`
	Tipo  string `json:"tipo"`
	Total string `json:"total"`
}

type TransaccionRepository interface {
	Create(db *gorm.DB, tx *entity.TransaccionFinanciera) error
	FindByID(db *gorm.DB, id uint) (*entity.TransaccionFinanciera, error)
	FindAll(db *gorm.DB, rango *RangoFechas, limit, offset int) ([]entity.TransaccionFinanciera, int64, error)
	Update(db *gorm.DB, tx *entity.TransaccionFinanciera) error
	Delete(db *gorm.DB, id uint) (int64, error)
	TotalsByTipo(db *gorm.DB, rango *RangoFechas) ([]TotalPorTipo, error)
	TotalsByCategoria(db *gorm.DB, rango *RangoFechas) ([]TotalPorCategoria, error)
	TotalsByMes(db *gorm.DB, rango *RangoFechas) ([]TotalPorMes, error)
}
