package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type InventarioRepository interface {
	Create(db *gorm.DB, item *entity.InventarioItem) error
	FindByID(db *gorm.DB, id uint) (*entity.InventarioItem, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.InventarioItem, int64, error)
	Update(db *gorm.DB, item *entity.InventarioItem) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
}
