package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type inventarioRepository struct{}

func NewInventarioRepository() domainRepo.InventarioRepository {
	return &inventarioRepository{}
}

func (r *inventarioRepository) Create(db *gorm.DB, item *entity.InventarioItem) error {
	return db.Create(item).Error
}

func (r *inventarioRepository) FindByID(db *gorm.DB, id uint) (*entity.InventarioItem, error) {
	var item entity.InventarioItem
	err := db.Where("id = ? AND activo = ?", id, true).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventarioRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.InventarioItem, int64, error) {
	var items []entity.InventarioItem
	var total int64

	query := db.Model(&entity.InventarioItem{}).Where("activo = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("nombre").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *inventarioRepository) Update(db *gorm.DB, item *entity.InventarioItem) error {
	return db.Save(item).Error
}

func (r *inventarioRepository) Deactivate(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.InventarioItem{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	return result.RowsAffected, result.Error
}
