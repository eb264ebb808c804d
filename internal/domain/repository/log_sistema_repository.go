package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type LogSistemaRepository interface {
	Create(db *gorm.DB, log *entity.LogSistema) error
	FindRecent(db *gorm.DB, limit, offset int) ([]entity.LogSistema, int64, error)
}
