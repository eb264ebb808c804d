package repository

import (
	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type logSistemaRepository struct{}

func NewLogSistemaRepository() domainRepo.LogSistemaRepository {
	return &logSistemaRepository{}
}

func (r *logSistemaRepository) Create(db *gorm.DB, log *entity.LogSistema) error {
	return db.Create(log).Error
}

func (r *logSistemaRepository) FindRecent(db *gorm.DB, limit, offset int) ([]entity.LogSistema, int64, error) {
	var logs []entity.LogSistema
	var total int64

	if err := db.Model(&entity.LogSistema{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("fecha_creacion DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
