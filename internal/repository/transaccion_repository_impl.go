package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type transaccionRepository struct{}

func NewTransaccionRepository() domainRepo.TransaccionRepository {
	return &transaccionRepository{}
}

func (r *transaccionRepository) Create(db *gorm.DB, tx *entity.TransaccionFinanciera) error {
	return db.Create(tx).Error
}

func (r *transaccionRepository) FindByID(db *gorm.DB, id uint) (*entity.TransaccionFinanciera, error) {
	var tx entity.TransaccionFinanciera
	err := db.Where("id = ?", id).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transaccionRepository) FindAll(db *gorm.DB, rango *domainRepo.RangoFechas, limit, offset int) ([]entity.TransaccionFinanciera, int64, error) {
	var txs []entity.TransaccionFinanciera
	var total int64

	query := applyRango(db.Model(&entity.TransaccionFinanciera{}), rango)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("fecha DESC, id DESC").Limit(limit).Offset(offset).Find(&txs).Error
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

func (r *transaccionRepository) Update(db *gorm.DB, tx *entity.TransaccionFinanciera) error {
	return db.Save(tx).Error
}

func (r *transaccionRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.TransaccionFinanciera{}, id)
	return result.RowsAffected, result.Error
}

func (r *transaccionRepository) TotalsByTipo(db *gorm.DB, rango *domainRepo.RangoFechas) ([]domainRepo.TotalPorTipo, error) {
	var rows []domainRepo.TotalPorTipo
	err := applyRango(db.Model(&entity.TransaccionFinanciera{}), rango).
		Select("tipo, SUM(monto) as total").
		Group("tipo").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *transaccionRepository) TotalsByCategoria(db *gorm.DB, rango *domainRepo.RangoFechas) ([]domainRepo.TotalPorCategoria, error) {
	var rows []domainRepo.TotalPorCategoria
	err := applyRango(db.Model(&entity.TransaccionFinanciera{}), rango).
		Select("categoria, tipo, SUM(monto) as total").
		Group("categoria, tipo").
		Order("categoria").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *transaccionRepository) TotalsByMes(db *gorm.DB, rango *domainRepo.RangoFechas) ([]domainRepo.TotalPorMes, error) {
	var rows []domainRepo.TotalPorMes
	err := applyRango(db.Model(&entity.TransaccionFinanciera{}), rango).
		Select("DATE_FORMAT(fecha, '%Y-%m') as mes, tipo, SUM(monto) as total").
		Group("mes, tipo").
		Order("mes").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func applyRango(query *gorm.DB, rango *domainRepo.RangoFechas) *gorm.DB {
	if rango == nil {
		return query
	}
	if !rango.Desde.IsZero() {
		query = query.Where("fecha >= ?", rango.Desde.Format("2006-01-02"))
	}
	if !rango.Hasta.IsZero() {
		query = query.Where("fecha <= ?", rango.Hasta.Format("2006-01-02"))
	}
	return query
}
