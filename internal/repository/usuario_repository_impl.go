package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type usuarioRepository struct{}

func NewUsuarioRepository() domainRepo.UsuarioRepository {
	return &usuarioRepository{}
}

func (r *usuarioRepository) Create(db *gorm.DB, usuario *entity.Usuario) error {
	return db.Create(usuario).Error
}

func (r *usuarioRepository) FindByID(db *gorm.DB, id uint) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := db.Where("id = ?", id).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

// FindActiveByEmail only matches active accounts: a deactivated user
// cannot authenticate even with correct credentials.
func (r *usuarioRepository) FindActiveByEmail(db *gorm.DB, email string) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := db.Where("email = ? AND activo = ?", email, true).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Usuario, int64, error) {
	var usuarios []entity.Usuario
	var total int64

	if err := db.Model(&entity.Usuario{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("apellidos, nombre").Limit(limit).Offset(offset).Find(&usuarios).Error
	if err != nil {
		return nil, 0, err
	}
	return usuarios, total, nil
}

func (r *usuarioRepository) Update(db *gorm.DB, usuario *entity.Usuario) error {
	return db.Save(usuario).Error
}

// Deactivate soft-deletes: users are never removed from storage.
func (r *usuarioRepository) Deactivate(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Usuario{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	return result.RowsAffected, result.Error
}
