package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(db *gorm.DB, usuario *entity.Usuario) error
	FindByID(db *gorm.DB, id uint) (*entity.Usuario, error)
	FindActiveByEmail(db *gorm.DB, email string) (*entity.Usuario, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Usuario, int64, error)
	Update(db *gorm.DB, usuario *entity.Usuario) error
	Deactivate(db *gorm.DB, id uint) (int64, error)
}
