package usecase

import (
	"context"
	"errors"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInventarioNotFound = errors.New("Artículo de inventario no encontrado")

type InventarioUsecase interface {
	Create(ctx context.Context, req *dto.CreateInventarioRequest) (*dto.InventarioResponse, error)
	List(ctx context.Context, page, limit int) (*dto.InventarioListResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.InventarioResponse, error)
	Update(ctx context.Context, id uint, req *dto.CreateInventarioRequest) (*dto.InventarioResponse, error)
	Deactivate(ctx context.Context, id uint) error
}

type inventarioUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	inventarioRepo repository.InventarioRepository
}

func NewInventarioUsecase(db *gorm.DB, log *logrus.Logger, inventarioRepo repository.InventarioRepository) InventarioUsecase {
	return &inventarioUsecase{
		db:             db,
		log:            log,
		inventarioRepo: inventarioRepo,
	}
}

func (u *inventarioUsecase) Create(ctx context.Context, req *dto.CreateInventarioRequest) (*dto.InventarioResponse, error) {
	item := &entity.InventarioItem{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		StockActual: req.StockActual,
		StockMinimo: req.StockMinimo,
		StockMaximo: req.StockMaximo,
	}
	if req.PrecioUnitario != "" {
		precio, err := decimal.NewFromString(req.PrecioUnitario)
		if err != nil || precio.IsNegative() {
			return nil, errors.New("invalid precio_unitario")
		}
		item.PrecioUnitario = precio
	}

	if err := u.inventarioRepo.Create(u.db.WithContext(ctx), item); err != nil {
		u.log.Warnf("Failed to create inventario item: %+v", err)
		return nil, err
	}

	return converter.InventarioToResponse(item), nil
}

func (u *inventarioUsecase) List(ctx context.Context, page, limit int) (*dto.InventarioListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	items, total, err := u.inventarioRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to list inventario: %+v", err)
		return nil, err
	}

	return &dto.InventarioListResponse{
		Items: converter.InventarioToResponses(items),
		Total: total,
	}, nil
}

func (u *inventarioUsecase) GetByID(ctx context.Context, id uint) (*dto.InventarioResponse, error) {
	item, err := u.inventarioRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find inventario item %d: %+v", id, err)
		return nil, err
	}
	if item == nil {
		return nil, ErrInventarioNotFound
	}

	return converter.InventarioToResponse(item), nil
}

func (u *inventarioUsecase) Update(ctx context.Context, id uint, req *dto.CreateInventarioRequest) (*dto.InventarioResponse, error) {
	item, err := u.inventarioRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find inventario item %d: %+v", id, err)
		return nil, err
	}
	if item == nil {
		return nil, ErrInventarioNotFound
	}

	item.Nombre = req.Nombre
	item.Descripcion = req.Descripcion
	item.Categoria = req.Categoria
	item.StockActual = req.StockActual
	item.StockMinimo = req.StockMinimo
	item.StockMaximo = req.StockMaximo
	if req.PrecioUnitario != "" {
		precio, err := decimal.NewFromString(req.PrecioUnitario)
		if err != nil || precio.IsNegative() {
			return nil, errors.New("invalid precio_unitario")
		}
		item.PrecioUnitario = precio
	}

	if err := u.inventarioRepo.Update(u.db.WithContext(ctx), item); err != nil {
		u.log.Warnf("Failed to update inventario item %d: %+v", id, err)
		return nil, err
	}

	return converter.InventarioToResponse(item), nil
}

func (u *inventarioUsecase) Deactivate(ctx context.Context, id uint) error {
	affected, err := u.inventarioRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate inventario item %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrInventarioNotFound
	}
	return nil
}
