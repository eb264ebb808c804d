package usecase

import (
	"context"
	"errors"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/pkg/mysqlerr"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTipoConsultaNotFound = errors.New("Tipo de consulta no encontrado")
	ErrTipoConsultaExists   = errors.New("Ya existe un tipo de consulta con ese nombre")
)

type TipoConsultaUsecase interface {
	Create(ctx context.Context, req *dto.CreateTipoConsultaRequest) (*dto.TipoConsultaResponse, error)
	List(ctx context.Context) ([]dto.TipoConsultaResponse, error)
	Update(ctx context.Context, id uint, req *dto.CreateTipoConsultaRequest) (*dto.TipoConsultaResponse, error)
	Deactivate(ctx context.Context, id uint) error
}

type tipoConsultaUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	tipoRepo repository.TipoConsultaRepository
}

func NewTipoConsultaUsecase(db *gorm.DB, log *logrus.Logger, tipoRepo repository.TipoConsultaRepository) TipoConsultaUsecase {
	return &tipoConsultaUsecase{
		db:       db,
		log:      log,
		tipoRepo: tipoRepo,
	}
}

func (u *tipoConsultaUsecase) Create(ctx context.Context, req *dto.CreateTipoConsultaRequest) (*dto.TipoConsultaResponse, error) {
	tipo := &entity.TipoConsulta{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	}
	if req.Precio != "" {
		precio, err := decimal.NewFromString(req.Precio)
		if err != nil || precio.IsNegative() {
			return nil, errors.New("invalid precio")
		}
		tipo.Precio = precio
	}

	if err := u.tipoRepo.Create(u.db.WithContext(ctx), tipo); err != nil {
		if mysqlerr.IsDuplicateKey(err) {
			return nil, ErrTipoConsultaExists
		}
		u.log.Warnf("Failed to create tipo consulta: %+v", err)
		return nil, err
	}

	return converter.TipoConsultaToResponse(tipo), nil
}

func (u *tipoConsultaUsecase) List(ctx context.Context) ([]dto.TipoConsultaResponse, error) {
	tipos, err := u.tipoRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list tipos de consulta: %+v", err)
		return nil, err
	}

	return converter.TiposConsultaToResponses(tipos), nil
}

func (u *tipoConsultaUsecase) Update(ctx context.Context, id uint, req *dto.CreateTipoConsultaRequest) (*dto.TipoConsultaResponse, error) {
	tipo, err := u.tipoRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find tipo consulta %d: %+v", id, err)
		return nil, err
	}
	if tipo == nil {
		return nil, ErrTipoConsultaNotFound
	}

	tipo.Nombre = req.Nombre
	tipo.Descripcion = req.Descripcion
	if req.Precio != "" {
		precio, err := decimal.NewFromString(req.Precio)
		if err != nil || precio.IsNegative() {
			return nil, errors.New("invalid precio")
		}
		tipo.Precio = precio
	}

	if err := u.tipoRepo.Update(u.db.WithContext(ctx), tipo); err != nil {
		if mysqlerr.IsDuplicateKey(err) {
			return nil, ErrTipoConsultaExists
		}
		u.log.Warnf("Failed to update tipo consulta %d: %+v", id, err)
		return nil, err
	}

	return converter.TipoConsultaToResponse(tipo), nil
}

func (u *tipoConsultaUsecase) Deactivate(ctx context.Context, id uint) error {
	affected, err := u.tipoRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate tipo consulta %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrTipoConsultaNotFound
	}
	return nil
}
