package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTransaccionNotFound = errors.New("Transacción no encontrada")
	ErrInvalidTipo         = errors.New("Tipo de transacción inválido")
	ErrInvalidMonto        = errors.New("El monto debe ser mayor a cero")
)

// ResumenFinanciero aggregates income and expense views for the
// reporting endpoints.
type ResumenFinanciero struct {
	PorTipo      []repository.TotalPorTipo      `json:"por_tipo"`
	PorCategoria []repository.TotalPorCategoria `json:"por_categoria"`
	PorMes       []repository.TotalPorMes       `json:"por_mes"`
}

type FinanzasUsecase interface {
	Create(ctx context.Context, req *dto.CreateTransaccionRequest) (*dto.TransaccionResponse, error)
	List(ctx context.Context, desde, hasta string, page, limit int) (*dto.TransaccionListResponse, error)
	Update(ctx context.Context, id uint, req *dto.CreateTransaccionRequest) (*dto.TransaccionResponse, error)
	Delete(ctx context.Context, id uint) error
	Resumen(ctx context.Context, desde, hasta string) (*ResumenFinanciero, error)
	PorCategoria(ctx context.Context, desde, hasta string) ([]repository.TotalPorCategoria, error)
	PorMes(ctx context.Context, desde, hasta string) ([]repository.TotalPorMes, error)
}

type finanzasUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	transaccionRepo repository.TransaccionRepository
}

func NewFinanzasUsecase(db *gorm.DB, log *logrus.Logger, transaccionRepo repository.TransaccionRepository) FinanzasUsecase {
	return &finanzasUsecase{
		db:              db,
		log:             log,
		transaccionRepo: transaccionRepo,
	}
}

func (u *finanzasUsecase) Create(ctx context.Context, req *dto.CreateTransaccionRequest) (*dto.TransaccionResponse, error) {
	tx, err := u.buildTransaccion(req)
	if err != nil {
		return nil, err
	}

	if err := u.transaccionRepo.Create(u.db.WithContext(ctx), tx); err != nil {
		u.log.Warnf("Failed to create transaccion: %+v", err)
		return nil, err
	}

	return converter.TransaccionToResponse(tx), nil
}

func (u *finanzasUsecase) List(ctx context.Context, desde, hasta string, page, limit int) (*dto.TransaccionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	rango, err := parseRango(desde, hasta)
	if err != nil {
		return nil, err
	}

	transacciones, total, err := u.transaccionRepo.FindAll(u.db.WithContext(ctx), rango, limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to list transacciones: %+v", err)
		return nil, err
	}

	return &dto.TransaccionListResponse{
		Transacciones: converter.TransaccionesToResponses(transacciones),
		Total:         total,
	}, nil
}

func (u *finanzasUsecase) Update(ctx context.Context, id uint, req *dto.CreateTransaccionRequest) (*dto.TransaccionResponse, error) {
	existing, err := u.transaccionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find transaccion %d: %+v", id, err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrTransaccionNotFound
	}

	updated, err := u.buildTransaccion(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.FechaCreacion = existing.FechaCreacion

	if err := u.transaccionRepo.Update(u.db.WithContext(ctx), updated); err != nil {
		u.log.Warnf("Failed to update transaccion %d: %+v", id, err)
		return nil, err
	}

	return converter.TransaccionToResponse(updated), nil
}

func (u *finanzasUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.transaccionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete transaccion %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrTransaccionNotFound
	}
	return nil
}

// Resumen returns totals grouped by tipo, categoria and month, all
// over the same optional date range.
func (u *finanzasUsecase) Resumen(ctx context.Context, desde, hasta string) (*ResumenFinanciero, error) {
	rango, err := parseRango(desde, hasta)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	porTipo, err := u.transaccionRepo.TotalsByTipo(db, rango)
	if err != nil {
		u.log.Warnf("Failed to aggregate by tipo: %+v", err)
		return nil, err
	}

	porCategoria, err := u.transaccionRepo.TotalsByCategoria(db, rango)
	if err != nil {
		u.log.Warnf("Failed to aggregate by categoria: %+v", err)
		return nil, err
	}

	porMes, err := u.transaccionRepo.TotalsByMes(db, rango)
	if err != nil {
		u.log.Warnf("Failed to aggregate by mes: %+v", err)
		return nil, err
	}

	return &ResumenFinanciero{
		PorTipo:      porTipo,
		PorCategoria: porCategoria,
		PorMes:       porMes,
	}, nil
}

func (u *finanzasUsecase) PorCategoria(ctx context.Context, desde, hasta string) ([]repository.TotalPorCategoria, error) {
	rango, err := parseRango(desde, hasta)
	if err != nil {
		return nil, err
	}

	rows, err := u.transaccionRepo.TotalsByCategoria(u.db.WithContext(ctx), rango)
	if err != nil {
		u.log.Warnf("Failed to aggregate by categoria: %+v", err)
		return nil, err
	}
	return rows, nil
}

func (u *finanzasUsecase) PorMes(ctx context.Context, desde, hasta string) ([]repository.TotalPorMes, error) {
	rango, err := parseRango(desde, hasta)
	if err != nil {
		return nil, err
	}

	rows, err := u.transaccionRepo.TotalsByMes(u.db.WithContext(ctx), rango)
	if err != nil {
		u.log.Warnf("Failed to aggregate by mes: %+v", err)
		return nil, err
	}
	return rows, nil
}

func (u *finanzasUsecase) buildTransaccion(req *dto.CreateTransaccionRequest) (*entity.TransaccionFinanciera, error) {
	if !entity.IsValidTransaccionTipo(req.Tipo) {
		return nil, ErrInvalidTipo
	}

	monto, err := decimal.NewFromString(req.Monto)
	if err != nil || !monto.IsPositive() {
		return nil, ErrInvalidMonto
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, errors.New("invalid fecha")
	}

	return &entity.TransaccionFinanciera{
		Tipo:        req.Tipo,
		Monto:       monto,
		Categoria:   req.Categoria,
		Descripcion: req.Descripcion,
		Fecha:       fecha,
	}, nil
}

func parseRango(desde, hasta string) (*repository.RangoFechas, error) {
	rango := &repository.RangoFechas{}
	if desde != "" {
		t, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return nil, errors.New("invalid desde")
		}
		rango.Desde = t
	}
	if hasta != "" {
		t, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return nil, errors.New("invalid hasta")
		}
		rango.Hasta = t
	}
	return rango, nil
}
