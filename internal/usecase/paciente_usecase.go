package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPacienteNotFound = errors.New("Paciente no encontrado")

type PacienteUsecase interface {
	Create(ctx context.Context, req *dto.CreatePacienteRequest) (*dto.PacienteResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PacienteResponse, error)
	List(ctx context.Context, page, limit int) (*dto.PacienteListResponse, error)
	Search(ctx context.Context, term string) ([]dto.PacienteResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePacienteRequest) (*dto.PacienteResponse, error)
	Deactivate(ctx context.Context, id uint) error
}

type pacienteUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	pacienteRepo repository.PacienteRepository
}

func NewPacienteUsecase(db *gorm.DB, log *logrus.Logger, pacienteRepo repository.PacienteRepository) PacienteUsecase {
	return &pacienteUsecase{
		db:           db,
		log:          log,
		pacienteRepo: pacienteRepo,
	}
}

func (u *pacienteUsecase) Create(ctx context.Context, req *dto.CreatePacienteRequest) (*dto.PacienteResponse, error) {
	paciente := &entity.Paciente{
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		Sexo:      req.Sexo,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Estado:    entity.PacienteEstadoRegistrado,
	}

	if req.FechaNacimiento != "" {
		fecha, err := time.Parse("2006-01-02", req.FechaNacimiento)
		if err == nil {
			paciente.FechaNacimiento = &fecha
		}
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		paciente.CreadoPor = &userID
	}

	if err := u.pacienteRepo.Create(u.db.WithContext(ctx), paciente); err != nil {
		u.log.Warnf("Failed to create paciente: %+v", err)
		return nil, err
	}

	return converter.PacienteToResponse(paciente), nil
}

func (u *pacienteUsecase) GetByID(ctx context.Context, id uint) (*dto.PacienteResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", id, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	return converter.PacienteToResponse(paciente), nil
}

func (u *pacienteUsecase) List(ctx context.Context, page, limit int) (*dto.PacienteListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	pacientes, total, err := u.pacienteRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to list pacientes: %+v", err)
		return nil, err
	}

	return &dto.PacienteListResponse{
		Pacientes: converter.PacientesToResponses(pacientes),
		Total:     total,
	}, nil
}

func (u *pacienteUsecase) Search(ctx context.Context, term string) ([]dto.PacienteResponse, error) {
	pacientes, err := u.pacienteRepo.Search(u.db.WithContext(ctx), term)
	if err != nil {
		u.log.Warnf("Failed to search pacientes: %+v", err)
		return nil, err
	}

	return converter.PacientesToResponses(pacientes), nil
}

// Update also promotes temporary patients: completing the record of a
// paciente created inline from a cita upgrades its estado to
// Registrado.
func (u *pacienteUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePacienteRequest) (*dto.PacienteResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", id, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	paciente.Nombre = req.Nombre
	paciente.Apellidos = req.Apellidos
	paciente.Sexo = req.Sexo
	paciente.Telefono = req.Telefono
	paciente.Direccion = req.Direccion
	if req.FechaNacimiento != "" {
		if fecha, err := time.Parse("2006-01-02", req.FechaNacimiento); err == nil {
			paciente.FechaNacimiento = &fecha
		}
	}
	if paciente.IsTemporal() {
		paciente.Estado = entity.PacienteEstadoRegistrado
	}

	if err := u.pacienteRepo.Update(u.db.WithContext(ctx), paciente); err != nil {
		u.log.Warnf("Failed to update paciente %d: %+v", id, err)
		return nil, err
	}

	return converter.PacienteToResponse(paciente), nil
}

func (u *pacienteUsecase) Deactivate(ctx context.Context, id uint) error {
	affected, err := u.pacienteRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate paciente %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPacienteNotFound
	}
	return nil
}
