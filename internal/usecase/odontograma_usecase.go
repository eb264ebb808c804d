package usecase

import (
	"context"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OdontogramaUsecase interface {
	GetByPaciente(ctx context.Context, pacienteID uint) (*dto.OdontogramaResponse, error)
	UpsertPieza(ctx context.Context, pacienteID uint, req *dto.UpsertPiezaRequest) (*dto.OdontogramaResponse, error)
}

type odontogramaUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	odontogramaRepo repository.OdontogramaRepository
	pacienteRepo    repository.PacienteRepository
}

func NewOdontogramaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	odontogramaRepo repository.OdontogramaRepository,
	pacienteRepo repository.PacienteRepository,
) OdontogramaUsecase {
	return &odontogramaUsecase{
		db:              db,
		log:             log,
		odontogramaRepo: odontogramaRepo,
		pacienteRepo:    pacienteRepo,
	}
}

func (u *odontogramaUsecase) GetByPaciente(ctx context.Context, pacienteID uint) (*dto.OdontogramaResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", pacienteID, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	piezas, err := u.odontogramaRepo.FindByPaciente(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to load odontograma for paciente %d: %+v", pacienteID, err)
		return nil, err
	}

	return converter.OdontogramaToResponse(pacienteID, piezas), nil
}

// UpsertPieza records the state of one dental piece. Writing the same
// piece twice updates it; the odontogram keeps only the latest state
// per piece.
func (u *odontogramaUsecase) UpsertPieza(ctx context.Context, pacienteID uint, req *dto.UpsertPiezaRequest) (*dto.OdontogramaResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", pacienteID, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	pieza := &entity.Odontograma{
		PacienteID:  pacienteID,
		PiezaDental: req.PiezaDental,
		Estado:      req.Estado,
		Notas:       req.Notas,
	}

	if err := u.odontogramaRepo.Upsert(u.db.WithContext(ctx), pieza); err != nil {
		u.log.Warnf("Failed to upsert pieza %s for paciente %d: %+v", req.PiezaDental, pacienteID, err)
		return nil, err
	}

	piezas, err := u.odontogramaRepo.FindByPaciente(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to reload odontograma for paciente %d: %+v", pacienteID, err)
		return nil, err
	}

	return converter.OdontogramaToResponse(pacienteID, piezas), nil
}
