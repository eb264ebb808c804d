package usecase

import (
	"context"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HistorialUsecase interface {
	Create(ctx context.Context, req *dto.CreateHistorialRequest) (*dto.HistorialResponse, error)
	ListByPaciente(ctx context.Context, pacienteID uint) (*dto.HistorialListResponse, error)
	ExportPDF(ctx context.Context, pacienteID uint) ([]byte, string, error)
}

type historialUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	historialRepo repository.HistorialClinicoRepository
	pacienteRepo  repository.PacienteRepository
	reportService *service.ReportService
}

func NewHistorialUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	historialRepo repository.HistorialClinicoRepository,
	pacienteRepo repository.PacienteRepository,
	reportService *service.ReportService,
) HistorialUsecase {
	return &historialUsecase{
		db:            db,
		log:           log,
		historialRepo: historialRepo,
		pacienteRepo:  pacienteRepo,
		reportService: reportService,
	}
}

// Create appends a history entry directly, without going through a
// consultation. Used for imported or retroactive records.
func (u *historialUsecase) Create(ctx context.Context, req *dto.CreateHistorialRequest) (*dto.HistorialResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), req.PacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", req.PacienteID, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	historial := &entity.HistorialClinico{
		PacienteID:                req.PacienteID,
		DoctorID:                  req.DoctorID,
		FechaConsulta:             time.Now(),
		MotivoConsulta:            req.MotivoConsulta,
		AntecedentesMedicos:       req.AntecedentesMedicos,
		AntecedentesOdontologicos: req.AntecedentesOdontologicos,
		ExamenExtraoral:           req.ExamenExtraoral,
		ExamenIntraoral:           req.ExamenIntraoral,
		Diagnostico:               req.Diagnostico,
		Tratamiento:               req.Tratamiento,
		PlanTratamiento:           req.PlanTratamiento,
	}

	if err := u.historialRepo.Create(u.db.WithContext(ctx), historial); err != nil {
		u.log.Warnf("Failed to create historial: %+v", err)
		return nil, err
	}

	return converter.HistorialToResponse(historial), nil
}

func (u *historialUsecase) ListByPaciente(ctx context.Context, pacienteID uint) (*dto.HistorialListResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", pacienteID, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	entradas, err := u.historialRepo.FindByPaciente(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to list historial for paciente %d: %+v", pacienteID, err)
		return nil, err
	}

	return &dto.HistorialListResponse{
		Entradas: converter.HistorialesToResponses(entradas),
		Total:    len(entradas),
	}, nil
}

// ExportPDF renders the full clinical history of a patient. Returns
// the document and a suggested filename.
func (u *historialUsecase) ExportPDF(ctx context.Context, pacienteID uint) ([]byte, string, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", pacienteID, err)
		return nil, "", err
	}
	if paciente == nil {
		return nil, "", ErrPacienteNotFound
	}

	entradas, err := u.historialRepo.FindByPaciente(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to list historial for paciente %d: %+v", pacienteID, err)
		return nil, "", err
	}

	pdf, err := u.reportService.HistorialPDF(paciente, entradas)
	if err != nil {
		u.log.Warnf("Failed to render historial PDF for paciente %d: %+v", pacienteID, err)
		return nil, "", err
	}

	filename := "historial_" + time.Now().Format("20060102") + ".pdf"
	return pdf, filename, nil
}
