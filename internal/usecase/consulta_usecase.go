package usecase

import (
	"context"
	"errors"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/pkg/mysqlerr"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultaNotFound       = errors.New("Consulta no encontrada")
	ErrConsultationInProgress = errors.New("El paciente ya tiene una consulta en proceso")
	ErrInvalidConsultaEstado  = errors.New("Estado de consulta inválido")
)

type ConsultaUsecase interface {
	Start(ctx context.Context, doctorID uint, req *dto.StartConsultaRequest) (*dto.ConsultaResponse, error)
	GetByPaciente(ctx context.Context, pacienteID uint) (*dto.ConsultaResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateConsultaRequest) (*dto.ConsultaResponse, error)
	UpdateEstado(ctx context.Context, id uint, req *dto.UpdateConsultaEstadoRequest) (*dto.ConsultaResponse, error)
	Terminar(ctx context.Context, id uint) (*dto.TerminarConsultaResponse, error)
}

type consultaUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	consultaRepo  repository.ConsultaActualRepository
	historialRepo repository.HistorialClinicoRepository
	pacienteRepo  repository.PacienteRepository
	citaRepo      repository.CitaRepository
	auditService  service.AuditService
}

func NewConsultaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultaRepo repository.ConsultaActualRepository,
	historialRepo repository.HistorialClinicoRepository,
	pacienteRepo repository.PacienteRepository,
	citaRepo repository.CitaRepository,
	auditService service.AuditService,
) ConsultaUsecase {
	return &consultaUsecase{
		db:            db,
		log:           log,
		consultaRepo:  consultaRepo,
		historialRepo: historialRepo,
		pacienteRepo:  pacienteRepo,
		citaRepo:      citaRepo,
		auditService:  auditService,
	}
}

// Start opens a consultation for a patient. The unique index on
// consultas_actuales.paciente_id is the arbiter of the one-active-
// consultation rule; a duplicate key maps to ErrConsultationInProgress.
// When a cita is linked, it moves to En_Proceso in the same flow.
func (u *consultaUsecase) Start(ctx context.Context, doctorID uint, req *dto.StartConsultaRequest) (*dto.ConsultaResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), req.PacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", req.PacienteID, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consulta := &entity.ConsultaActual{
		PacienteID:     req.PacienteID,
		DoctorID:       doctorID,
		CitaID:         req.CitaID,
		Estado:         entity.ConsultaEnProceso,
		MotivoConsulta: req.MotivoConsulta,
	}

	if err := u.consultaRepo.Create(tx, consulta); err != nil {
		if mysqlerr.IsDuplicateKey(err) {
			return nil, ErrConsultationInProgress
		}
		u.log.Warnf("Failed to start consulta: %+v", err)
		return nil, err
	}

	if req.CitaID != nil {
		cita, err := u.citaRepo.FindByID(tx, *req.CitaID)
		if err != nil {
			u.log.Warnf("Failed to find cita %d: %+v", *req.CitaID, err)
			return nil, err
		}
		if cita != nil && cita.Estado.CanTransition(entity.CitaEnProceso) {
			if _, err := u.citaRepo.UpdateEstado(tx, cita.ID, cita.Estado, entity.CitaEnProceso); err != nil {
				u.log.Warnf("Failed to move cita %d to En_Proceso: %+v", cita.ID, err)
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit consulta start: %+v", err)
		return nil, err
	}

	userID := doctorID
	u.auditService.Log(ctx, u.db, &userID, entity.AccionConsultaIniciar, entity.JSON{
		"consulta_id": consulta.ID,
		"paciente_id": req.PacienteID,
	})

	return converter.ConsultaToResponse(consulta), nil
}

func (u *consultaUsecase) GetByPaciente(ctx context.Context, pacienteID uint) (*dto.ConsultaResponse, error) {
	consulta, err := u.consultaRepo.FindActiveByPaciente(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to find active consulta for paciente %d: %+v", pacienteID, err)
		return nil, err
	}
	if consulta == nil {
		return nil, ErrConsultaNotFound
	}

	return converter.ConsultaToResponse(consulta), nil
}

// Update overwrites the clinical fields in place. The consultation is
// a working document until finalized.
func (u *consultaUsecase) Update(ctx context.Context, id uint, req *dto.UpdateConsultaRequest) (*dto.ConsultaResponse, error) {
	consulta, err := u.consultaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consulta %d: %+v", id, err)
		return nil, err
	}
	if consulta == nil {
		return nil, ErrConsultaNotFound
	}

	consulta.MotivoConsulta = req.MotivoConsulta
	consulta.AntecedentesMedicos = req.AntecedentesMedicos
	consulta.AntecedentesOdontologicos = req.AntecedentesOdontologicos
	consulta.ExamenExtraoral = req.ExamenExtraoral
	consulta.ExamenIntraoral = req.ExamenIntraoral
	consulta.Diagnostico = req.Diagnostico
	consulta.Tratamiento = req.Tratamiento
	consulta.PlanTratamiento = req.PlanTratamiento

	if err := u.consultaRepo.Update(u.db.WithContext(ctx), consulta); err != nil {
		u.log.Warnf("Failed to update consulta %d: %+v", id, err)
		return nil, err
	}

	return converter.ConsultaToResponse(consulta), nil
}

func (u *consultaUsecase) UpdateEstado(ctx context.Context, id uint, req *dto.UpdateConsultaEstadoRequest) (*dto.ConsultaResponse, error) {
	estado := entity.ConsultaEstado(req.Estado)
	if estado != entity.ConsultaEnProceso && estado != entity.ConsultaPausada {
		return nil, ErrInvalidConsultaEstado
	}

	consulta, err := u.consultaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consulta %d: %+v", id, err)
		return nil, err
	}
	if consulta == nil {
		return nil, ErrConsultaNotFound
	}

	consulta.Estado = estado
	if err := u.consultaRepo.Update(u.db.WithContext(ctx), consulta); err != nil {
		u.log.Warnf("Failed to update estado of consulta %d: %+v", id, err)
		return nil, err
	}

	return converter.ConsultaToResponse(consulta), nil
}

// Terminar finalizes a consultation: the snapshot is inserted into
// historial_clinico, the working row is deleted, and any linked cita
// moves to Completada — all inside one transaction, so a consultation
// can never exist both as current and as history.
func (u *consultaUsecase) Terminar(ctx context.Context, id uint) (*dto.TerminarConsultaResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consulta, err := u.consultaRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find consulta %d: %+v", id, err)
		return nil, err
	}
	if consulta == nil {
		return nil, ErrConsultaNotFound
	}

	historial := consulta.ToHistorial()
	if err := u.historialRepo.Create(tx, historial); err != nil {
		u.log.Warnf("Failed to create historial from consulta %d: %+v", id, err)
		return nil, err
	}

	if err := u.consultaRepo.Delete(tx, consulta.ID); err != nil {
		u.log.Warnf("Failed to delete consulta %d: %+v", id, err)
		return nil, err
	}

	if consulta.CitaID != nil {
		cita, err := u.citaRepo.FindByID(tx, *consulta.CitaID)
		if err != nil {
			u.log.Warnf("Failed to find cita %d: %+v", *consulta.CitaID, err)
			return nil, err
		}
		if cita != nil && cita.Estado.CanTransition(entity.CitaCompletada) {
			if _, err := u.citaRepo.UpdateEstado(tx, cita.ID, cita.Estado, entity.CitaCompletada); err != nil {
				u.log.Warnf("Failed to complete cita %d: %+v", cita.ID, err)
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit consulta finalize: %+v", err)
		return nil, err
	}

	userID, _ := middlewareUserID(ctx)
	u.auditService.Log(ctx, u.db, userID, entity.AccionConsultaTerminar, entity.JSON{
		"consulta_id":  id,
		"historial_id": historial.ID,
		"paciente_id":  consulta.PacienteID,
	})

	return &dto.TerminarConsultaResponse{HistorialID: historial.ID}, nil
}
