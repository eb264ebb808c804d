package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/pkg/mysqlerr"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCitaNotFound      = errors.New("Cita no encontrada")
	ErrSlotTaken         = errors.New("El horario seleccionado ya está ocupado")
	ErrInvalidEstado     = errors.New("Estado de cita inválido")
	ErrInvalidTransition = errors.New("Transición de estado no permitida")
	ErrPacienteRequired  = errors.New("Se requiere paciente_id o nombre_paciente")
	ErrCitaTerminal      = errors.New("La cita ya está en un estado final")
)

type CitaUsecase interface {
	Create(ctx context.Context, req *dto.CreateCitaRequest) (*dto.CitaResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CitaResponse, error)
	Search(ctx context.Context, filter *repository.CitaFilter) (*dto.CitaListResponse, error)
	UpdateEstado(ctx context.Context, id uint, req *dto.UpdateCitaEstadoRequest) (*dto.CitaResponse, error)
	Reschedule(ctx context.Context, id uint, req *dto.RescheduleCitaRequest) (*dto.CitaResponse, error)
	Cancel(ctx context.Context, id uint) error
	MarkNoShows(ctx context.Context) (*dto.SweepResponse, error)
}

type citaUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	citaRepo     repository.CitaRepository
	pacienteRepo repository.PacienteRepository
	tipoRepo     repository.TipoConsultaRepository
	sweeper      *service.NoShowSweeper
	auditService service.AuditService
}

func NewCitaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	citaRepo repository.CitaRepository,
	pacienteRepo repository.PacienteRepository,
	tipoRepo repository.TipoConsultaRepository,
	sweeper *service.NoShowSweeper,
	auditService service.AuditService,
) CitaUsecase {
	return &citaUsecase{
		db:           db,
		log:          log,
		citaRepo:     citaRepo,
		pacienteRepo: pacienteRepo,
		tipoRepo:     tipoRepo,
		sweeper:      sweeper,
		auditService: auditService,
	}
}

// Create books an appointment. When only nombre_paciente is given, a
// temporary Paciente is created in the same transaction so the cita
// always has a patient to hang clinical data on later. Slot
// exclusivity is enforced by the unique slot key; a duplicate-key
// error from MySQL maps to ErrSlotTaken.
func (u *citaUsecase) Create(ctx context.Context, req *dto.CreateCitaRequest) (*dto.CitaResponse, error) {
	if req.PacienteID == 0 && strings.TrimSpace(req.NombrePaciente) == "" {
		return nil, ErrPacienteRequired
	}

	fecha, err := time.Parse("2006-01-02", req.FechaConsulta)
	if err != nil {
		return nil, fmt.Errorf("invalid fecha_consulta: %w", err)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	cita := &entity.Cita{
		DoctorID:      req.DoctorID,
		FechaCita:     fecha,
		HoraCita:      req.HorarioConsulta,
		Estado:        entity.CitaProgramada,
		Observaciones: req.Observaciones,
	}

	if req.PacienteID != 0 {
		paciente, err := u.pacienteRepo.FindByID(tx, req.PacienteID)
		if err != nil {
			u.log.Warnf("Failed to find paciente %d: %+v", req.PacienteID, err)
			return nil, err
		}
		if paciente == nil {
			return nil, ErrPacienteNotFound
		}
		cita.PacienteID = &paciente.ID
	} else {
		temporal := &entity.Paciente{
			Nombre: strings.TrimSpace(req.NombrePaciente),
			Estado: entity.PacienteEstadoTemporal,
		}
		if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
			temporal.CreadoPor = &userID
		}
		if err := u.pacienteRepo.Create(tx, temporal); err != nil {
			u.log.Warnf("Failed to create temporary paciente: %+v", err)
			return nil, err
		}
		cita.PacienteID = &temporal.ID
		cita.NombrePaciente = temporal.Nombre
	}

	if req.TipoConsultaID != 0 {
		tipo, err := u.tipoRepo.FindByID(tx, req.TipoConsultaID)
		if err != nil {
			u.log.Warnf("Failed to find tipo consulta %d: %+v", req.TipoConsultaID, err)
			return nil, err
		}
		if tipo != nil {
			cita.TipoConsultaID = &tipo.ID
			cita.Precio = tipo.Precio
		}
	}
	if req.Precio != "" {
		precio, err := decimal.NewFromString(req.Precio)
		if err != nil || precio.IsNegative() {
			return nil, errors.New("invalid precio")
		}
		cita.Precio = precio
	}

	slotKey := entity.BuildSlotKey(cita.DoctorID, cita.FechaCita, cita.HoraCita)
	cita.SlotKey = &slotKey

	if err := u.citaRepo.Create(tx, cita); err != nil {
		if mysqlerr.IsDuplicateKey(err) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create cita: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit cita creation: %+v", err)
		return nil, err
	}

	userID, _ := middlewareUserID(ctx)
	u.auditService.Log(ctx, u.db, userID, entity.AccionCitaCrear, entity.JSON{
		"cita_id":   cita.ID,
		"doctor_id": cita.DoctorID,
		"fecha":     req.FechaConsulta,
		"hora":      req.HorarioConsulta,
	})

	return converter.CitaToResponse(cita), nil
}

func (u *citaUsecase) GetByID(ctx context.Context, id uint) (*dto.CitaResponse, error) {
	cita, err := u.citaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find cita %d: %+v", id, err)
		return nil, err
	}
	if cita == nil {
		return nil, ErrCitaNotFound
	}

	return converter.CitaToResponse(cita), nil
}

func (u *citaUsecase) Search(ctx context.Context, filter *repository.CitaFilter) (*dto.CitaListResponse, error) {
	citas, err := u.citaRepo.Search(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search citas: %+v", err)
		return nil, err
	}

	return &dto.CitaListResponse{
		Citas: converter.CitasToResponses(citas),
		Total: len(citas),
	}, nil
}

// UpdateEstado applies one estado transition. The conditional UPDATE
// in the repository is the arbiter under concurrency: if zero rows
// were touched, the cita moved (or vanished) since we read it.
func (u *citaUsecase) UpdateEstado(ctx context.Context, id uint, req *dto.UpdateCitaEstadoRequest) (*dto.CitaResponse, error) {
	if !entity.IsValidCitaEstado(req.Estado) {
		return nil, ErrInvalidEstado
	}
	target := entity.CitaEstado(req.Estado)

	cita, err := u.citaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find cita %d: %+v", id, err)
		return nil, err
	}
	if cita == nil {
		return nil, ErrCitaNotFound
	}

	if !cita.Estado.CanTransition(target) {
		if cita.Estado.IsTerminal() {
			return nil, ErrCitaTerminal
		}
		return nil, ErrInvalidTransition
	}

	affected, err := u.citaRepo.UpdateEstado(u.db.WithContext(ctx), id, cita.Estado, target)
	if err != nil {
		u.log.Warnf("Failed to update estado of cita %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	userID, _ := middlewareUserID(ctx)
	u.auditService.Log(ctx, u.db, userID, entity.AccionCitaEstado, entity.JSON{
		"cita_id": id,
		"de":      string(cita.Estado),
		"a":       string(target),
	})

	cita.Estado = target
	if target.IsTerminal() {
		cita.SlotKey = nil
	}
	return converter.CitaToResponse(cita), nil
}

// Reschedule moves a non-terminal cita to a new slot, marks it
// Reagendada and appends a timestamped note describing the change.
func (u *citaUsecase) Reschedule(ctx context.Context, id uint, req *dto.RescheduleCitaRequest) (*dto.CitaResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	cita, err := u.citaRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find cita %d: %+v", id, err)
		return nil, err
	}
	if cita == nil {
		return nil, ErrCitaNotFound
	}
	if cita.Estado.IsTerminal() {
		return nil, ErrCitaTerminal
	}
	if !cita.Estado.CanTransition(entity.CitaReagendada) {
		return nil, ErrInvalidTransition
	}

	prevFecha := cita.FechaCita.Format("2006-01-02")
	prevHora := cita.HoraCita

	if req.FechaConsulta != "" {
		fecha, err := time.Parse("2006-01-02", req.FechaConsulta)
		if err != nil {
			return nil, fmt.Errorf("invalid fecha_consulta: %w", err)
		}
		cita.FechaCita = fecha
	}
	if req.HorarioConsulta != "" {
		cita.HoraCita = req.HorarioConsulta
	}
	if req.DoctorID != 0 {
		cita.DoctorID = req.DoctorID
	}

	nota := fmt.Sprintf("[%s] Reagendada de %s %s a %s %s",
		time.Now().Format("2006-01-02 15:04"),
		prevFecha, prevHora,
		cita.FechaCita.Format("2006-01-02"), cita.HoraCita)
	if req.Observaciones != "" {
		nota += ": " + req.Observaciones
	}
	if cita.Observaciones != "" {
		cita.Observaciones += "\n"
	}
	cita.Observaciones += nota

	cita.Estado = entity.CitaReagendada
	slotKey := entity.BuildSlotKey(cita.DoctorID, cita.FechaCita, cita.HoraCita)
	cita.SlotKey = &slotKey

	if err := u.citaRepo.Update(tx, cita); err != nil {
		if mysqlerr.IsDuplicateKey(err) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to reschedule cita %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit reschedule of cita %d: %+v", id, err)
		return nil, err
	}

	userID, _ := middlewareUserID(ctx)
	u.auditService.Log(ctx, u.db, userID, entity.AccionCitaReagendar, entity.JSON{
		"cita_id":  id,
		"de_fecha": prevFecha,
		"de_hora":  prevHora,
		"a_fecha":  cita.FechaCita.Format("2006-01-02"),
		"a_hora":   cita.HoraCita,
	})

	return converter.CitaToResponse(cita), nil
}

// Cancel is idempotent: cancelling an already terminal cita reports
// not-found semantics only when the cita never existed.
func (u *citaUsecase) Cancel(ctx context.Context, id uint) error {
	cita, err := u.citaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find cita %d: %+v", id, err)
		return err
	}
	if cita == nil {
		return ErrCitaNotFound
	}

	affected, err := u.citaRepo.Cancel(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to cancel cita %d: %+v", id, err)
		return err
	}

	if affected > 0 {
		userID, _ := middlewareUserID(ctx)
		u.auditService.Log(ctx, u.db, userID, entity.AccionCitaCancelar, entity.JSON{"cita_id": id})
	}
	return nil
}

// MarkNoShows runs the no-show sweep on demand, with the same grace
// period the background sweeper uses.
func (u *citaUsecase) MarkNoShows(ctx context.Context) (*dto.SweepResponse, error) {
	marcadas, err := u.sweeper.SweepOnce(ctx)
	if err != nil {
		u.log.Warnf("Failed to sweep no-shows: %+v", err)
		return nil, err
	}

	if marcadas > 0 {
		userID, _ := middlewareUserID(ctx)
		u.auditService.Log(ctx, u.db, userID, entity.AccionCitaNoAsistio, entity.JSON{"marcadas": marcadas})
	}

	return &dto.SweepResponse{Marcadas: marcadas}, nil
}

// middlewareUserID adapts the context getter to the nullable column.
func middlewareUserID(ctx context.Context) (*uint, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, false
	}
	return &userID, true
}
