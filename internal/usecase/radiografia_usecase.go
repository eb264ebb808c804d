package usecase

import (
	"context"
	"errors"
	"io"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/infrastructure/storage"
	"dental-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRadiografiaNotFound = errors.New("Radiografía no encontrada")

type RadiografiaUsecase interface {
	Create(ctx context.Context, doctorID *uint, req *dto.CreateRadiografiaRequest) (*dto.RadiografiaResponse, error)
	ListByPaciente(ctx context.Context, pacienteID uint) ([]dto.RadiografiaResponse, error)
	AttachFile(ctx context.Context, id uint, filename string, src io.Reader, size int64) (*dto.RadiografiaResponse, error)
	Complete(ctx context.Context, id uint) (*dto.RadiografiaResponse, error)
	Deactivate(ctx context.Context, id uint) error
}

type radiografiaUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	radiografiaRepo repository.RadiografiaRepository
	pacienteRepo    repository.PacienteRepository
	store           *storage.LocalStore
	auditService    service.AuditService
}

func NewRadiografiaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	radiografiaRepo repository.RadiografiaRepository,
	pacienteRepo repository.PacienteRepository,
	store *storage.LocalStore,
	auditService service.AuditService,
) RadiografiaUsecase {
	return &radiografiaUsecase{
		db:              db,
		log:             log,
		radiografiaRepo: radiografiaRepo,
		pacienteRepo:    pacienteRepo,
		store:           store,
		auditService:    auditService,
	}
}

// Create registers a study request in estado pendiente. The actual
// image arrives later through AttachFile.
func (u *radiografiaUsecase) Create(ctx context.Context, doctorID *uint, req *dto.CreateRadiografiaRequest) (*dto.RadiografiaResponse, error) {
	paciente, err := u.pacienteRepo.FindByID(u.db.WithContext(ctx), req.PacienteID)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", req.PacienteID, err)
		return nil, err
	}
	if paciente == nil {
		return nil, ErrPacienteNotFound
	}

	radiografia := &entity.Radiografia{
		PacienteID:  req.PacienteID,
		DoctorID:    doctorID,
		TipoEstudio: req.TipoEstudio,
		Descripcion: req.Descripcion,
		Estado:      entity.RadiografiaPendiente,
	}

	if err := u.radiografiaRepo.Create(u.db.WithContext(ctx), radiografia); err != nil {
		u.log.Warnf("Failed to create radiografia: %+v", err)
		return nil, err
	}

	return converter.RadiografiaToResponse(radiografia), nil
}

func (u *radiografiaUsecase) ListByPaciente(ctx context.Context, pacienteID uint) ([]dto.RadiografiaResponse, error) {
	radiografias, err := u.radiografiaRepo.FindByPaciente(u.db.WithContext(ctx), pacienteID)
	if err != nil {
		u.log.Warnf("Failed to list radiografias for paciente %d: %+v", pacienteID, err)
		return nil, err
	}

	return converter.RadiografiasToResponses(radiografias), nil
}

// AttachFile stores the uploaded image and flips the study to
// completada. If the database update fails the stored file is removed
// so the upload directory never accumulates orphans.
func (u *radiografiaUsecase) AttachFile(ctx context.Context, id uint, filename string, src io.Reader, size int64) (*dto.RadiografiaResponse, error) {
	radiografia, err := u.radiografiaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find radiografia %d: %+v", id, err)
		return nil, err
	}
	if radiografia == nil {
		return nil, ErrRadiografiaNotFound
	}

	relPath, err := u.store.Save("radiografias", filename, src, size)
	if err != nil {
		return nil, err
	}

	url := "/uploads/" + relPath
	radiografia.ArchivoURL = &url
	radiografia.Estado = entity.RadiografiaCompletada

	if err := u.radiografiaRepo.Update(u.db.WithContext(ctx), radiografia); err != nil {
		u.log.Warnf("Failed to update radiografia %d: %+v", id, err)
		if rmErr := u.store.Remove(relPath); rmErr != nil {
			u.log.Warnf("Failed to remove orphaned upload %s: %+v", relPath, rmErr)
		}
		return nil, err
	}

	userID, _ := middlewareUserID(ctx)
	u.auditService.Log(ctx, u.db, userID, entity.AccionRadiografiaSubir, entity.JSON{
		"radiografia_id": id,
		"archivo":        relPath,
	})

	return converter.RadiografiaToResponse(radiografia), nil
}

// Complete marks a study as done without an attached file, for studies
// performed and archived outside the system.
func (u *radiografiaUsecase) Complete(ctx context.Context, id uint) (*dto.RadiografiaResponse, error) {
	radiografia, err := u.radiografiaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find radiografia %d: %+v", id, err)
		return nil, err
	}
	if radiografia == nil {
		return nil, ErrRadiografiaNotFound
	}

	radiografia.Estado = entity.RadiografiaCompletada
	if err := u.radiografiaRepo.Update(u.db.WithContext(ctx), radiografia); err != nil {
		u.log.Warnf("Failed to complete radiografia %d: %+v", id, err)
		return nil, err
	}

	return converter.RadiografiaToResponse(radiografia), nil
}

func (u *radiografiaUsecase) Deactivate(ctx context.Context, id uint) error {
	affected, err := u.radiografiaRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate radiografia %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrRadiografiaNotFound
	}
	return nil
}
