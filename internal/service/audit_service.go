package service

import (
	"context"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes logs_sistema entries. Failures are logged and
// swallowed so an audit write can never fail a business operation.
type AuditService interface {
	Log(ctx context.Context, db *gorm.DB, usuarioID *uint, accion string, metadata entity.JSON)
	LogChange(ctx context.Context, db *gorm.DB, usuarioID *uint, accion, entidad, entidadID string, oldValue, newValue interface{})
}

type auditService struct {
	log     *logrus.Logger
	logRepo repository.LogSistemaRepository
}

func NewAuditService(log *logrus.Logger, logRepo repository.LogSistemaRepository) AuditService {
	return &auditService{
		log:     log,
		logRepo: logRepo,
	}
}

func (s *auditService) Log(ctx context.Context, db *gorm.DB, usuarioID *uint, accion string, metadata entity.JSON) {
	entry := &entity.LogSistema{
		UsuarioID: usuarioID,
		Accion:    accion,
		Metadata:  metadata,
	}

	if err := s.logRepo.Create(db.WithContext(ctx), entry); err != nil {
		s.log.Warnf("Failed to write system log (%s): %+v", accion, err)
	}
}

// LogChange records an entity mutation with its before/after values.
func (s *auditService) LogChange(ctx context.Context, db *gorm.DB, usuarioID *uint, accion, entidad, entidadID string, oldValue, newValue interface{}) {
	metadata := entity.JSON{
		"entidad":    entidad,
		"entidad_id": entidadID,
		"old_value":  oldValue,
		"new_value":  newValue,
	}

	s.Log(ctx, db, usuarioID, accion, metadata)
}
