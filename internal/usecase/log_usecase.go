package usecase

import (
	"context"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LogUsecase interface {
	ListRecent(ctx context.Context, page, limit int) (*dto.LogListResponse, error)
}

type logUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	logRepo repository.LogSistemaRepository
}

func NewLogUsecase(db *gorm.DB, log *logrus.Logger, logRepo repository.LogSistemaRepository) LogUsecase {
	return &logUsecase{
		db:      db,
		log:     log,
		logRepo: logRepo,
	}
}

func (u *logUsecase) ListRecent(ctx context.Context, page, limit int) (*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	logs, total, err := u.logRepo.FindRecent(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to list logs: %+v", err)
		return nil, err
	}

	return &dto.LogListResponse{
		Logs:  converter.LogsToResponses(logs),
		Total: total,
	}, nil
}
