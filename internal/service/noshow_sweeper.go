package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"dental-clinic-api/config"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NoShowSweeper periodically flips Programada/Confirmada citas whose
// start time is older than the grace period to No_Asistio. The same
// grace period backs the manual endpoint, so both paths agree on what
// counts as a no-show.
//
// The sweep is an idempotent conditional UPDATE; overlapping runs are
// harmless. Call Stop() during graceful shutdown.
type NoShowSweeper struct {
	db       *gorm.DB
	log      *logrus.Logger
	citaRepo repository.CitaRepository
	cfg      config.NoShowConfig

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewNoShowSweeper(db *gorm.DB, log *logrus.Logger, citaRepo repository.CitaRepository, cfg config.NoShowConfig) *NoShowSweeper {
	return &NoShowSweeper{
		db:       db,
		log:      log,
		citaRepo: citaRepo,
		cfg:      cfg,
		stopChan: make(chan struct{}),
	}
}

// Start launches the background sweep loop.
func (s *NoShowSweeper) Start() {
	s.wg.Add(1)
	go s.loop()
	s.log.Infof("No-show sweeper started: interval=%s grace=%s", s.cfg.SweepInterval, s.cfg.GracePeriod)
}

// Stop gracefully shuts down the sweeper. Safe to call multiple times.
func (s *NoShowSweeper) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("No-show sweeper stopped")
	}
}

func (s *NoShowSweeper) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if _, err := s.SweepOnce(ctx); err != nil {
				s.log.Warnf("No-show sweep failed: %+v", err)
			}
			cancel()
		case <-s.stopChan:
			return
		}
	}
}

// SweepOnce runs a single sweep and returns the number of citas
// marked No_Asistio. Also serves the manual endpoint.
func (s *NoShowSweeper) SweepOnce(ctx context.Context) (int64, error) {
	cutoff := s.Cutoff(time.Now())

	affected, err := s.citaRepo.SweepNoShows(s.db.WithContext(ctx), cutoff)
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		s.log.Infof("No-show sweep marked %d citas (cutoff %s)", affected, cutoff.Format(time.RFC3339))
	}
	return affected, nil
}

// Cutoff returns the moment before which an unconfirmed appointment is
// considered missed.
func (s *NoShowSweeper) Cutoff(now time.Time) time.Time {
	return now.Add(-s.cfg.GracePeriod)
}
