package adquota

import (
	"context"
	"time"

	"storyreel/internal/logger"
	"storyreel/internal/metrics"
)

// Sweeper runs the daily quota purge at a fixed local hour.
type Sweeper struct {
	repo Repository
	hour int
}

func NewSweeper(repo Repository, hour int) *Sweeper {
	return &Sweeper{repo: repo, hour: hour}
}

func (s *Sweeper) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Sweeper) Start(ctx context.Context) {
	logger.Infof("Ad-quota sweeper started, daily at %02d:00", s.hour)

	for {
		wait := time.Until(s.nextRun(time.Now()))

		select {
		case <-ctx.Done():
			logger.Info("Ad-quota sweeper stopped")
			return
		case <-time.After(wait):
			s.runOnce(ctx)
		}
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	deleted, err := s.repo.Sweep(ctx)
	if err != nil {
		logger.Errorf("Ad-quota sweep failed: %v", err)
		return
	}

	metrics.RecordSweep(deleted)
	logger.Infof("Ad-quota sweep removed %d records", deleted)
}
