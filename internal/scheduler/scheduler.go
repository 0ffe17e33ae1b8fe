// Package scheduler triggers periodic extraction runs so the link
// history stays current without manual job submission.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newsletter_pipeline/internal/domain"
	"newsletter_pipeline/internal/pipeline"
)

// Extractor runs one extraction pass.
type Extractor interface {
	Run(ctx context.Context, params domain.FetchParams, report pipeline.ProgressFunc) (*domain.Extraction, *domain.RunStats, error)
}

type Scheduler struct {
	extractor Extractor
	params    domain.FetchParams
	interval  time.Duration
	logger    *slog.Logger
}

func NewScheduler(extractor Extractor, params domain.FetchParams, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		extractor: extractor,
		params:    params,
		interval:  interval,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start runs one extraction immediately, then one per interval until the
// context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"days_back", s.params.DaysBack,
	)

	s.runExtraction(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runExtraction(ctx)
		}
	}
}

func (s *Scheduler) runExtraction(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 15*time.Minute)
	defer cancel()

	if _, _, err := s.extractor.Run(runCtx, s.params, nil); err != nil {
		s.logger.Error("scheduled extraction failed", "error", err)
	}
}
