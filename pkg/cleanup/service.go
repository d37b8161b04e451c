// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// Defaults applied when Config fields are zero.
const (
	defaultInterval         = time.Hour
	defaultAttemptRetention = 30 * 24 * time.Hour
	defaultAlertRetention   = 7 * 24 * time.Hour
)

// Config holds the retention windows.
type Config struct {
	// Interval between cleanup rounds.
	Interval time.Duration
	// AttemptRetention is how long attempt log rows are kept.
	AttemptRetention time.Duration
	// AlertRetention is how long acked alerts are kept.
	AlertRetention time.Duration
}

// AttemptPruner removes attempt rows older than the cutoff.
type AttemptPruner interface {
	PruneAttempts(ctx context.Context, olderThan time.Time) (int, error)
}

// AlertPruner drops stale acked alerts.
type AlertPruner interface {
	Prune(retention time.Duration) int
}

// OverridePruner removes expired policy override rows.
type OverridePruner interface {
	PruneExpired(ctx context.Context, now time.Time) (int, error)
}

// Service periodically enforces retention policies:
//   - Deletes attempt log rows past their retention window
//   - Drops acked alerts past theirs
//   - Removes expired policy override rows
//
// All operations are idempotent.
type Service struct {
	cfg       Config
	attempts  AttemptPruner
	alerts    AlertPruner
	overrides OverridePruner
	logger    *slog.Logger
	now       func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. Any pruner may be nil.
func NewService(cfg Config, attempts AttemptPruner, alerts AlertPruner, overrides OverridePruner, logger *slog.Logger, now func() time.Time) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.AttemptRetention <= 0 {
		cfg.AttemptRetention = defaultAttemptRetention
	}
	if cfg.AlertRetention <= 0 {
		cfg.AlertRetention = defaultAlertRetention
	}
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		cfg:       cfg,
		attempts:  attempts,
		alerts:    alerts,
		overrides: overrides,
		logger:    logger.With("component", "cleanup"),
		now:       now,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"attempt_retention", s.cfg.AttemptRetention,
		"alert_retention", s.cfg.AlertRetention,
		"interval", s.cfg.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one cleanup round.
func (s *Service) RunAll(ctx context.Context) {
	now := s.now()

	if s.attempts != nil {
		count, err := s.attempts.PruneAttempts(ctx, now.Add(-s.cfg.AttemptRetention))
		if err != nil {
			s.logger.Error("Retention: attempt prune failed", "error", err)
		} else if count > 0 {
			s.logger.Info("Retention: pruned attempt rows", "count", count)
		}
	}

	if s.alerts != nil {
		if count := s.alerts.Prune(s.cfg.AlertRetention); count > 0 {
			s.logger.Info("Retention: dropped acked alerts", "count", count)
		}
	}

	if s.overrides != nil {
		count, err := s.overrides.PruneExpired(ctx, now)
		if err != nil {
			s.logger.Error("Retention: override prune failed", "error", err)
		} else if count > 0 {
			s.logger.Info("Retention: removed expired policy overrides", "count", count)
		}
	}
}
