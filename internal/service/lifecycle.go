package service

import (
	"context"
	"log/slog"
	"time"
)

// PurgeEvent describes one completed expiry sweep.
type PurgeEvent struct {
	Count       int
	ScenarioIDs []string
	SweptAt     time.Time
}

// Sweeper periodically removes expired scenarios. Sweep errors are logged
// and never propagated: a broken sweep must not take the application down.
type Sweeper struct {
	scenarios ScenarioService
	interval  time.Duration
	logger    *slog.Logger
	notify    func(PurgeEvent)
	now       func() time.Time
}

// NewSweeper builds a sweeper over the scenario store. notify may be nil;
// when set, it is called after every sweep that removed at least one
// scenario.
func NewSweeper(scenarios ScenarioService, interval time.Duration, logger *slog.Logger, notify func(PurgeEvent)) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		scenarios: scenarios,
		interval:  interval,
		logger:    logger,
		notify:    notify,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Sweep runs a single expiry pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.now()
	removed, err := s.scenarios.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.WarnContext(ctx, "scenario expiry sweep failed", "error", err)
		return
	}
	if len(removed) == 0 {
		return
	}
	s.logger.InfoContext(ctx, "purged expired scenarios", "count", len(removed), "ids", removed)
	if s.notify != nil {
		s.notify(PurgeEvent{Count: len(removed), ScenarioIDs: removed, SweptAt: now})
	}
}

// Run sweeps immediately and then on every interval tick until the context
// is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}
