package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/menubohq/menubo/internal/storage"
)

// Sweeper deletes staged uploads that were never promoted. Pending bindings
// carry no expiry of their own; the sweeper bounds how long an unconsumed
// upload can accumulate in the bucket. A TTL of zero disables sweeping.
type Sweeper struct {
	logger *slog.Logger
	store  storage.Provider
	ttl    time.Duration
	cron   *cron.Cron

	// now is swapped in tests.
	now func() time.Time
}

// NewSweeper creates a Sweeper.
func NewSweeper(log *slog.Logger, store storage.Provider, ttl time.Duration) *Sweeper {
	if log == nil {
		log = slog.Default()
	}
	return &Sweeper{
		logger: log.With(slog.String("component", "sweeper")),
		store:  store,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Start schedules Sweep on the given cron spec. No-op when the TTL is zero.
func (s *Sweeper) Start(schedule string) error {
	if s.ttl <= 0 {
		s.logger.Info("upload sweeping disabled")
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := s.Sweep(context.Background()); err != nil {
			s.logger.Error("sweep failed", slog.Any("error", err))
		}
	}); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info("upload sweeping scheduled",
		slog.String("schedule", schedule),
		slog.Duration("ttl", s.ttl),
	)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Sweep deletes staged uploads older than the TTL. Objects outside the
// uploads prefix are never touched.
func (s *Sweeper) Sweep(ctx context.Context) error {
	if s.ttl <= 0 {
		return nil
	}
	items, err := s.store.List(ctx, pendingPrefix)
	if err != nil {
		return err
	}
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for _, item := range items {
		if !item.Created.Before(cutoff) {
			continue
		}
		if err := s.store.Delete(ctx, item.Path); err != nil {
			s.logger.Error("delete stale upload failed",
				slog.String("path", item.Path),
				slog.Any("error", err),
			)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("stale uploads removed", slog.Int("count", removed))
	}
	return nil
}
