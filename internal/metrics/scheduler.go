package metrics

import (
	"context"
	"time"

	"linux-monitor/internal/domain"
	"linux-monitor/internal/logger"
)

// Scheduler drives one tick per interval. Ticks run on the calling goroutine,
// so a slow tick delays the next one instead of overlapping it.
type Scheduler struct {
	interval time.Duration
	log      logger.Logger
	sample   func(context.Context) domain.Snapshot
	sink     func(context.Context, domain.Snapshot)
}

func NewScheduler(interval time.Duration, log logger.Logger, sample func(context.Context) domain.Snapshot, sink func(context.Context, domain.Snapshot)) *Scheduler {
	return &Scheduler{
		interval: interval,
		log:      log,
		sample:   sample,
		sink:     sink,
	}
}

// Start ticks immediately and then on every interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("collection loop started", "interval", s.interval)
	s.tick(ctx)

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-ctx.Done():
			s.log.Info("collection loop stopping...")
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.sample == nil || s.sink == nil {
		return
	}
	if ctx.Err() != nil {
		return
	}

	snap := s.sample(ctx)
	s.sink(ctx, snap)
}
