package sampler

import (
	"context"
	"time"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

// Scheduler calls sample on every tick and hands the result to sink. Both
// run on the goroutine that called Start.
type Scheduler struct {
	interval time.Duration
	log      logger.Logger
	sample   func(context.Context) domain.Snapshot
	sink     func(domain.Snapshot)
}

func NewScheduler(interval time.Duration, log logger.Logger, sample func(context.Context) domain.Snapshot, sink func(domain.Snapshot)) *Scheduler {
	return &Scheduler{
		interval: interval,
		log:      log,
		sample:   sample,
		sink:     sink,
	}
}

// Start samples once immediately, then once per interval until ctx is
// done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("scheduler started", "interval", s.interval.String())

	s.tick(ctx)

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.sample == nil || s.sink == nil {
		return
	}

	snap := s.sample(ctx)
	if ctx.Err() != nil {
		return
	}
	s.sink(snap)
}
