package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

// Reseeder replaces the store contents; ProjectService satisfies it.
type Reseeder interface {
	Reseed(ctx context.Context, samples []domain.CreateInput) error
}

// Scheduler periodically resets the store to the sample projects, for demo
// deployments that should not drift.
type Scheduler struct {
	cron    *cron.Cron
	target  Reseeder
	samples []domain.CreateInput
	log     *slog.Logger
}

// NewScheduler parses spec (six fields, seconds first) and registers the job.
func NewScheduler(spec string, target Reseeder, samples []domain.CreateInput) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		target:  target,
		samples: samples,
		log:     slog.Default().With("component", "seed-scheduler"),
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid SEED_SCHEDULE %q: %w", spec, err)
	}
	return s, nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for a
// running job to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("reseed scheduler started", "entries", len(s.cron.Entries()))
	s.cron.Start()

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.log.Info("reseed scheduler stopped")
}

func (s *Scheduler) run() {
	if err := s.target.Reseed(context.Background(), s.samples); err != nil {
		s.log.Error("scheduled reseed failed", "error", err)
		return
	}
	s.log.Info("scheduled reseed completed", "projects", len(s.samples))
}
