package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs background jobs on cron schedules.
type Scheduler struct {
	cron *cron.Cron
	jobs []job
}

type job struct {
	name string
	fn   func(ctx context.Context) error
}

// NewScheduler creates a new cron scheduler in the given location.
func NewScheduler(loc *time.Location) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
	}
}

// AddJob registers fn under a standard five-field cron spec.
func (s *Scheduler) AddJob(name string, spec string, fn func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		executeJob(name, fn)
	})
	if err != nil {
		return err
	}

	s.jobs = append(s.jobs, job{name: name, fn: fn})
	slog.Info("Cron job registered", "name", name, "spec", spec)
	return nil
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	<-s.cron.Stop().Done()
	slog.Info("Cron scheduler stopped")
}

// RunOnce runs all jobs once (useful for testing and warm-up)
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, j := range s.jobs {
		if err := j.fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err)
		}
	}
}

func executeJob(name string, fn func(ctx context.Context) error) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", name)

	if err := fn(context.Background()); err != nil {
		slog.Error("Cron job failed", "name", name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", name, "duration", time.Since(start))
	}
}
