// Package jobs runs periodic maintenance tasks on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Sweeper purges expired entries and reports how many were removed
type Sweeper interface {
	Sweep() int
}

// Job is a named task registered on a schedule
type Job struct {
	Name     string
	Schedule string
	Run      func()
}

// Scheduler wraps a cron runner with structured logging
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler creates a scheduler with the given jobs registered. Schedules
// use the standard five-field cron syntax or descriptors such as "@every 10m".
func NewScheduler(logger *slog.Logger, jobs ...Job) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{logger})))

	for _, j := range jobs {
		if _, err := c.AddFunc(j.Schedule, j.Run); err != nil {
			return nil, fmt.Errorf("failed to register job %s: %w", j.Name, err)
		}
		logger.Info("job registered", "job", j.Name, "schedule", j.Schedule)
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stopped before running jobs finished")
	}
}

// SweepJob returns a job that sweeps expired entries from sweeper
func SweepJob(logger *slog.Logger, name, schedule string, sweeper Sweeper) Job {
	return Job{
		Name:     name,
		Schedule: schedule,
		Run: func() {
			if removed := sweeper.Sweep(); removed > 0 {
				logger.Info("expired entries swept", "job", name, "removed", removed)
			}
		},
	}
}

// cronLogger adapts slog to the cron.Logger interface
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
