// Package scheduler runs recurring tasks on an interval with an injectable
// clock, so periodic jobs can be tested without real timers.
package scheduler

import (
	"context"
	"time"

	"github.com/kdarko/sikaflow/internal/pkg/logger"
)

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
	Tick(d time.Duration) <-chan time.Time
}

// RealClock is the production clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// Tick returns a channel delivering ticks every d.
func (RealClock) Tick(d time.Duration) <-chan time.Time {
	return time.NewTicker(d).C
}

// Task is a named recurring job.
type Task struct {
	Name     string
	Interval time.Duration
	// RunAtStart triggers one immediate run before the first tick.
	RunAtStart bool
	Fn         func(ctx context.Context)
}

// Scheduler runs tasks until its context is cancelled.
type Scheduler struct {
	clock Clock
	tasks []Task
}

// New creates a scheduler with the given clock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{clock: clock}
}

// Register adds a task. Must be called before Start.
func (s *Scheduler) Register(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start launches one goroutine per task and returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	for _, task := range s.tasks {
		go s.runTask(ctx, task)
	}
}

func (s *Scheduler) runTask(ctx context.Context, task Task) {
	logger.Info("Scheduled task started",
		logger.String("task", task.Name),
		logger.Duration("interval", task.Interval))

	if task.RunAtStart {
		task.Fn(ctx)
	}

	ticks := s.clock.Tick(task.Interval)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Scheduled task stopped", logger.String("task", task.Name))
			return
		case <-ticks:
			task.Fn(ctx)
		}
	}
}
