package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	ticks chan time.Time
}

func (f *fakeClock) Now() time.Time                      { return time.Unix(0, 0) }
func (f *fakeClock) Tick(time.Duration) <-chan time.Time { return f.ticks }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestScheduler_RunAtStartAndTicks(t *testing.T) {
	clock := &fakeClock{ticks: make(chan time.Time)}
	sched := New(clock)

	var runs int64
	sched.Register(Task{
		Name:       "sweep",
		Interval:   time.Hour,
		RunAtStart: true,
		Fn:         func(context.Context) { atomic.AddInt64(&runs, 1) },
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.Start(ctx)

	// One immediate run before any tick.
	waitFor(t, func() bool { return atomic.LoadInt64(&runs) == 1 })

	clock.ticks <- time.Unix(1, 0)
	waitFor(t, func() bool { return atomic.LoadInt64(&runs) == 2 })

	clock.ticks <- time.Unix(2, 0)
	waitFor(t, func() bool { return atomic.LoadInt64(&runs) == 3 })
}

func TestScheduler_StopsOnCancel(t *testing.T) {
	clock := &fakeClock{ticks: make(chan time.Time)}
	sched := New(clock)

	var runs int64
	sched.Register(Task{
		Name:     "sweep",
		Interval: time.Hour,
		Fn:       func(context.Context) { atomic.AddInt64(&runs, 1) },
	})

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	cancel()

	// Give the goroutine a moment to observe cancellation, then verify no
	// further tick is consumed.
	time.Sleep(20 * time.Millisecond)
	select {
	case clock.ticks <- time.Unix(1, 0):
		// A stopped task may still drain one pending tick; the run count must
		// stay at zero regardless.
	default:
	}
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&runs))
}
