package poll

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgnsrekt/guardrail/internal/diag"
)

// Callback runs once per attempt with a handle to the live loop.
type Callback func(Attempt)

// Config controls a Loop's schedule.
type Config struct {
	// Interval is the pause between attempts. Zero means as fast as the
	// scheduler allows; the loop still yields between attempts.
	Interval time.Duration

	// MaxAttempts bounds the number of callback invocations. Zero or
	// negative stops the loop without a single invocation.
	MaxAttempts int
}

// DefaultConfig returns the single-shot schedule.
func DefaultConfig() Config {
	return Config{
		Interval:    0,
		MaxAttempts: 1,
	}
}

// Loop invokes a callback repeatedly on a timer until the attempt
// budget is spent or Break is called. A Loop runs at most once and
// cannot be restarted; a new sequence needs a fresh instance.
type Loop struct {
	cb       Callback
	interval time.Duration
	max      int

	state     atomic.Int32
	remaining atomic.Int64
	broken    atomic.Bool

	breakOnce sync.Once
	breakCh   chan struct{}
	done      chan struct{}
}

// Attempt is the handle passed to the callback on each invocation.
type Attempt struct {
	loop *Loop
}

// Remaining returns the attempts left after this one.
func (a Attempt) Remaining() int { return a.loop.Remaining() }

// Max returns the loop's original attempt ceiling.
func (a Attempt) Max() int { return a.loop.Max() }

// Break stops the loop; no attempt fires after the current one.
func (a Attempt) Break() { a.loop.Break() }

// New creates an idle loop. A nil callback ticks without work.
func New(cb Callback, cfg Config) *Loop {
	if cb == nil {
		cb = func(Attempt) {}
	}
	l := &Loop{
		cb:       cb,
		interval: cfg.Interval,
		max:      cfg.MaxAttempts,
		breakCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	l.remaining.Store(int64(cfg.MaxAttempts))
	return l
}

// Start begins the attempt sequence on its own goroutine. Only the
// first call has any effect; later calls are no-ops.
func (l *Loop) Start() {
	if !l.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return
	}
	go l.run()
}

// Break stops the loop after the attempt underway, if any. Safe from
// any goroutine, from inside the callback, and before Start. Once set
// it is never cleared.
func (l *Loop) Break() {
	l.breakOnce.Do(func() {
		l.broken.Store(true)
		close(l.breakCh)
	})
}

// State returns the loop's lifecycle state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Remaining returns the attempts left in the budget.
func (l *Loop) Remaining() int {
	return int(l.remaining.Load())
}

// Max returns the configured attempt ceiling.
func (l *Loop) Max() int {
	return l.max
}

// Done returns a channel closed once the loop reaches Stopped. The
// channel never closes for a loop that is never started.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the loop stops or the context ends, returning the
// context's error in the latter case.
func (l *Loop) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run drives the attempt sequence. The loop is iterative over a timer
// and the break channel so a zero interval cannot grow the stack.
func (l *Loop) run() {
	defer func() {
		l.state.Store(int32(Stopped))
		close(l.done)
	}()

	if l.remaining.Load() <= 0 {
		return
	}

	for {
		if l.broken.Load() {
			return
		}

		l.remaining.Add(-1)
		l.cb(Attempt{loop: l})

		if l.broken.Load() {
			return
		}
		if l.remaining.Load() <= 0 {
			diag.Warn("Attempt budget exhausted", "attempts", l.max)
			return
		}

		select {
		case <-l.breakCh:
			return
		case <-time.After(l.interval):
		}
	}
}
