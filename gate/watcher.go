package gate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgnsrekt/guardrail/internal/diag"
	"github.com/dgnsrekt/guardrail/poll"
)

// WatcherConfig controls a Watcher's polling schedule.
type WatcherConfig struct {
	// Interval is the pause between readiness checks.
	Interval time.Duration

	// MaxChecks bounds the number of probe calls before giving up.
	MaxChecks int
}

// DefaultWatcherConfig polls every 250ms for up to 40 checks, ten
// seconds of patience in total.
func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		Interval:  250 * time.Millisecond,
		MaxChecks: 40,
	}
}

// Watcher polls a readiness probe on a schedule and fires a completion
// hook exactly once when the probe first reports ready. A Watcher runs
// at most once; a new wait needs a fresh instance.
type Watcher struct {
	loop  *poll.Loop
	ready atomic.Bool
	once  sync.Once
}

// NewWatcher wires a probe and completion hook to a polling loop. A
// nil probe never reports ready; a nil hook is skipped.
func NewWatcher(probe func() bool, onReady func(), cfg WatcherConfig) *Watcher {
	w := &Watcher{}
	w.loop = poll.New(func(a poll.Attempt) {
		watcherChecks.Inc()
		if !probeReady(probe) {
			return
		}

		w.ready.Store(true)
		watcherReady.Inc()
		w.once.Do(func() {
			if onReady != nil {
				onReady()
			}
		})
		a.Break()
	}, poll.Config{
		Interval:    cfg.Interval,
		MaxAttempts: cfg.MaxChecks,
	})
	return w
}

// probeReady runs the probe with panic containment. A faulting probe
// counts as not ready.
func probeReady(probe func() bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			diag.Fault("gate.Watcher", r)
		}
	}()

	if probe == nil {
		return false
	}
	return probe()
}

// Start begins polling. Later calls are no-ops.
func (w *Watcher) Start() {
	w.loop.Start()
}

// Cancel stops polling without marking the watcher ready. Safe before
// Start and from any goroutine.
func (w *Watcher) Cancel() {
	w.loop.Break()
}

// Ready reports whether the probe has succeeded.
func (w *Watcher) Ready() bool {
	return w.ready.Load()
}

// State returns the underlying loop's lifecycle state.
func (w *Watcher) State() poll.State {
	return w.loop.State()
}

// Checks returns how many probe calls remain in the budget.
func (w *Watcher) Checks() int {
	return w.loop.Remaining()
}

// Done returns a channel closed once polling has stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.loop.Done()
}

// Wait blocks until polling stops or the context ends.
func (w *Watcher) Wait(ctx context.Context) error {
	return w.loop.Wait(ctx)
}
