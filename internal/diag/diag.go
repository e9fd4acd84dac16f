package diag

import (
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

var (
	mu        sync.RWMutex
	logger    *log.Logger
	setupOnce sync.Once

	// Fault reports from a broken predicate in a hot loop arrive far
	// faster than any sink can usefully absorb.
	faultLimit = rate.NewLimiter(rate.Every(250*time.Millisecond), 4)
)

// Logger returns the shared diagnostic logger, initializing it from the
// environment on first use.
func Logger() *log.Logger {
	setupOnce.Do(setup)
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the shared logger, for tests and for embedders that
// route diagnostics elsewhere. A nil logger restores the
// environment-configured default.
func SetLogger(l *log.Logger) {
	setupOnce.Do(setup)
	if l == nil {
		l = newLogger(LoadConfig())
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

func setup() {
	logger = newLogger(LoadConfig())
}

func newLogger(cfg Config) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "guardrail",
	})
	switch {
	case cfg.Quiet:
		l.SetLevel(log.ErrorLevel)
	case cfg.Debug:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.WarnLevel)
	}

	if path := cfg.logPath(); path != "" {
		file, err := openLogFile(path)
		if err != nil {
			l.Warn("Failed to open debug log file", "path", path, "error", err)
			return l
		}
		// The file stays open for the life of the process.
		return log.NewWithOptions(file, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Level:           log.DebugLevel,
			Prefix:          "guardrail",
		})
	}
	return l
}

// Debug logs a debug record through the shared logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger().Debug(msg, keyvals...)
}

// Warn logs a warning through the shared logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger().Warn(msg, keyvals...)
}

// Fault records a recovered fault with its stack trace. Reports are rate
// limited so a fault raised on every pass of a tight loop cannot flood
// the sink.
func Fault(origin string, recovered interface{}) {
	if !faultLimit.Allow() {
		return
	}
	Logger().Error("Recovered fault",
		"origin", origin,
		"panic", recovered,
		"stack", string(debug.Stack()))
}
