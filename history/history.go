package history

import (
	"math"

	"github.com/dgnsrekt/guardrail/internal/diag"
)

// DefaultCapacity is the bound a new Log starts with: the largest
// integer magnitude a platform number represents exactly. In practice
// a fresh log is unbounded until a caller lowers the bound.
const DefaultCapacity = int64(1)<<53 - 1

// Log is an insertion-ordered record of values with a mutable capacity
// bound. Appending at or beyond the bound evicts the oldest entry
// first, one eviction per appended item, so the log holds the newest
// values the bound allows.
//
// A Log carries no internal locking. Access is single-writer per
// instance; callers sharing one across goroutines serialize externally.
type Log[T any] struct {
	entries []T
	max     int64
}

// New creates an empty log with DefaultCapacity.
func New[T any]() *Log[T] {
	return &Log[T]{max: DefaultCapacity}
}

// Capacity returns the current bound without side effects.
func (l *Log[T]) Capacity() int64 {
	return l.max
}

// SetCapacity replaces the bound and returns the effective one. Only a
// non-negative safe integer is accepted; anything else (NaN, an
// infinity, a fractional or negative number, or a value beyond
// DefaultCapacity) is rejected with a warning, leaving the prior bound
// and the contents untouched. Lowering the bound below the current
// length evicts the oldest entries immediately.
//
// A bound of zero is accepted; the per-append eviction rule then keeps
// at most one entry in the log.
func (l *Log[T]) SetCapacity(n float64) int64 {
	if !safeCapacity(n) {
		diag.Warn("History capacity unchanged",
			"requested", n,
			"capacity", l.max)
		return l.max
	}

	l.max = int64(n)
	for int64(len(l.entries)) > l.max {
		l.entries = l.entries[1:]
	}
	return l.max
}

// safeCapacity reports whether n is a non-negative integer the bound
// can hold exactly.
func safeCapacity(n float64) bool {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	if n < 0 || n > float64(DefaultCapacity) {
		return false
	}
	return math.Mod(n, 1) == 0
}

// Append adds items in order and returns the new length. For each item,
// if the log is at or above capacity at that moment, the single oldest
// entry is evicted first. Eviction interleaves per item rather than
// batching: appending five items to a three-slot log keeps the last
// three.
func (l *Log[T]) Append(items ...T) int {
	for _, item := range items {
		if int64(len(l.entries)) >= l.max && len(l.entries) > 0 {
			l.entries = l.entries[1:]
		}
		l.entries = append(l.entries, item)
	}
	return len(l.entries)
}

// Len returns the number of entries.
func (l *Log[T]) Len() int {
	return len(l.entries)
}

// Snapshot returns an independent copy of the entries in insertion
// order. Mutating the copy never affects the log.
func (l *Log[T]) Snapshot() []T {
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

// Reset drops all entries, keeping the capacity bound.
func (l *Log[T]) Reset() {
	l.entries = nil
}
