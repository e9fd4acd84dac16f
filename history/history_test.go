package history

import (
	"math"
	"testing"
)

// TestNewDefaults tests the initial state of a fresh log.
func TestNewDefaults(t *testing.T) {
	l := New[int]()

	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if l.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", l.Capacity(), DefaultCapacity)
	}
}

// TestAppendPreservesOrder tests insertion order below capacity.
func TestAppendPreservesOrder(t *testing.T) {
	l := New[string]()

	for _, s := range []string{"a", "b", "c"} {
		l.Append(s)
	}

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	want := []string{"a", "b", "c"}
	for i, got := range l.Snapshot() {
		if got != want[i] {
			t.Errorf("Snapshot()[%d] = %q, want %q", i, got, want[i])
		}
	}
}

// TestAppendReturnsLength tests that Append reports the length after
// insertion.
func TestAppendReturnsLength(t *testing.T) {
	l := New[int]()

	if got := l.Append(1); got != 1 {
		t.Errorf("Append(1) = %d, want 1", got)
	}
	if got := l.Append(2, 3); got != 3 {
		t.Errorf("Append(2, 3) = %d, want 3", got)
	}

	l.SetCapacity(3)
	if got := l.Append(4); got != 3 {
		t.Errorf("Append(4) at capacity = %d, want 3", got)
	}
}

// TestAppendEvictsOldest tests one-at-a-time FIFO eviction.
func TestAppendEvictsOldest(t *testing.T) {
	l := New[int]()
	l.SetCapacity(3)

	for i := 1; i <= 5; i++ {
		l.Append(i)
	}

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	want := []int{3, 4, 5}
	for i, got := range l.Snapshot() {
		if got != want[i] {
			t.Errorf("Snapshot()[%d] = %d, want %d", i, got, want[i])
		}
	}
}

// TestAppendBatchInterleavesEviction tests that a single batched call
// evicts per item, matching the one-at-a-time result even when the
// batch exceeds capacity by more than one.
func TestAppendBatchInterleavesEviction(t *testing.T) {
	tests := []struct {
		name     string
		capacity float64
		batch    []int
		expected []int
	}{
		{"batch over capacity", 3, []int{1, 2, 3, 4, 5}, []int{3, 4, 5}},
		{"batch far over capacity", 2, []int{1, 2, 3, 4, 5}, []int{4, 5}},
		{"single slot", 1, []int{1, 2, 3}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			l.SetCapacity(tt.capacity)
			l.Append(tt.batch...)

			got := l.Snapshot()
			if len(got) != len(tt.expected) {
				t.Fatalf("Len() = %d, want %d", len(got), len(tt.expected))
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("Snapshot()[%d] = %d, want %d", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

// TestSetCapacityRejectsInvalid tests that invalid bounds are ignored
// and the prior bound is reported back.
func TestSetCapacityRejectsInvalid(t *testing.T) {
	tests := []struct {
		name      string
		requested float64
	}{
		{"negative", -1},
		{"fractional", 1.5},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"beyond safe range", float64(DefaultCapacity) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			l.Append(1, 2, 3)

			if got := l.SetCapacity(tt.requested); got != DefaultCapacity {
				t.Errorf("SetCapacity(%v) = %d, want prior %d", tt.requested, got, DefaultCapacity)
			}
			if l.Capacity() != DefaultCapacity {
				t.Errorf("Capacity() = %d after rejection, want %d", l.Capacity(), DefaultCapacity)
			}
			if l.Len() != 3 {
				t.Errorf("Len() = %d after rejection, want 3", l.Len())
			}
		})
	}
}

// TestSetCapacityAccepts tests valid bounds.
func TestSetCapacityAccepts(t *testing.T) {
	tests := []struct {
		name      string
		requested float64
		expected  int64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"small", 64, 64},
		{"max", float64(DefaultCapacity), DefaultCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			if got := l.SetCapacity(tt.requested); got != tt.expected {
				t.Errorf("SetCapacity(%v) = %d, want %d", tt.requested, got, tt.expected)
			}
			if l.Capacity() != tt.expected {
				t.Errorf("Capacity() = %d, want %d", l.Capacity(), tt.expected)
			}
		})
	}
}

// TestSetCapacityTrims tests that lowering the bound evicts the oldest
// entries immediately.
func TestSetCapacityTrims(t *testing.T) {
	l := New[int]()
	l.Append(1, 2, 3, 4, 5)

	if got := l.SetCapacity(2); got != 2 {
		t.Fatalf("SetCapacity(2) = %d, want 2", got)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d after lowering capacity, want 2", l.Len())
	}

	want := []int{4, 5}
	for i, got := range l.Snapshot() {
		if got != want[i] {
			t.Errorf("Snapshot()[%d] = %d, want %d", i, got, want[i])
		}
	}
}

// TestZeroCapacity tests the degenerate bound: each append evicts the
// previous entry, so at most one survives.
func TestZeroCapacity(t *testing.T) {
	l := New[string]()
	l.SetCapacity(0)

	l.Append("a")
	if l.Len() != 1 {
		t.Errorf("Len() = %d after first append, want 1", l.Len())
	}

	l.Append("b")
	if l.Len() != 1 {
		t.Errorf("Len() = %d after second append, want 1", l.Len())
	}
	if got := l.Snapshot()[0]; got != "b" {
		t.Errorf("Snapshot()[0] = %q, want %q", got, "b")
	}
}

// TestSnapshotIndependence tests that the snapshot is a copy.
func TestSnapshotIndependence(t *testing.T) {
	l := New[int]()
	l.Append(1, 2, 3)

	snap := l.Snapshot()
	snap[0] = 99

	if got := l.Snapshot()[0]; got != 1 {
		t.Errorf("Snapshot()[0] = %d after mutating a copy, want 1", got)
	}

	if got := New[int]().Snapshot(); len(got) != 0 {
		t.Errorf("Snapshot() of empty log has length %d, want 0", len(got))
	}
}

// TestReset tests that Reset clears entries but keeps the bound.
func TestReset(t *testing.T) {
	l := New[int]()
	l.SetCapacity(3)
	l.Append(1, 2, 3)

	l.Reset()

	if l.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", l.Len())
	}
	if l.Capacity() != 3 {
		t.Errorf("Capacity() = %d after Reset, want 3", l.Capacity())
	}

	if got := l.Append(7); got != 1 {
		t.Errorf("Append after Reset = %d, want 1", got)
	}
}
