package poll

import "testing"

// TestStateString tests the String() method for State.
func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{Idle, "idle"},
		{Running, "running"},
		{Stopped, "stopped"},
		{State(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.state.String(); result != tt.expected {
				t.Errorf("State.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// TestStateTerminal tests the Terminal() method.
func TestStateTerminal(t *testing.T) {
	tests := []struct {
		state    State
		expected bool
	}{
		{Idle, false},
		{Running, false},
		{Stopped, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if result := tt.state.Terminal(); result != tt.expected {
				t.Errorf("State.Terminal() = %v, want %v", result, tt.expected)
			}
		})
	}
}
