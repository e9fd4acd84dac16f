package poll

// State identifies where a Loop is in its lifecycle.
type State int32

const (
	// Idle means the loop is constructed but not yet started.
	Idle State = iota
	// Running means the attempt sequence is in progress.
	Running
	// Stopped is terminal: the budget was spent or the loop was broken.
	Stopped
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state admits no further attempts.
func (s State) Terminal() bool {
	return s == Stopped
}
