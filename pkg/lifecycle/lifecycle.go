package lifecycle

// State represents the lifecycle state of a sampling pass.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateComplete
	StateCanceled
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateComplete:
		return "Complete"
	case StateCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions are possible from s.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateCanceled
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}
