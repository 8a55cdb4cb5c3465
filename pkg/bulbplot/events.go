package bulbplot

import (
	"time"

	"github.com/bft-labs/bulbplot/pkg/lifecycle"
)

// State is the lifecycle state of a sampling pass.
type State = lifecycle.State

// Lifecycle states.
const (
	StateIdle     = lifecycle.StateIdle
	StateRunning  = lifecycle.StateRunning
	StateComplete = lifecycle.StateComplete
	StateCanceled = lifecycle.StateCanceled
)

// EventHandler receives notifications about a sampling pass.
// Methods are called synchronously from the goroutine driving Step, so
// implementations should return quickly.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnTurn(event TurnEvent)
	OnComplete(event CompleteEvent)
}

// BaseEventHandler provides no-op implementations for embedding.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent) {}
func (BaseEventHandler) OnTurn(TurnEvent)               {}
func (BaseEventHandler) OnComplete(CompleteEvent)       {}

// StateChangeEvent describes a lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// TurnEvent is emitted after every scheduling turn.
type TurnEvent struct {
	// Turn is the 1-based turn number.
	Turn int

	// Samples is the number of lattice points visited so far.
	Samples int

	// Members is the number of member points found so far.
	Members int

	// Total is the lattice size.
	Total int
}

// CompleteEvent is emitted once, when the point cloud is published.
type CompleteEvent struct {
	RunID    string
	Samples  int
	Members  int
	Turns    int
	Duration time.Duration
}

// eventEmitterWrapper adapts EventHandler to lifecycle.EventEmitter and
// tolerates a nil handler.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current lifecycle.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{Previous: previous, Current: current, Reason: reason})
}

func (e *eventEmitterWrapper) onTurn(ev TurnEvent) {
	if e.handler != nil {
		e.handler.OnTurn(ev)
	}
}

func (e *eventEmitterWrapper) onComplete(ev CompleteEvent) {
	if e.handler != nil {
		e.handler.OnComplete(ev)
	}
}
