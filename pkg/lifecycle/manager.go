package lifecycle

import (
	"fmt"
	"sync"

	"github.com/bft-labs/bulbplot/internal/domain"
	"github.com/bft-labs/bulbplot/pkg/log"
)

// Manager guards the state machine of one sampling pass.
// State may be read from any goroutine; transitions are serialized.
type Manager struct {
	mu           sync.RWMutex
	state        State
	done         chan struct{}
	logger       log.Logger
	eventEmitter EventEmitter
}

// NewManager creates a manager in StateIdle.
// A nil logger is replaced with a no-op logger; emitter may be nil.
func NewManager(logger log.Logger, emitter EventEmitter) *Manager {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Manager{
		state:        StateIdle,
		done:         make(chan struct{}),
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Done returns a channel that is closed once a terminal state is reached.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// TransitionTo attempts to transition to a new state.
// Returns an error wrapping domain.ErrInvalidTransition if the transition is not valid.
func (m *Manager) TransitionTo(newState State, reason string) error {
	m.mu.Lock()
	oldState := m.state

	if !validTransition(oldState, newState) {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, oldState, newState)
	}

	m.state = newState
	if newState.Terminal() {
		close(m.done)
	}
	m.mu.Unlock()

	// Emit event outside of lock
	if m.eventEmitter != nil {
		m.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	m.logger.Info("state transition",
		log.String("from", oldState.String()),
		log.String("to", newState.String()),
		log.String("reason", reason),
	)

	return nil
}

func validTransition(from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateRunning || to == StateCanceled
	case StateRunning:
		return to == StateComplete || to == StateCanceled
	default:
		return false
	}
}
