package lifecycle

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/bulbplot/internal/domain"
)

// mockEmitter tracks state change events for testing.
type mockEmitter struct {
	mu     sync.Mutex
	events []stateChangeEvent
}

type stateChangeEvent struct {
	previous State
	current  State
	reason   string
}

func (m *mockEmitter) OnStateChange(previous, current State, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, stateChangeEvent{previous, current, reason})
}

func (m *mockEmitter) Events() []stateChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]stateChangeEvent{}, m.events...)
}

func TestNewManager(t *testing.T) {
	m := NewManager(nil, nil)

	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.State() != StateIdle {
		t.Errorf("initial state = %v, want StateIdle", m.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "Idle"},
		{StateRunning, "Running"},
		{StateComplete, "Complete"},
		{StateCanceled, "Canceled"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestManager_TransitionTo_ValidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
	}{
		{"idle to running", StateIdle, StateRunning},
		{"idle to canceled", StateIdle, StateCanceled},
		{"running to complete", StateRunning, StateComplete},
		{"running to canceled", StateRunning, StateCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(nil, nil)
			m.state = tt.from

			if err := m.TransitionTo(tt.to, "test"); err != nil {
				t.Fatalf("TransitionTo() error = %v", err)
			}
			if m.State() != tt.to {
				t.Errorf("state = %v after transition, want %v", m.State(), tt.to)
			}
		})
	}
}

func TestManager_TransitionTo_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
	}{
		{"idle to complete", StateIdle, StateComplete},
		{"idle to idle", StateIdle, StateIdle},
		{"running to idle", StateRunning, StateIdle},
		{"running to running", StateRunning, StateRunning},
		{"complete to running", StateComplete, StateRunning},
		{"complete to complete", StateComplete, StateComplete},
		{"complete to canceled", StateComplete, StateCanceled},
		{"canceled to running", StateCanceled, StateRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(nil, nil)
			m.state = tt.from

			err := m.TransitionTo(tt.to, "test")

			if !errors.Is(err, domain.ErrInvalidTransition) {
				t.Errorf("TransitionTo() error = %v, want ErrInvalidTransition", err)
			}
			// State should not change on invalid transition
			if m.State() != tt.from {
				t.Errorf("state changed to %v on invalid transition, want %v", m.State(), tt.from)
			}
		})
	}
}

func TestManager_TransitionTo_EmitsEvents(t *testing.T) {
	emitter := &mockEmitter{}
	m := NewManager(nil, emitter)

	_ = m.TransitionTo(StateRunning, "first turn")
	_ = m.TransitionTo(StateComplete, "done")

	events := emitter.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	if events[0].previous != StateIdle || events[0].current != StateRunning {
		t.Errorf("event 0: got %v->%v, want Idle->Running", events[0].previous, events[0].current)
	}
	if events[1].previous != StateRunning || events[1].current != StateComplete {
		t.Errorf("event 1: got %v->%v, want Running->Complete", events[1].previous, events[1].current)
	}
	if events[1].reason != "done" {
		t.Errorf("event 1 reason = %q, want done", events[1].reason)
	}
}

func TestManager_Done(t *testing.T) {
	m := NewManager(nil, nil)

	select {
	case <-m.Done():
		t.Fatal("Done closed before a terminal state")
	default:
	}

	_ = m.TransitionTo(StateRunning, "test")

	select {
	case <-m.Done():
		t.Fatal("Done closed while running")
	default:
	}

	_ = m.TransitionTo(StateComplete, "test")

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after completion")
	}
}

func TestManager_Concurrency(t *testing.T) {
	m := NewManager(nil, nil)

	var wg sync.WaitGroup

	// Concurrent state reads
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = m.State()
			}
		}()
	}

	// Concurrent transitions; only one of each can succeed
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.TransitionTo(StateRunning, "test") == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
			_ = m.TransitionTo(StateComplete, "test")
		}()
	}

	wg.Wait()

	if succeeded != 1 {
		t.Errorf("%d goroutines entered Running, want 1", succeeded)
	}
	if m.State() != StateComplete {
		t.Errorf("final state = %v, want Complete", m.State())
	}
}
