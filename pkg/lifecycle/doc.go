// Package lifecycle provides the state machine of a sampling pass.
//
// A pass starts Idle, becomes Running on its first scheduling turn and ends in
// Complete once every lattice point has been visited. Canceled is the only
// other terminal state and is reached when the caller cancels at a
// suspension point. Terminal states are final: a finished pass is never
// restarted, a new pass is created instead.
//
// # Usage
//
//	manager := lifecycle.NewManager(logger, eventEmitter)
//
//	if err := manager.TransitionTo(lifecycle.StateRunning, "first turn"); err != nil {
//	    return err
//	}
//
//	// ... advance the sampler turn by turn ...
//
//	_ = manager.TransitionTo(lifecycle.StateComplete, "lattice exhausted")
//	<-manager.Done()
//
// # State Machine
//
// Valid state transitions:
//   - Idle -> Running, Canceled
//   - Running -> Complete, Canceled
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package lifecycle
