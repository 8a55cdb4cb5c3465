package domain

import "errors"

// Domain errors represent error conditions in the bulbplot domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("bulbplot: invalid configuration")

	// ErrNotReady is returned when the point cloud is read before sampling completes.
	ErrNotReady = errors.New("bulbplot: point cloud not ready")

	// ErrCanceled is returned when a sampling pass is canceled at a suspension point.
	ErrCanceled = errors.New("bulbplot: sampling canceled")

	// ErrInvalidTransition is returned when a lifecycle transition is not allowed.
	ErrInvalidTransition = errors.New("bulbplot: invalid state transition")
)
