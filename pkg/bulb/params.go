package bulb

import (
	"fmt"

	"github.com/bft-labs/bulbplot/internal/domain"
)

// Power is the exponent of the Mandelbulb map.
const Power = 8

// Params holds the fractal parameters used by Classify.
type Params struct {
	// MaxIterations caps the number of map iterations. Zero is allowed and
	// classifies every point as a member when EscapeThreshold >= 0.
	MaxIterations int

	// EscapeThreshold is the divergence radius. A point escapes once its
	// radius is strictly greater than this value.
	EscapeThreshold float64

	// Offset is the additive constant c applied to all three axes each iteration.
	Offset float64
}

// DefaultParams returns the parameters used by the reference plotter.
func DefaultParams() Params {
	return Params{
		MaxIterations:   8,
		EscapeThreshold: 20,
		Offset:          1.2,
	}
}

// Validate checks the parameters. Offset is unconstrained.
func (p Params) Validate() error {
	if p.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations must not be negative", domain.ErrInvalidConfig)
	}
	if !(p.EscapeThreshold > 0) {
		return fmt.Errorf("%w: escape threshold must be positive", domain.ErrInvalidConfig)
	}
	return nil
}
