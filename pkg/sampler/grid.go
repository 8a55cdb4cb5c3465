package sampler

import (
	"fmt"
	"math"

	"github.com/bft-labs/bulbplot/internal/domain"
)

// Grid describes the sampling lattice and the scheduler turn size.
type Grid struct {
	// BoundingSize is the edge length of the cube centered on the origin.
	BoundingSize float64

	// Resolution is the number of lattice points per axis.
	Resolution int

	// SamplesPerYield is the number of samples taken per scheduling turn.
	SamplesPerYield int
}

// DefaultGrid returns the lattice used by the reference plotter.
func DefaultGrid() Grid {
	return Grid{
		BoundingSize:    4,
		Resolution:      10,
		SamplesPerYield: 30,
	}
}

// Validate checks the grid before sampling starts. Besides the positivity
// constraints it rejects resolutions whose cube does not fit in an int.
func (g Grid) Validate() error {
	if !(g.BoundingSize > 0) || math.IsInf(g.BoundingSize, 0) {
		return fmt.Errorf("%w: bounding size must be positive and finite", domain.ErrInvalidConfig)
	}
	if g.Resolution <= 0 {
		return fmt.Errorf("%w: resolution must be positive", domain.ErrInvalidConfig)
	}
	if g.SamplesPerYield <= 0 {
		return fmt.Errorf("%w: samples per yield must be positive", domain.ErrInvalidConfig)
	}
	if g.Resolution > math.MaxInt/g.Resolution/g.Resolution {
		return fmt.Errorf("%w: resolution %d overflows the sample count", domain.ErrInvalidConfig, g.Resolution)
	}
	return nil
}

// Step returns the lattice spacing, which is also the instance scale.
func (g Grid) Step() float64 {
	return g.BoundingSize / float64(g.Resolution)
}

// Start returns the first coordinate on every axis.
func (g Grid) Start() float64 {
	return (g.Step() - g.BoundingSize) / 2
}

// Coord returns the i-th coordinate on an axis.
func (g Grid) Coord(i int) float64 {
	return g.Start() + float64(i)*g.Step()
}

// Points returns the total number of lattice points.
func (g Grid) Points() int {
	return g.Resolution * g.Resolution * g.Resolution
}

// Turns returns the number of Advance calls needed to finish the lattice.
func (g Grid) Turns() int {
	return (g.Points() + g.SamplesPerYield - 1) / g.SamplesPerYield
}
