package cloud

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Placement is the per-instance output record for one member point.
type Placement struct {
	// Position is the lattice point that passed the membership test.
	Position r3.Vec

	// Scale is the uniform instance scale, equal to the lattice step.
	Scale float64
}

// Transform returns the 4x4 instance matrix Translate(Position) * Scale(Scale).
// The matrix is row-major with the translation in the last column.
func (p Placement) Transform() *mat.Dense {
	s := p.Scale
	return mat.NewDense(4, 4, []float64{
		s, 0, 0, p.Position.X,
		0, s, 0, p.Position.Y,
		0, 0, s, p.Position.Z,
		0, 0, 0, 1,
	})
}
