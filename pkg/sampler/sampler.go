package sampler

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bft-labs/bulbplot/pkg/bulb"
	"github.com/bft-labs/bulbplot/pkg/cloud"
	"github.com/bft-labs/bulbplot/pkg/lifecycle"
)

// Visitor observes every lattice point and its classification, in traversal order.
type Visitor func(p r3.Vec, member bool)

// Option configures a Sampler.
type Option func(*Sampler)

// WithVisitor registers a callback invoked for every visited point.
func WithVisitor(v Visitor) Option {
	return func(s *Sampler) {
		s.visit = v
	}
}

// Sampler is the incremental lattice walk. Grid and parameters are fixed for
// its lifetime; a new pass needs a new Sampler.
type Sampler struct {
	grid   Grid
	params bulb.Params
	visit  Visitor

	// Derived once on the first turn.
	started bool
	step    float64
	coords  []float64

	ix, iy, iz int
	samples    int
	turns      int

	buf []cloud.Placement
	out *cloud.Cloud
}

// New validates the configuration and returns an idle Sampler.
func New(grid Grid, params bulb.Params, opts ...Option) (*Sampler, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := &Sampler{grid: grid, params: params}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Advance performs one scheduling turn and reports whether sampling is complete.
//
// A turn ends after the sample counter reaches a positive multiple of
// SamplesPerYield, or after the last lattice point. Calling Advance on a
// complete sampler does nothing and returns true.
func (s *Sampler) Advance() bool {
	if s.out != nil {
		return true
	}
	if !s.started {
		s.begin()
	}
	s.turns++

	res := s.grid.Resolution
	for {
		p := r3.Vec{X: s.coords[s.ix], Y: s.coords[s.iy], Z: s.coords[s.iz]}
		member := bulb.ClassifyVec(p, s.params)
		if member {
			s.buf = append(s.buf, cloud.Placement{Position: p, Scale: s.step})
		}
		if s.visit != nil {
			s.visit(p, member)
		}
		s.samples++

		s.iz++
		if s.iz == res {
			s.iz = 0
			s.iy++
			if s.iy == res {
				s.iy = 0
				s.ix++
			}
		}
		if s.ix == res {
			s.finish()
			return true
		}
		if s.samples%s.grid.SamplesPerYield == 0 {
			return false
		}
	}
}

func (s *Sampler) begin() {
	s.started = true
	s.step = s.grid.Step()
	s.coords = make([]float64, s.grid.Resolution)
	for i := range s.coords {
		s.coords[i] = s.grid.Coord(i)
	}
}

func (s *Sampler) finish() {
	s.out = cloud.Freeze(s.buf)
	s.buf = nil
}

// Ready reports whether the lattice has been fully visited.
func (s *Sampler) Ready() bool {
	return s.out != nil
}

// Cloud returns the frozen output, or nil while sampling is in progress.
func (s *Sampler) Cloud() *cloud.Cloud {
	return s.out
}

// State derives the lifecycle state from the walk position.
func (s *Sampler) State() lifecycle.State {
	switch {
	case s.out != nil:
		return lifecycle.StateComplete
	case s.started:
		return lifecycle.StateRunning
	default:
		return lifecycle.StateIdle
	}
}

// Samples returns the number of lattice points visited so far.
func (s *Sampler) Samples() int {
	return s.samples
}

// Members returns the number of member points found so far.
func (s *Sampler) Members() int {
	if s.out != nil {
		return s.out.Len()
	}
	return len(s.buf)
}

// Turns returns the number of Advance calls that did work.
func (s *Sampler) Turns() int {
	return s.turns
}

// Progress returns the visited fraction of the lattice in [0, 1].
func (s *Sampler) Progress() float64 {
	return float64(s.samples) / float64(s.grid.Points())
}

// Grid returns the lattice configuration.
func (s *Sampler) Grid() Grid {
	return s.grid
}

// Params returns the fractal parameters.
func (s *Sampler) Params() bulb.Params {
	return s.params
}
