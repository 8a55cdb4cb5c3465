package cloud

import "gonum.org/v1/gonum/spatial/r3"

// Cloud is the frozen, ordered output of a completed sampling pass.
// The zero value is an empty cloud.
type Cloud struct {
	placements []Placement
}

// Freeze wraps placements in a Cloud. Ownership of the slice moves to the
// Cloud; the caller must not retain or modify it afterwards.
func Freeze(placements []Placement) *Cloud {
	return &Cloud{placements: placements}
}

// Len returns the number of placements.
func (c *Cloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.placements)
}

// At returns the i-th placement in lattice traversal order.
func (c *Cloud) At(i int) Placement {
	return c.placements[i]
}

// Slice returns placements[start:end] as a capacity-limited view, so that
// appending to the result cannot write into the cloud.
func (c *Cloud) Slice(start, end int) []Placement {
	return c.placements[start:end:end]
}

// Placements returns a copy of all placements.
func (c *Cloud) Placements() []Placement {
	if c == nil {
		return nil
	}
	out := make([]Placement, len(c.placements))
	copy(out, c.placements)
	return out
}

// Bounds returns the box spanned by all positions.
// It is the zero box for an empty cloud.
func (c *Cloud) Bounds() r3.Box {
	if c.Len() == 0 {
		return r3.Box{}
	}
	lo := c.placements[0].Position
	hi := lo
	for _, p := range c.placements[1:] {
		v := p.Position
		lo.X, hi.X = min(lo.X, v.X), max(hi.X, v.X)
		lo.Y, hi.Y = min(lo.Y, v.Y), max(hi.Y, v.Y)
		lo.Z, hi.Z = min(lo.Z, v.Z), max(hi.Z, v.Z)
	}
	return r3.Box{Min: lo, Max: hi}
}
