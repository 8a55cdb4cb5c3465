package bulb

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Classify reports whether (x, y, z) stays bounded under the power-8 map.
//
// The in-loop escape check uses the radius of the point before it is mapped,
// and one more check with the last computed radius runs after the loop. Both
// determine which boundary points are included.
func Classify(x, y, z float64, p Params) bool {
	r := 0.0
	for k := 0; k < p.MaxIterations; k++ {
		r = math.Sqrt(x*x + y*y + z*z)
		if r > p.EscapeThreshold {
			return false
		}

		theta := math.Acos(y / r)
		phi := math.Atan2(x, z)

		r = math.Pow(r, Power)
		theta *= Power
		phi *= Power

		sinTheta := math.Sin(theta)
		x = r*sinTheta*math.Sin(phi) + p.Offset
		y = r*math.Cos(theta) + p.Offset
		z = r*sinTheta*math.Cos(phi) + p.Offset
	}

	// r here is the powered radius of the last iteration.
	if r > p.EscapeThreshold {
		return false
	}
	return true
}

// ClassifyVec is Classify for a gonum vector.
func ClassifyVec(v r3.Vec, p Params) bool {
	return Classify(v.X, v.Y, v.Z, p)
}
