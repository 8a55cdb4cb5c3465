// Package bulb classifies points against the power-8 Mandelbulb set.
//
// The classifier is an escape-time test: a point is iterated through the
// spherical-coordinate power map and rejected as soon as its radius exceeds
// the escape threshold. Points that stay bounded for all iterations are
// members of the set.
//
// # Usage
//
//	p := bulb.DefaultParams()
//	if bulb.Classify(0.5, -0.25, 1.0, p) {
//	    // member
//	}
//
// # Numeric edge cases
//
// The polar angle is computed as acos(y/r) from the pre-iteration point, so a
// point at the origin produces NaN coordinates on its first iteration. A NaN
// radius never compares greater than the threshold, so such points are
// classified as members. This matches the shape produced by the reference
// plotter and must not be "fixed" without changing the visible fractal.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package bulb
