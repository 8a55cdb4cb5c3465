// Package sampler walks a cubic lattice, classifies every point with
// [bulb.Classify] and collects the members as instance placements.
//
// The walk is incremental. [Sampler.Advance] performs one scheduling turn:
// it visits lattice points in x-major, then y, then z order until the number
// of samples taken so far reaches a multiple of Grid.SamplesPerYield, then
// suspends. The next call resumes at the following point. When the last
// point has been visited the collected placements are frozen into a
// [cloud.Cloud] and the sampler reports ready.
//
// A Sampler is owned by a single goroutine. The placement buffer is never
// exposed while the walk is in progress.
//
//	s, err := sampler.New(sampler.DefaultGrid(), bulb.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	for !s.Advance() {
//	    // yield to the host scheduler
//	}
//	points := s.Cloud()
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package sampler
