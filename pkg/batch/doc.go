// Package batch splits a frozen point cloud into instanced draw submissions.
//
// A host renderer usually caps the number of instances per draw call. Given a
// cloud of n placements and a batch size, [Chunks] yields ceil(n/size)
// contiguous ranges and [Submit] hands each range to a [Renderer] in order.
// The cloud is read-only, so submission needs no synchronization beyond
// checking that sampling has completed.
//
// # Usage
//
//	if s.Ready() {
//	    calls, err := batch.Submit(s.Cloud(), batch.DefaultSize, renderer)
//	    ...
//	}
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package batch
