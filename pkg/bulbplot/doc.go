// Package bulbplot samples the power-8 Mandelbulb on a lattice and serves
// the member points for instanced rendering.
//
// It can be driven by the bulbplot CLI or embedded in a host that owns a
// frame loop.
//
// # Basic Usage
//
// A host with its own tick calls Step once per tick and, once ready, Render
// once per frame:
//
//	p, err := bulbplot.New(bulbplot.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// every tick
//	if _, err := p.Step(ctx); err != nil {
//	    return err
//	}
//	if p.Ready() {
//	    _, err = p.Render(renderer)
//	}
//
// Hosts without a frame loop call Run, which paces Step with a ticker:
//
//	points, err := p.Run(ctx)
//
// # Scheduling
//
// Each Step classifies at most Config.SamplesPerYield lattice points, so no
// single tick pays for the whole Resolution^3 lattice. The point cloud is
// published once, after the last point, and never changes afterwards.
// Canceling ctx between steps ends the pass in [StateCanceled].
//
// # Rendering
//
// Render splits the cloud into ceil(n/RenderBatchSize) contiguous chunks and
// hands each to a [batch.Renderer].
//
// # Events
//
// Implement [EventHandler] (or embed [BaseEventHandler]) and pass it with
// [WithEventHandler] to observe state changes, turns and completion.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// Use [ModuleVersions] to get versions of all sub-modules.
package bulbplot
