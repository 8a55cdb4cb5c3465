// Package domain contains the sentinel errors shared by the bulbplot packages.
//
// It has no dependencies on infrastructure concerns and sits at the innermost
// layer: pkg/bulb, pkg/sampler, pkg/lifecycle and pkg/bulbplot wrap these
// errors with context, and callers match them with errors.Is.
package domain
