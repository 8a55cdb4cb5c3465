package batch

import (
	"errors"
	"fmt"

	"github.com/bft-labs/bulbplot/pkg/cloud"
)

// Renderer accepts one instanced draw submission.
// The slice is only valid for the duration of the call.
type Renderer interface {
	RenderInstanced(placements []cloud.Placement) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(placements []cloud.Placement) error

// RenderInstanced calls f.
func (f RendererFunc) RenderInstanced(placements []cloud.Placement) error {
	return f(placements)
}

// Tee fans every submission out to all renderers, in order.
// Errors from all renderers are joined.
func Tee(renderers ...Renderer) Renderer {
	return RendererFunc(func(placements []cloud.Placement) error {
		var errs []error
		for _, r := range renderers {
			if err := r.RenderInstanced(placements); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// Submit hands c to r in chunks of at most size placements and returns the
// number of submissions made. It stops at the first failing chunk.
func Submit(c *cloud.Cloud, size int, r Renderer) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("batch size must be positive, got %d", size)
	}
	calls := 0
	for _, rg := range Chunks(c.Len(), size) {
		if err := r.RenderInstanced(c.Slice(rg.Start, rg.End())); err != nil {
			return calls, fmt.Errorf("render chunk %d [%d,%d): %w", calls, rg.Start, rg.End(), err)
		}
		calls++
	}
	return calls, nil
}
