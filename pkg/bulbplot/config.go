package bulbplot

import (
	"fmt"
	"time"

	"github.com/bft-labs/bulbplot/internal/domain"
	"github.com/bft-labs/bulbplot/pkg/batch"
	"github.com/bft-labs/bulbplot/pkg/bulb"
	"github.com/bft-labs/bulbplot/pkg/sampler"
)

// Config holds the parameters of one sampling pass. It is immutable once
// passed to New.
type Config struct {
	// BoundingSize is the cube edge length. Default: 4
	BoundingSize float64

	// Resolution is the number of samples per axis. Default: 10
	Resolution int

	// MaxIterations caps the classifier iterations. Default: 8
	MaxIterations int

	// EscapeThreshold is the divergence radius. Default: 20
	EscapeThreshold float64

	// Offset is the fractal additive constant. Default: 1.2
	Offset float64

	// SamplesPerYield is the number of samples per scheduling turn. Default: 30
	SamplesPerYield int

	// RenderBatchSize is the number of instances per draw submission. Default: 10000
	RenderBatchSize int

	// TickInterval paces Run. Zero runs turns back to back. Default: 16ms
	TickInterval time.Duration
}

// DefaultConfig returns a Config with the reference plotter's values.
func DefaultConfig() Config {
	g := sampler.DefaultGrid()
	p := bulb.DefaultParams()
	return Config{
		BoundingSize:    g.BoundingSize,
		Resolution:      g.Resolution,
		MaxIterations:   p.MaxIterations,
		EscapeThreshold: p.EscapeThreshold,
		Offset:          p.Offset,
		SamplesPerYield: g.SamplesPerYield,
		RenderBatchSize: batch.DefaultSize,
		TickInterval:    16 * time.Millisecond,
	}
}

// SetDefaults fills fields whose zero value is never valid and has a
// harmless default. Geometry is left alone so that mistakes fail validation.
func (c *Config) SetDefaults() {
	if c.RenderBatchSize == 0 {
		c.RenderBatchSize = batch.DefaultSize
	}
}

// Validate checks the configuration before sampling starts.
func (c Config) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return err
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.RenderBatchSize <= 0 {
		return fmt.Errorf("%w: render batch size must be positive", domain.ErrInvalidConfig)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("%w: tick interval must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

// Grid returns the lattice part of the configuration.
func (c Config) Grid() sampler.Grid {
	return sampler.Grid{
		BoundingSize:    c.BoundingSize,
		Resolution:      c.Resolution,
		SamplesPerYield: c.SamplesPerYield,
	}
}

// Params returns the classifier part of the configuration.
func (c Config) Params() bulb.Params {
	return bulb.Params{
		MaxIterations:   c.MaxIterations,
		EscapeThreshold: c.EscapeThreshold,
		Offset:          c.Offset,
	}
}
