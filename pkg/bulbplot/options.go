package bulbplot

import (
	"github.com/google/uuid"

	"github.com/bft-labs/bulbplot/pkg/log"
	"github.com/bft-labs/bulbplot/pkg/sampler"
)

// Option configures optional behavior of a Plotter.
type Option func(*options)

type options struct {
	logger       log.Logger
	eventHandler EventHandler
	visitor      sampler.Visitor
	runID        uuid.UUID
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets the logger. If not provided, nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for sampling events.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithVisitor observes every lattice point as it is classified.
func WithVisitor(v sampler.Visitor) Option {
	return func(o *options) {
		o.visitor = v
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id uuid.UUID) Option {
	return func(o *options) {
		o.runID = id
	}
}
