package bulbplot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/bulbplot/internal/domain"
	"github.com/bft-labs/bulbplot/pkg/batch"
	"github.com/bft-labs/bulbplot/pkg/cloud"
	"github.com/bft-labs/bulbplot/pkg/lifecycle"
	"github.com/bft-labs/bulbplot/pkg/log"
	"github.com/bft-labs/bulbplot/pkg/sampler"
)

// Errors returned by the Plotter, for use with errors.Is.
var (
	ErrInvalidConfig = domain.ErrInvalidConfig
	ErrNotReady      = domain.ErrNotReady
	ErrCanceled      = domain.ErrCanceled
)

// Plotter runs one sampling pass and serves the resulting point cloud.
//
// Step and Run must be driven from a single goroutine. Status, Ready, Cloud,
// Done and Render may be called from any goroutine.
type Plotter struct {
	config    Config
	runID     uuid.UUID
	lifecycle *lifecycle.Manager
	sampler   *sampler.Sampler
	logger    log.Logger
	emitter   *eventEmitterWrapper
	started   time.Time

	// published is set once, before the transition to StateComplete.
	published atomic.Pointer[cloud.Cloud]
}

// New creates a Plotter in StateIdle. Invalid configuration is rejected here,
// before any sampling work is done.
func New(cfg Config, opts ...Option) (*Plotter, error) {
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}
	if o.runID == uuid.Nil {
		o.runID = uuid.New()
	}

	var samplerOpts []sampler.Option
	if o.visitor != nil {
		samplerOpts = append(samplerOpts, sampler.WithVisitor(o.visitor))
	}
	s, err := sampler.New(cfg.Grid(), cfg.Params(), samplerOpts...)
	if err != nil {
		return nil, err
	}

	logger := log.With(o.logger, log.String("run_id", o.runID.String()))
	emitter := &eventEmitterWrapper{handler: o.eventHandler}

	return &Plotter{
		config:    cfg,
		runID:     o.runID,
		lifecycle: lifecycle.NewManager(logger, emitter),
		sampler:   s,
		logger:    logger,
		emitter:   emitter,
	}, nil
}

// Step performs one scheduling turn and reports whether the cloud is ready.
//
// The first call moves the pass to StateRunning. If ctx is done the pass is
// canceled and ErrCanceled is returned; a canceled pass cannot be resumed.
func (p *Plotter) Step(ctx context.Context) (bool, error) {
	switch p.lifecycle.State() {
	case lifecycle.StateComplete:
		return true, nil
	case lifecycle.StateCanceled:
		return false, ErrCanceled
	case lifecycle.StateIdle:
		if err := ctx.Err(); err != nil {
			return false, p.cancel(err)
		}
		g := p.config.Grid()
		p.logger.Info("sampling started",
			log.Int("resolution", g.Resolution),
			log.Float64("step", g.Step()),
			log.Int("points", g.Points()),
			log.Int("samples_per_yield", g.SamplesPerYield),
		)
		p.started = time.Now()
		if err := p.lifecycle.TransitionTo(lifecycle.StateRunning, "first turn"); err != nil {
			return false, err
		}
	default:
		if err := ctx.Err(); err != nil {
			return false, p.cancel(err)
		}
	}

	done := p.sampler.Advance()

	ev := TurnEvent{
		Turn:    p.sampler.Turns(),
		Samples: p.sampler.Samples(),
		Members: p.sampler.Members(),
		Total:   p.config.Grid().Points(),
	}
	p.logger.Debug("turn",
		log.Int("turn", ev.Turn),
		log.Int("samples", ev.Samples),
		log.Int("members", ev.Members),
	)
	p.emitter.onTurn(ev)

	if !done {
		return false, nil
	}
	return true, p.complete()
}

func (p *Plotter) complete() error {
	c := p.sampler.Cloud()
	p.published.Store(c)
	if err := p.lifecycle.TransitionTo(lifecycle.StateComplete, "lattice exhausted"); err != nil {
		return err
	}

	ev := CompleteEvent{
		RunID:    p.runID.String(),
		Samples:  p.sampler.Samples(),
		Members:  c.Len(),
		Turns:    p.sampler.Turns(),
		Duration: time.Since(p.started),
	}
	p.logger.Info("sampling complete",
		log.Int("samples", ev.Samples),
		log.Int("members", ev.Members),
		log.Int("turns", ev.Turns),
		log.Duration("duration", ev.Duration),
	)
	if c.Len() > 0 {
		b := c.Bounds()
		p.logger.Debug("cloud bounds", log.Vec("min", b.Min), log.Vec("max", b.Max))
	}
	p.emitter.onComplete(ev)
	return nil
}

func (p *Plotter) cancel(cause error) error {
	p.logger.Warn("sampling canceled",
		log.Int("samples", p.sampler.Samples()),
		log.Err(cause),
	)
	if err := p.lifecycle.TransitionTo(lifecycle.StateCanceled, cause.Error()); err != nil {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCanceled, cause)
}

// Run drives Step once per TickInterval until the cloud is ready or ctx is done.
func (p *Plotter) Run(ctx context.Context) (*cloud.Cloud, error) {
	var tick <-chan time.Time
	if p.config.TickInterval > 0 {
		ticker := time.NewTicker(p.config.TickInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		done, err := p.Step(ctx)
		if err != nil {
			return nil, err
		}
		if done {
			return p.Cloud(), nil
		}
		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			// The next Step observes the cancellation.
		case <-tick:
		}
	}
}

// Render submits the published cloud to r in RenderBatchSize chunks and
// returns the number of submissions. It returns ErrNotReady until the pass
// is complete. Hosts call it once per frame.
func (p *Plotter) Render(r batch.Renderer) (int, error) {
	c := p.published.Load()
	if c == nil {
		return 0, ErrNotReady
	}
	return batch.Submit(c, p.config.RenderBatchSize, r)
}

// Status returns the current lifecycle state.
func (p *Plotter) Status() State {
	return p.lifecycle.State()
}

// Ready reports whether the point cloud has been published.
func (p *Plotter) Ready() bool {
	return p.published.Load() != nil
}

// Cloud returns the published point cloud, or nil before completion.
func (p *Plotter) Cloud() *cloud.Cloud {
	return p.published.Load()
}

// Done returns a channel closed when the pass completes or is canceled.
func (p *Plotter) Done() <-chan struct{} {
	return p.lifecycle.Done()
}

// Progress returns the visited fraction of the lattice. It must be called
// from the goroutine driving Step.
func (p *Plotter) Progress() float64 {
	return p.sampler.Progress()
}

// RunID identifies this sampling pass.
func (p *Plotter) RunID() uuid.UUID {
	return p.runID
}

// Config returns the configuration of this pass.
func (p *Plotter) Config() Config {
	return p.config
}
