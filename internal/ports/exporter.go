package ports

import (
	"context"
	"time"

	"github.com/bft-labs/bulbplot/pkg/batch"
	"github.com/bft-labs/bulbplot/pkg/bulbplot"
)

// RunInfo describes a run being stored.
type RunInfo struct {
	ID        string
	StartedAt time.Time
	Config    bulbplot.Config
}

// FileExporter collects submitted chunks and writes the result to a file.
type FileExporter interface {
	batch.Renderer

	// WriteFile writes everything submitted so far to path.
	WriteFile(path string) error
}

// RunStore persists runs. Chunks submitted after BeginRun belong to that run.
type RunStore interface {
	batch.Renderer

	// BeginRun records a run and directs later chunks to it.
	BeginRun(ctx context.Context, info RunInfo) error

	// FinishRun records the completion summary of the run.
	FinishRun(ctx context.Context, ev bulbplot.CompleteEvent) error

	// DeleteRun removes a run and its placements.
	DeleteRun(ctx context.Context, runID string) error

	// Close releases the underlying storage.
	Close() error
}
