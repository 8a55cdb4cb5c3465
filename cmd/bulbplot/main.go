package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/bulbplot/internal/adapters/echarts"
	"github.com/bft-labs/bulbplot/internal/adapters/plot"
	"github.com/bft-labs/bulbplot/internal/adapters/sqlite"
	"github.com/bft-labs/bulbplot/internal/cliconfig"
	"github.com/bft-labs/bulbplot/internal/ports"
	"github.com/bft-labs/bulbplot/pkg/batch"
	"github.com/bft-labs/bulbplot/pkg/bulbplot"
	logAdapter "github.com/bft-labs/bulbplot/pkg/log"
)

const helpDescription = `
Sample the power-8 Mandelbulb on a regular lattice and export the member
points as an instanced point cloud.

The lattice is walked a few samples per tick so a host loop never stalls.
Once the pass completes the cloud is submitted in render batches to every
configured exporter: an interactive HTML chart, a PNG projection, or a
SQLite database.
`

var exampleUsage = strings.TrimSpace(`
  bulbplot --resolution 64 --html-out bulb.html
  bulbplot --config $HOME/.bulbplot/config.toml --tick 0 --db-path runs.db
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// completeRecorder keeps the completion summary for the run store.
type completeRecorder struct {
	bulbplot.BaseEventHandler
	event bulbplot.CompleteEvent
}

func (c *completeRecorder) OnComplete(ev bulbplot.CompleteEvent) { c.event = ev }

// persistRun stores a completed pass. A run that fails part way is removed
// so the database only holds complete runs.
func persistRun(ctx context.Context, store ports.RunStore, p *bulbplot.Plotter, info sqlite.RunInfo, ev bulbplot.CompleteEvent) (err error) {
	if err := store.BeginRun(ctx, info); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			// ctx may be the reason for the failure.
			if derr := store.DeleteRun(context.WithoutCancel(ctx), info.ID); derr != nil {
				err = errors.Join(err, fmt.Errorf("delete run %s: %w", info.ID, derr))
			}
		}
	}()

	if _, err := p.Render(store); err != nil {
		return fmt.Errorf("store placements: %w", err)
	}
	if err := store.FinishRun(ctx, ev); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "bulbplot",
		Short:   "Sample a Mandelbulb point cloud and export it",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Env overrides file config but not explicitly set flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cliconfig.Logger(cfg.LogLevel)
			log.Info().Interface("config", cfg).Msg("configuration")

			recorder := &completeRecorder{}
			p, err := bulbplot.New(cfg.Library(),
				bulbplot.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
				bulbplot.WithEventHandler(recorder),
			)
			if err != nil {
				return fmt.Errorf("create plotter: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				select {
				case <-sigCh:
					log.Info().Msg("received signal, stopping...")
					cancel()
				case <-ctx.Done():
				}
			}()

			type fileOutput struct {
				path     string
				exporter ports.FileExporter
			}
			var (
				renderers []batch.Renderer
				files     []fileOutput
			)
			if cfg.HTMLOut != "" {
				e := echarts.NewHTMLExporter("Mandelbulb", fmt.Sprintf("resolution=%d iterations=%d", cfg.Resolution, cfg.MaxIterations))
				files = append(files, fileOutput{cfg.HTMLOut, e})
				renderers = append(renderers, e)
			}
			if cfg.PNGOut != "" {
				e := plot.NewPNGExporter("Mandelbulb")
				files = append(files, fileOutput{cfg.PNGOut, e})
				renderers = append(renderers, e)
			}
			// Open early so a bad path fails before sampling; the run row is
			// only written once there is a cloud to store.
			var store *sqlite.Store
			if cfg.DBPath != "" {
				store, err = sqlite.Open(cfg.DBPath)
				if err != nil {
					return fmt.Errorf("open store: %w", err)
				}
				defer store.Close()
			}

			c, err := p.Run(ctx)
			if err != nil {
				if errors.Is(err, bulbplot.ErrCanceled) {
					log.Warn().Float64("progress", p.Progress()).Msg("sampling canceled")
				}
				return err
			}

			if len(renderers) == 0 && store == nil {
				log.Info().Int("members", c.Len()).Msg("no exporters configured")
				return nil
			}

			if len(renderers) > 0 {
				calls, err := p.Render(batch.Tee(renderers...))
				if err != nil {
					return fmt.Errorf("render: %w", err)
				}
				log.Info().Int("draw_calls", calls).Int("instances", c.Len()).Msg("cloud submitted")
			}

			for _, f := range files {
				if err := f.exporter.WriteFile(f.path); err != nil {
					return err
				}
				log.Info().Str("path", f.path).Msg("wrote export")
			}
			if store != nil {
				info := sqlite.RunInfo{ID: p.RunID().String(), StartedAt: time.Now(), Config: p.Config()}
				if err := persistRun(ctx, store, p, info, recorder.event); err != nil {
					return err
				}
				log.Info().Str("path", cfg.DBPath).Str("run_id", info.ID).Msg("stored run")
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.bulbplot/config.toml)")

	root.Flags().Float64Var(&cfg.BoundingSize, "bounding-size", cfg.BoundingSize, "edge length of the sampled cube")
	root.Flags().IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "samples per axis")
	root.Flags().IntVar(&cfg.MaxIterations, "iterations", cfg.MaxIterations, "maximum escape-time iterations")
	root.Flags().Float64Var(&cfg.EscapeThreshold, "threshold", cfg.EscapeThreshold, "escape radius")
	root.Flags().Float64Var(&cfg.Offset, "offset", cfg.Offset, "additive constant applied on every axis")
	root.Flags().IntVar(&cfg.SamplesPerYield, "samples-per-yield", cfg.SamplesPerYield, "samples per scheduling turn")
	root.Flags().IntVar(&cfg.RenderBatchSize, "render-batch-size", cfg.RenderBatchSize, "instances per draw submission")
	root.Flags().DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "interval between scheduling turns (0 runs turns back to back)")

	root.Flags().StringVar(&cfg.HTMLOut, "html-out", cfg.HTMLOut, "write an interactive 3D chart to this path")
	root.Flags().StringVar(&cfg.PNGOut, "png-out", cfg.PNGOut, "write an X/Y projection image to this path")
	root.Flags().StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "store the run in this SQLite database")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		l := cliconfig.Logger(cfg.LogLevel)
		l.Error().Err(err).Msg("bulbplot")
		os.Exit(1)
	}
}
