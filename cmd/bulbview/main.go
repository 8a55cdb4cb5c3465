package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	pflag "github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bft-labs/bulbplot/internal/cliconfig"
	"github.com/bft-labs/bulbplot/pkg/bulbplot"
	"github.com/bft-labs/bulbplot/pkg/cloud"
	logAdapter "github.com/bft-labs/bulbplot/pkg/log"
)

const (
	screenSize  = 640
	spinPerTick = 2 * math.Pi / 600
)

// viewer drives one scheduling turn per game tick and redraws the cloud in
// render batches every frame once it is ready.
type viewer struct {
	ctx     context.Context
	plotter *bulbplot.Plotter
	canvas  *canvas
	frame   *ebiten.Image
	step    float64

	// partial holds members seen so far, drawn while sampling is running.
	partial []cloud.Placement
	calls   int
}

func (v *viewer) visit(p r3.Vec, member bool) {
	if member {
		v.partial = append(v.partial, cloud.Placement{Position: p, Scale: v.step})
	}
}

func (v *viewer) Update() error {
	v.canvas.angle += spinPerTick
	if v.plotter.Ready() {
		return nil
	}
	if _, err := v.plotter.Step(v.ctx); err != nil {
		return err
	}
	if v.plotter.Ready() {
		v.partial = nil
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.canvas.clear()
	if v.plotter.Ready() {
		calls, err := v.plotter.Render(v.canvas)
		if err == nil {
			v.calls = calls
		}
	} else {
		_ = v.canvas.RenderInstanced(v.partial)
	}

	v.frame.WritePixels(v.canvas.img.Pix)
	screen.DrawImage(v.frame, nil)

	status := fmt.Sprintf("%s %3.0f%%", v.plotter.Status(), v.plotter.Progress()*100)
	if c := v.plotter.Cloud(); c != nil {
		status += fmt.Sprintf("\ninstances: %d\ndraw calls: %d", c.Len(), v.calls)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func run() error {
	cfg := cliconfig.DefaultConfig()
	cfg.Resolution = 48
	cfg.SamplesPerYield = 2000

	var cfgPath string
	fs := pflag.NewFlagSet("bulbview", pflag.ContinueOnError)
	fs.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.bulbplot/config.toml)")
	fs.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "samples per axis")
	fs.IntVar(&cfg.MaxIterations, "iterations", cfg.MaxIterations, "maximum escape-time iterations")
	fs.Float64Var(&cfg.Offset, "offset", cfg.Offset, "additive constant applied on every axis")
	fs.IntVar(&cfg.SamplesPerYield, "samples-per-yield", cfg.SamplesPerYield, "samples per game tick")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	changed := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgPath == "" {
		cfgPath = cliconfig.DefaultConfigPath()
	}
	if cfgPath != "" && cliconfig.FileExists(cfgPath) {
		fc, err := cliconfig.LoadFileConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := cliconfig.Logger(cfg.LogLevel)

	v := &viewer{
		ctx:    context.Background(),
		canvas: newCanvas(screenSize, screenSize, cfg.BoundingSize),
		frame:  ebiten.NewImage(screenSize, screenSize),
		step:   cfg.Library().Grid().Step(),
	}
	p, err := bulbplot.New(cfg.Library(),
		bulbplot.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
		bulbplot.WithVisitor(v.visit),
	)
	if err != nil {
		return fmt.Errorf("create plotter: %w", err)
	}
	v.plotter = p

	ebiten.SetWindowTitle(fmt.Sprintf("bulbplot (resolution %d)", cfg.Resolution))
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetTPS(60)
	return ebiten.RunGame(v)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bulbview:", err)
		os.Exit(1)
	}
}
