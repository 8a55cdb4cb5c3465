// Package echarts exports a point cloud as an interactive HTML 3D scatter chart.
package echarts

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bft-labs/bulbplot/internal/ports"
	"github.com/bft-labs/bulbplot/pkg/cloud"
)

var _ ports.FileExporter = (*HTMLExporter)(nil)

// HTMLExporter accumulates placements submitted through RenderInstanced and
// writes them as a single 3D scatter series.
type HTMLExporter struct {
	title    string
	subtitle string
	data     []opts.Chart3DData
	extent   float64
}

// NewHTMLExporter creates an exporter whose page carries the given title.
func NewHTMLExporter(title, subtitle string) *HTMLExporter {
	return &HTMLExporter{title: title, subtitle: subtitle}
}

// RenderInstanced appends one chunk of placements.
func (e *HTMLExporter) RenderInstanced(chunk []cloud.Placement) error {
	for _, p := range chunk {
		e.data = append(e.data, opts.Chart3DData{
			Value: []any{p.Position.X, p.Position.Y, p.Position.Z},
		})
		e.extent = max(e.extent, abs(p.Position.X)+p.Scale, abs(p.Position.Y)+p.Scale, abs(p.Position.Z)+p.Scale)
	}
	return nil
}

// Len reports the number of accumulated points.
func (e *HTMLExporter) Len() int { return len(e.data) }

// Render writes the chart page to w.
func (e *HTMLExporter) Render(w io.Writer) error {
	pad := e.extent
	if pad == 0 {
		pad = 1
	}

	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "bulbplot", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: e.title, Subtitle: fmt.Sprintf("%s points=%d", e.subtitle, len(e.data))}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X", Min: -pad, Max: pad}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y", Min: -pad, Max: pad}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z", Min: -pad, Max: pad}),
	)
	scatter.AddSeries("members", e.data)

	return scatter.Render(w)
}

// WriteFile renders the chart page to path.
func (e *HTMLExporter) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
