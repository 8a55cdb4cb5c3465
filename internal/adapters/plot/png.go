// Package plot exports a point cloud as a PNG projection onto the X/Y plane.
package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bft-labs/bulbplot/internal/ports"
	"github.com/bft-labs/bulbplot/pkg/cloud"
)

var _ ports.FileExporter = (*PNGExporter)(nil)

// DefaultSize is the edge length of the square output image.
const DefaultSize = 8 * vg.Inch

// PNGExporter accumulates placements and draws them as a scatter plot of
// their X and Y coordinates.
type PNGExporter struct {
	Title string
	Size  vg.Length

	pts plotter.XYs
}

// NewPNGExporter creates an exporter with the given title and DefaultSize.
func NewPNGExporter(title string) *PNGExporter {
	return &PNGExporter{Title: title, Size: DefaultSize}
}

// RenderInstanced appends one chunk of placements.
func (e *PNGExporter) RenderInstanced(chunk []cloud.Placement) error {
	for _, p := range chunk {
		e.pts = append(e.pts, plotter.XY{X: p.Position.X, Y: p.Position.Y})
	}
	return nil
}

// Len reports the number of accumulated points.
func (e *PNGExporter) Len() int { return len(e.pts) }

// Plot builds the plot without saving it.
func (e *PNGExporter) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%d points)", e.Title, len(e.pts))
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if len(e.pts) == 0 {
		return p, nil
	}

	sc, err := plotter.NewScatter(e.pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1)
	sc.GlyphStyle.Color = color.RGBA{R: 49, G: 104, B: 142, A: 255}
	p.Add(sc, plotter.NewGrid())
	return p, nil
}

// WriteFile saves the plot to path. The format follows the file extension.
func (e *PNGExporter) WriteFile(path string) error {
	p, err := e.Plot()
	if err != nil {
		return err
	}
	size := e.Size
	if size <= 0 {
		size = DefaultSize
	}
	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
