package main

import (
	"image"
	"image/color"
	"math"

	"github.com/bft-labs/bulbplot/pkg/cloud"
)

// canvas rasterizes placements into an RGBA frame, rotating the cloud about
// the Y axis and projecting orthographically.
type canvas struct {
	img   *image.RGBA
	angle float64
	// scale maps world units to pixels.
	scale float64
}

func newCanvas(width, height int, boundingSize float64) *canvas {
	return &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		scale: float64(min(width, height)) / (boundingSize * 1.2),
	}
}

func (c *canvas) clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0
	}
	for i := 3; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i] = 0xFF
	}
}

// project returns the pixel position of p and its depth in [-1, 1].
func (c *canvas) project(x, y, z float64) (int, int, float64) {
	sin, cos := math.Sincos(c.angle)
	rx := x*cos + z*sin
	rz := -x*sin + z*cos

	b := c.img.Bounds()
	sx := float64(b.Dx())/2 + rx*c.scale
	sy := float64(b.Dy())/2 - y*c.scale
	depth := rz * c.scale / float64(min(b.Dx(), b.Dy()))
	return int(math.Round(sx)), int(math.Round(sy)), max(-1, min(1, depth*2))
}

// RenderInstanced draws one chunk. It never fails.
func (c *canvas) RenderInstanced(chunk []cloud.Placement) error {
	for _, p := range chunk {
		c.plot(p)
	}
	return nil
}

func (c *canvas) plot(p cloud.Placement) {
	sx, sy, depth := c.project(p.Position.X, p.Position.Y, p.Position.Z)
	half := max(1, int(p.Scale*c.scale/4))
	// Nearer points are brighter.
	shade := uint8(140 + 110*(1-depth)/2)
	col := color.RGBA{R: shade / 3, G: shade, B: shade, A: 0xFF}

	r := image.Rect(sx-half, sy-half, sx+half, sy+half).Intersect(c.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}
