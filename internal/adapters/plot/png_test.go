package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bft-labs/bulbplot/pkg/batch"
	"github.com/bft-labs/bulbplot/pkg/cloud"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPNGExporter_WriteFile(t *testing.T) {
	placements := []cloud.Placement{
		{Position: r3.Vec{X: -1, Y: -1, Z: 0}, Scale: 0.5},
		{Position: r3.Vec{X: 0, Y: 0, Z: 0}, Scale: 0.5},
		{Position: r3.Vec{X: 1, Y: 1, Z: 0}, Scale: 0.5},
	}

	e := NewPNGExporter("Mandelbulb")
	e.Size = 200
	chunks, err := batch.Submit(cloud.Freeze(placements), 2, e)
	require.NoError(t, err)
	assert.Equal(t, 2, chunks)
	assert.Equal(t, 3, e.Len())

	path := filepath.Join(t.TempDir(), "bulb.png")
	require.NoError(t, e.WriteFile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, pngMagic), "output is not a PNG")
}

func TestPNGExporter_EmptyCloud(t *testing.T) {
	e := NewPNGExporter("empty")
	e.Size = 100

	p, err := e.Plot()
	require.NoError(t, err)
	assert.Equal(t, "empty (0 points)", p.Title.Text)

	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, e.WriteFile(path))
}

func TestPNGExporter_UnsupportedExtension(t *testing.T) {
	e := NewPNGExporter("x")
	err := e.WriteFile(filepath.Join(t.TempDir(), "out.unknown"))
	assert.Error(t, err)
}
