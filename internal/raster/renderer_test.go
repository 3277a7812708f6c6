package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsurf-renderer/internal/colormap"
	"tsurf-renderer/internal/mesh"
)

func square(vals ...float64) *mesh.Mesh {
	return &mesh.Mesh{
		Points:    []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
		Triangles: []int32{0, 1, 2, 0, 2, 3},
		PointData: []*mesh.DataArray{
			{Name: "depth", Components: 1, Values: vals},
		},
		ActiveScalars: "depth",
	}
}

func TestRenderMapView(t *testing.T) {
	gray, err := colormap.ByName("gray")
	require.NoError(t, err)
	img := Render(square(0, 0, 1, 1), Options{Size: 32, Supersample: 2, Elevation: 90, Colormap: gray})
	assert.Equal(t, 64, img.Bounds().Dx())

	bg := img.NRGBAAt(1, 1)
	assert.Equal(t, uint8(0), bg.A)

	mid := img.NRGBAAt(32, 32)
	assert.Equal(t, uint8(255), mid.A)

	// Depth grows with Y; screen Y points down, so the top row is brighter.
	top := img.NRGBAAt(32, 18)
	bottom := img.NRGBAAt(32, 46)
	assert.Greater(t, top.R, bottom.R)
}

func TestRenderMissingValuesAreGray(t *testing.T) {
	jet, err := colormap.ByName("jet")
	require.NoError(t, err)
	nan := math.NaN()
	img := Render(square(nan, nan, nan, nan), Options{Size: 32, Elevation: 90, Colormap: jet})
	c := img.NRGBAAt(16, 16)
	assert.Equal(t, uint8(255), c.A)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
}

func TestRenderWithNormals(t *testing.T) {
	m := square(1, 2, 3, 4)
	m.Normals = []float64{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1}
	img := Render(m, Options{Size: 16, Elevation: 90})
	c := img.NRGBAAt(8, 8)
	assert.Equal(t, uint8(255), c.A)
	// No colormap: uniform surface color, lit by the headlight.
	assert.Greater(t, c.R, uint8(100))
	assert.Greater(t, c.B, c.R)
}

func TestScalarValuesMagnitude(t *testing.T) {
	a := &mesh.DataArray{Name: "v", Components: 2, Values: []float64{3, 4, 0, 1}}
	assert.Equal(t, []float64{5, 1}, ScalarValues(a))
}

func TestRenderEmpty(t *testing.T) {
	img := Render(&mesh.Mesh{}, Options{Size: 8})
	assert.Equal(t, 8, img.Bounds().Dx())
}
