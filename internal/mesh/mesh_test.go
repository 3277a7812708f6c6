package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func quad() *Mesh {
	return &Mesh{
		Points:    []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 2},
		Triangles: []int32{0, 1, 2, 0, 2, 3},
		PointData: []*DataArray{
			{Name: "depth", Components: 1, Values: []float64{1, 2, math.NaN(), 4}},
			{Name: "vec", Components: 2, Values: []float64{1, 1, 2, 2, 3, 3, 4, 4}},
		},
		ActiveScalars: "depth",
	}
}

func TestMeshAccessors(t *testing.T) {
	m := quad()
	assert.Equal(t, 4, m.NumPoints())
	assert.Equal(t, 2, m.NumTriangles())
	assert.Equal(t, r3.Vec{X: 0, Y: 1, Z: 2}, m.Point(3))
	assert.Equal(t, [3]int{0, 2, 3}, m.Triangle(1))
	assert.Equal(t, r3.Vec{}, m.Normal(0))
	require.NotNil(t, m.Scalars())
	assert.Equal(t, "depth", m.Scalars().Name)
	assert.Nil(t, m.Array("missing"))

	lo, hi := m.Bounds()
	assert.Equal(t, r3.Vec{}, lo)
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 2}, hi)
}

func TestDataArrayRange(t *testing.T) {
	m := quad()
	lo, hi, ok := m.Array("depth").Range()
	require.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 4.0, hi)

	empty := &DataArray{Name: "e", Components: 1, Values: []float64{math.NaN()}}
	_, _, ok = empty.Range()
	assert.False(t, ok)
}

func TestRemapCopiesPointData(t *testing.T) {
	m := quad()
	out := m.Remap([]int{0, 1, 2, 3, 2}, []int32{0, 1, 2, 0, 4, 3})
	assert.Equal(t, 5, out.NumPoints())
	assert.Equal(t, m.Point(2), out.Point(4))
	assert.Equal(t, []float64{3, 3}, out.Array("vec").Tuple(4))
	assert.True(t, math.IsNaN(out.Array("depth").Values[4]))
	assert.Equal(t, "depth", out.ActiveScalars)

	// Source arrays are not aliased.
	out.Array("vec").Values[0] = 99
	assert.Equal(t, 1.0, m.Array("vec").Values[0])
}

func TestBoundsSkipsNonFinitePoints(t *testing.T) {
	m := &Mesh{Points: []float64{
		0, 0, 0,
		math.NaN(), 5, 5,
		1, 2, 3,
		math.Inf(-1), -9, -9,
	}}
	lo, hi := m.Bounds()
	assert.Equal(t, r3.Vec{}, lo)
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, hi)
}
