package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DataArray is a named per-vertex array. Values holds Components entries per
// point, point-major.
type DataArray struct {
	Name       string
	Components int
	Unit       string
	Kind       string
	Values     []float64
}

// Tuple returns the values of point i.
func (a *DataArray) Tuple(i int) []float64 {
	return a.Values[i*a.Components : (i+1)*a.Components]
}

// Range returns the min and max of the finite values, ignoring NaN.
// ok is false when the array holds no finite value.
func (a *DataArray) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range a.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		ok = true
	}
	return lo, hi, ok
}

// Mesh is an indexed triangle surface with point data.
type Mesh struct {
	Points    []float64 // x, y, z per point
	Triangles []int32   // 3 point indices per triangle
	PointData []*DataArray

	// ActiveScalars names the default single-component array, if any.
	ActiveScalars string

	// Normals holds one unit vector per point when computed, else nil.
	Normals []float64
}

func (m *Mesh) NumPoints() int    { return len(m.Points) / 3 }
func (m *Mesh) NumTriangles() int { return len(m.Triangles) / 3 }

// Point returns the position of point i.
func (m *Mesh) Point(i int) r3.Vec {
	return r3.Vec{X: m.Points[3*i], Y: m.Points[3*i+1], Z: m.Points[3*i+2]}
}

// Triangle returns the point indices of triangle i.
func (m *Mesh) Triangle(i int) [3]int {
	return [3]int{int(m.Triangles[3*i]), int(m.Triangles[3*i+1]), int(m.Triangles[3*i+2])}
}

// Normal returns the normal of point i, or the zero vector if normals are absent.
func (m *Mesh) Normal(i int) r3.Vec {
	if m.Normals == nil {
		return r3.Vec{}
	}
	return r3.Vec{X: m.Normals[3*i], Y: m.Normals[3*i+1], Z: m.Normals[3*i+2]}
}

// Array looks up a point-data array by name.
func (m *Mesh) Array(name string) *DataArray {
	for _, a := range m.PointData {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Scalars returns the active scalar array, or nil.
func (m *Mesh) Scalars() *DataArray {
	if m.ActiveScalars == "" {
		return nil
	}
	return m.Array(m.ActiveScalars)
}

// Bounds returns the axis-aligned bounding box of the finite points.
func (m *Mesh) Bounds() (lo, hi r3.Vec) {
	lo = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := 0; i < m.NumPoints(); i++ {
		p := m.Point(i)
		if !finite(p) {
			continue
		}
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

func finite(p r3.Vec) bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Remap returns a copy of m whose point i is the old point src[i].
// Point data follows the points; triangles are replaced by tris.
func (m *Mesh) Remap(src []int, tris []int32) *Mesh {
	out := &Mesh{
		Points:        make([]float64, 3*len(src)),
		Triangles:     tris,
		ActiveScalars: m.ActiveScalars,
	}
	for i, s := range src {
		copy(out.Points[3*i:3*i+3], m.Points[3*s:3*s+3])
	}
	for _, a := range m.PointData {
		na := &DataArray{
			Name:       a.Name,
			Components: a.Components,
			Unit:       a.Unit,
			Kind:       a.Kind,
			Values:     make([]float64, a.Components*len(src)),
		}
		for i, s := range src {
			copy(na.Tuple(i), a.Tuple(s))
		}
		out.PointData = append(out.PointData, na)
	}
	return out
}
