// Package pick casts rays against a surface mesh. A Picker is bound to one
// Kind when it is created, and every pick returns the same Result shape.
package pick

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"tsurf-renderer/internal/mesh"
)

// Kind selects what a pick reports.
type Kind int

const (
	Cell  Kind = iota // triangle id
	Point             // id of the hit triangle's closest vertex
	World             // hit position only
)

func (k Kind) String() string {
	switch k {
	case Cell:
		return "cell"
	case Point:
		return "point"
	case World:
		return "world"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses "cell", "point" or "world".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "cell":
		return Cell, nil
	case "point":
		return Point, nil
	case "world":
		return World, nil
	}
	return 0, fmt.Errorf("pick: unknown picker kind %q", s)
}

// Result is a pick outcome. Position and Distance are set on every hit;
// CellID is set for Cell picks and PointID for Point picks, and are -1
// otherwise.
type Result struct {
	Kind     Kind
	Hit      bool
	CellID   int
	PointID  int
	Position r3.Vec
	Distance float64
}

// Ray is a half-line cast against the mesh.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec // Must be normalized
}

// Along returns the point at distance t from the origin.
func (r *Ray) Along(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// Picker picks against one mesh.
type Picker struct {
	kind Kind
	mesh *mesh.Mesh
}

// New returns a picker of the given kind bound to m.
func New(kind Kind, m *mesh.Mesh) *Picker {
	return &Picker{kind: kind, mesh: m}
}

// Pick returns the closest triangle hit along r.
func (p *Picker) Pick(r Ray) Result {
	res := Result{Kind: p.kind, CellID: -1, PointID: -1}
	var tri r3.Triangle
	for i := 0; i < p.mesh.NumTriangles(); i++ {
		idxs := p.mesh.Triangle(i)
		for k, idx := range idxs {
			tri[k] = p.mesh.Point(idx)
		}
		t, ok := r.IntersectTriangle(&tri)
		if !ok || (res.Hit && t >= res.Distance) {
			continue
		}
		res.Hit = true
		res.Distance = t
		res.CellID = i
	}
	if !res.Hit {
		return res
	}
	res.Position = r.Along(res.Distance)

	switch p.kind {
	case Point:
		best := -1.0
		for _, idx := range p.mesh.Triangle(res.CellID) {
			d := r3.Norm2(r3.Sub(p.mesh.Point(idx), res.Position))
			if best < 0 || d < best {
				best = d
				res.PointID = idx
			}
		}
		res.CellID = -1
	case World:
		res.CellID = -1
	}
	return res
}

// IntersectTriangle is a two-sided Möller–Trumbore test. It returns the
// distance along the ray to the hit.
func (r *Ray) IntersectTriangle(tri *r3.Triangle) (t float64, ok bool) {
	const epsilon = 0.0000001
	edge1 := r3.Sub(tri[1], tri[0])
	edge2 := r3.Sub(tri[2], tri[0])
	h := r3.Cross(r.Dir, edge2)
	det := r3.Dot(edge1, h)
	// Parallel to the plane of the triangle, or a non-finite vertex.
	if !(math.Abs(det) >= epsilon) {
		return 0, false
	}
	invDet := 1 / det
	s := r3.Sub(r.Origin, tri[0])
	u := invDet * r3.Dot(s, h)
	if !(u >= 0 && u <= 1) {
		return 0, false
	}
	q := r3.Cross(s, edge1)
	v := invDet * r3.Dot(r.Dir, q)
	if !(v >= 0 && u+v <= 1) {
		return 0, false
	}
	t = invDet * r3.Dot(edge2, q)
	if !(t >= epsilon) || math.IsInf(t, 0) {
		return 0, false
	}
	return t, true
}
