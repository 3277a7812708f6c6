// Package normals computes per-point normals for triangle meshes, optionally
// orienting triangles consistently and splitting points along sharp edges.
package normals

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"tsurf-renderer/internal/mesh"
)

// DefaultFeatureAngle is the dihedral angle in degrees above which an edge is
// treated as sharp.
const DefaultFeatureAngle = 30

// Options selects the stages of the computation.
type Options struct {
	FeatureAngle         float64 // degrees
	Splitting            bool    // duplicate points along sharp edges
	Consistency          bool    // reorder triangles to agree with their neighbors
	NonManifoldTraversal bool    // propagate orientation across edges shared by 3+ triangles
}

// Computer implements tsurf.NormalComputer.
type Computer struct {
	opts Options
}

func New(opts Options) *Computer {
	return &Computer{opts: opts}
}

// Default returns a Computer with every stage enabled and a 30° feature angle.
func Default() *Computer {
	return New(Options{
		FeatureAngle:         DefaultFeatureAngle,
		Splitting:            true,
		Consistency:          true,
		NonManifoldTraversal: true,
	})
}

type edge [2]int

func edgeOf(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// Compute returns a new mesh with normals. When splitting duplicates points,
// their point data is duplicated with them.
func (c *Computer) Compute(m *mesh.Mesh) (*mesh.Mesh, error) {
	if m.NumTriangles() == 0 {
		return nil, errors.New("normals: mesh has no triangles")
	}
	np := m.NumPoints()
	tris := make([][3]int, m.NumTriangles())
	for i := range tris {
		tris[i] = m.Triangle(i)
	}

	edges := make(map[edge][]int)
	for f, t := range tris {
		for k := 0; k < 3; k++ {
			e := edgeOf(t[k], t[(k+1)%3])
			edges[e] = append(edges[e], f)
		}
	}

	if c.opts.Consistency {
		orient(tris, edges, c.opts.NonManifoldTraversal)
	}

	// Faces touching a non-finite point get no normal and join no group.
	faceN := make([]r3.Vec, len(tris))
	valid := make([]bool, len(tris))
	for f, t := range tris {
		p0, p1, p2 := m.Point(t[0]), m.Point(t[1]), m.Point(t[2])
		valid[f] = finite(p0) && finite(p1) && finite(p2)
		if valid[f] {
			faceN[f] = faceNormal(p0, p1, p2)
		}
	}

	incident := make([][]int, np)
	for f, t := range tris {
		for _, v := range t {
			incident[v] = append(incident[v], f)
		}
	}

	cosFeature := math.Cos(c.opts.FeatureAngle * math.Pi / 180)
	src := make([]int, np)
	for i := range src {
		src[i] = i
	}
	// corner[f][k] is the output point used by corner k of triangle f.
	corner := make([][3]int, len(tris))
	sums := make([]r3.Vec, np)

	for v := 0; v < np; v++ {
		faces := incident[v]
		if len(faces) == 0 {
			continue
		}
		group := make([]int, len(faces))
		for i := range group {
			group[i] = i
		}
		var find func(int) int
		find = func(i int) int {
			for group[i] != i {
				group[i] = group[group[i]]
				i = group[i]
			}
			return i
		}
		pos := make(map[int]int, len(faces))
		for i, f := range faces {
			pos[f] = i
		}
		for i, f := range faces {
			if !valid[f] {
				continue
			}
			for _, w := range tris[f] {
				if w == v {
					continue
				}
				for _, g := range edges[edgeOf(v, w)] {
					j, ok := pos[g]
					if !ok || g == f || !valid[g] {
						continue
					}
					if c.opts.Splitting && r3.Dot(faceN[f], faceN[g]) < cosFeature {
						continue
					}
					if a, b := find(i), find(j); a != b {
						group[b] = a
					}
				}
			}
		}

		out := make(map[int]int)
		for i, f := range faces {
			if !valid[f] {
				continue
			}
			root := find(i)
			p, ok := out[root]
			if !ok {
				if len(out) == 0 {
					p = v
				} else {
					p = len(src)
					src = append(src, v)
					sums = append(sums, r3.Vec{})
				}
				out[root] = p
			}
			sums[p] = r3.Add(sums[p], faceN[f])
			setCorner(&corner[f], tris[f], v, p)
		}
		// Invalid faces reuse the vertex's first output point.
		for _, f := range faces {
			if !valid[f] {
				setCorner(&corner[f], tris[f], v, v)
			}
		}
	}

	outTris := make([]int32, 0, 3*len(tris))
	for f := range tris {
		outTris = append(outTris, int32(corner[f][0]), int32(corner[f][1]), int32(corner[f][2]))
	}
	out := m.Remap(src, outTris)
	out.Normals = make([]float64, 3*len(src))
	for p, s := range sums {
		n := unit(s)
		out.Normals[3*p], out.Normals[3*p+1], out.Normals[3*p+2] = n.X, n.Y, n.Z
	}
	return out, nil
}

// orient flips triangles so that neighbors traverse each shared edge in
// opposite directions. Each connected component keeps the winding of its
// first triangle.
func orient(tris [][3]int, edges map[edge][]int, nonManifold bool) {
	visited := make([]bool, len(tris))
	var queue []int
	for seed := range tris {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			t := tris[f]
			for k := 0; k < 3; k++ {
				a, b := t[k], t[(k+1)%3]
				shared := edges[edgeOf(a, b)]
				if len(shared) > 2 && !nonManifold {
					continue
				}
				for _, g := range shared {
					if g == f || visited[g] {
						continue
					}
					if hasDirected(tris[g], a, b) {
						tris[g][1], tris[g][2] = tris[g][2], tris[g][1]
					}
					visited[g] = true
					queue = append(queue, g)
				}
			}
		}
	}
}

func hasDirected(t [3]int, a, b int) bool {
	for k := 0; k < 3; k++ {
		if t[k] == a && t[(k+1)%3] == b {
			return true
		}
	}
	return false
}

func setCorner(c *[3]int, t [3]int, v, p int) {
	for k, w := range t {
		if w == v {
			c[k] = p
		}
	}
}

func finite(v r3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func faceNormal(p0, p1, p2 r3.Vec) r3.Vec {
	return unit(r3.Cross(r3.Sub(p1, p0), r3.Sub(p2, p0)))
}

// unit normalizes v; degenerate vectors map to zero.
func unit(v r3.Vec) r3.Vec {
	l := r3.Norm(v)
	if !(l >= 1e-12) || math.IsInf(l, 0) {
		return r3.Vec{}
	}
	return r3.Scale(1/l, v)
}
