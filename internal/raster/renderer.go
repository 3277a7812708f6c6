package raster

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"tsurf-renderer/internal/colormap"
	"tsurf-renderer/internal/mathutil"
	"tsurf-renderer/internal/mesh"
)

// Options controls a preview render.
type Options struct {
	Size        int     // output edge length in pixels
	Supersample int     // render at Size*Supersample, downsample afterwards
	Azimuth     float64 // degrees clockwise from north
	Elevation   float64 // degrees above the horizon; 90 is a map view
	Scalar      string  // point-data array to color by; "" uses the active scalars
	Colormap    *colormap.Map
	Background  color.NRGBA
}

// surfaceColor is used when the mesh has no scalars to color by.
var surfaceColor = color.NRGBA{R: 160, G: 160, B: 170, A: 255}

// Render rasterizes a mesh to an NRGBA image of Size*Supersample pixels.
// Surfaces with point normals are Gouraud shaded, others flat shaded.
func Render(m *mesh.Mesh, opts Options) *image.NRGBA {
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	renderSize := opts.Size * opts.Supersample
	fb := NewFrameBuffer(renderSize, renderSize, opts.Background)
	if m.NumPoints() == 0 {
		return fb.Image()
	}

	R := mathutil.OrbitView(opts.Azimuth, opts.Elevation)
	view := make([]r3.Vec, m.NumPoints())
	allMin := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	allMax := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := range view {
		v := R.MulVec(m.Point(i))
		view[i] = v
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
			continue
		}
		allMin = r3.Vec{X: math.Min(allMin.X, v.X), Y: math.Min(allMin.Y, v.Y), Z: math.Min(allMin.Z, v.Z)}
		allMax = r3.Vec{X: math.Max(allMax.X, v.X), Y: math.Max(allMax.Y, v.Y), Z: math.Max(allMax.Z, v.Z)}
	}
	if math.IsInf(allMin.X, 1) {
		return fb.Image()
	}

	center := r3.Scale(0.5, r3.Add(allMin, allMax))
	span := math.Max(allMax.X-allMin.X, allMax.Y-allMin.Y)
	if span < 1e-9 {
		span = 1e-9
	}
	margin := 8 * opts.Supersample
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	n := len(view)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)
	for i, v := range view {
		px[i] = (v.X-center.X)*scale + half
		py[i] = -(v.Y-center.Y)*scale + half
		pz[i] = v.Z
	}

	base := vertexColors(m, opts)
	lc := DefaultLightConfig()

	var shade []float64
	if m.Normals != nil {
		shade = make([]float64, n)
		for i := range shade {
			shade[i] = lc.Shade(R.MulVec(m.Normal(i)))
		}
	}

	for f := 0; f < m.NumTriangles(); f++ {
		idx := m.Triangle(f)
		var faceShade float64
		if shade == nil {
			e1 := r3.Sub(view[idx[1]], view[idx[0]])
			e2 := r3.Sub(view[idx[2]], view[idx[0]])
			faceShade = lc.Shade(unit(r3.Cross(e1, e2)))
		}
		var rgb [3][3]float64
		for k, v := range idx {
			s := faceShade
			if shade != nil {
				s = shade[v]
			}
			c := base[v]
			rgb[k] = [3]float64{float64(c.R) * s, float64(c.G) * s, float64(c.B) * s}
		}
		RasterizeTriangle(fb, px, py, pz, idx, rgb)
	}

	return fb.Image()
}

// vertexColors maps the chosen scalar through the colormap. Vector arrays
// are colored by magnitude.
func vertexColors(m *mesh.Mesh, opts Options) []color.NRGBA {
	cols := make([]color.NRGBA, m.NumPoints())
	arr := m.Scalars()
	if opts.Scalar != "" {
		arr = m.Array(opts.Scalar)
	}
	if arr == nil || opts.Colormap == nil {
		for i := range cols {
			cols[i] = surfaceColor
		}
		return cols
	}

	vals := ScalarValues(arr)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if !math.IsNaN(v) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	for i, v := range vals {
		t := 0.5
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		if math.IsNaN(v) {
			t = math.NaN()
		}
		cols[i] = opts.Colormap.At(t)
	}
	return cols
}

// ScalarValues returns one value per point: the value itself for
// single-component arrays, the Euclidean norm otherwise.
func ScalarValues(a *mesh.DataArray) []float64 {
	if a.Components == 1 {
		return a.Values
	}
	n := len(a.Values) / a.Components
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for _, v := range a.Tuple(i) {
			sum += v * v
		}
		out[i] = math.Sqrt(sum)
	}
	return out
}

func unit(v r3.Vec) r3.Vec {
	l := r3.Norm(v)
	if l < 1e-12 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, v)
}
