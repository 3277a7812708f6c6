// Package colormap maps normalized scalars to colors.
package colormap

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"sort"
	"strings"

	_ "github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// NaNColor is used for missing values.
var NaNColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// Map is a piecewise-linear color ramp over [0, 1].
type Map struct {
	Name  string
	stops []color.NRGBA
}

// New returns a ramp with evenly spaced stops.
func New(name string, stops ...color.NRGBA) *Map {
	return &Map{Name: name, stops: stops}
}

var builtin = map[string][]color.NRGBA{
	"viridis": {
		{68, 1, 84, 255}, {59, 82, 139, 255}, {33, 145, 140, 255},
		{94, 201, 98, 255}, {253, 231, 37, 255},
	},
	"jet": {
		{0, 0, 143, 255}, {0, 0, 255, 255}, {0, 255, 255, 255},
		{255, 255, 0, 255}, {255, 0, 0, 255}, {128, 0, 0, 255},
	},
	"seismic": {
		{0, 0, 77, 255}, {0, 0, 255, 255}, {255, 255, 255, 255},
		{255, 0, 0, 255}, {128, 0, 0, 255},
	},
	"gray": {{0, 0, 0, 255}, {255, 255, 255, 255}},
}

// Names lists the built-in ramps.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByName returns a built-in ramp.
func ByName(name string) (*Map, error) {
	stops, ok := builtin[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("colormap: unknown colormap %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return New(strings.ToLower(name), stops...), nil
}

// Resolve returns a built-in ramp by name, or loads the ramp from an image
// file when arg names an existing file.
func Resolve(arg string) (*Map, error) {
	if _, err := os.Stat(arg); err == nil {
		return Load(arg)
	}
	return ByName(arg)
}

// rampWidth is the number of stops sampled from an image ramp.
const rampWidth = 256

// Load reads a PNG, JPEG or TGA image and uses its middle row, left to
// right, as the ramp.
func Load(path string) (*Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("colormap: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("colormap: decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("colormap: empty image %s", path)
	}

	row := image.Rect(b.Min.X, b.Min.Y+b.Dy()/2, b.Max.X, b.Min.Y+b.Dy()/2+1)
	dst := image.NewNRGBA(image.Rect(0, 0, rampWidth, 1))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, row, draw.Src, nil)

	stops := make([]color.NRGBA, rampWidth)
	for x := range stops {
		stops[x] = dst.NRGBAAt(x, 0)
		stops[x].A = 255
	}
	return New(path, stops...), nil
}

// At returns the color for t in [0, 1]; values outside are clamped and NaN
// maps to NaNColor.
func (m *Map) At(t float64) color.NRGBA {
	if math.IsNaN(t) || len(m.stops) == 0 {
		return NaNColor
	}
	if len(m.stops) == 1 {
		return m.stops[0]
	}
	t = math.Max(0, math.Min(1, t))
	f := t * float64(len(m.stops)-1)
	i := int(f)
	if i >= len(m.stops)-1 {
		return m.stops[len(m.stops)-1]
	}
	frac := f - float64(i)
	a, b := m.stops[i], m.stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*frac + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
