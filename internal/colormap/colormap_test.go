package colormap

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	m, err := ByName("Gray")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, m.At(0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, m.At(1))
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, m.At(0.5))
	assert.Equal(t, m.At(0), m.At(-3))
	assert.Equal(t, m.At(1), m.At(7))
	assert.Equal(t, NaNColor, m.At(math.NaN()))
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("rainbow2")
	assert.ErrorContains(t, err, "viridis")
	assert.Contains(t, Names(), "jet")
}

// writeRamp writes a 4×3 image going from red on the left to blue on the right.
func writeRamp(t *testing.T, name string, enc func(*os.File, image.Image) error) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		img.SetNRGBA(0, y, color.NRGBA{255, 0, 0, 255})
		img.SetNRGBA(1, y, color.NRGBA{255, 0, 0, 255})
		img.SetNRGBA(2, y, color.NRGBA{0, 0, 255, 255})
		img.SetNRGBA(3, y, color.NRGBA{0, 0, 255, 255})
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, enc(f, img))
	return path
}

func TestLoadImageRamps(t *testing.T) {
	encoders := map[string]func(*os.File, image.Image) error{
		"ramp.png": func(f *os.File, img image.Image) error { return png.Encode(f, img) },
		"ramp.tga": func(f *os.File, img image.Image) error { return tga.Encode(f, img) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			m, err := Resolve(writeRamp(t, name, enc))
			require.NoError(t, err)
			lo, hi := m.At(0), m.At(1)
			assert.Greater(t, lo.R, uint8(200))
			assert.Less(t, lo.B, uint8(50))
			assert.Greater(t, hi.B, uint8(200))
			assert.Less(t, hi.R, uint8(50))
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "none.png"))
	assert.Error(t, err)
}
