package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"tsurf-renderer/internal/normals"
	"tsurf-renderer/internal/tsurf"
)

// Config holds all configurable paths, parse options and render settings.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Parse settings. Pointers distinguish "unset" from false.
	ComputeNormals  bool    `json:"compute_normals"`
	ShareAtomPoints *bool   `json:"share_atom_points,omitempty"`
	NoDataToNaN     *bool   `json:"no_data_to_nan,omitempty"`
	FeatureAngle    float64 `json:"feature_angle"`

	// Render settings. Nil view angles take the defaults.
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	Azimuth     *float64 `json:"azimuth,omitempty"`
	Elevation   *float64 `json:"elevation,omitempty"`
	Scalar      string  `json:"scalar"`
	Colormap    string  `json:"colormap"` // built-in name or image path
	Format      string  `json:"format"`   // webp, tga or png
	Workers     int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir       string
	OutputDir      string
	Format         string
	Colormap       string
	Scalar         string
	RenderSize     int
	Workers        int
	ComputeNormals bool
	NoShareAtoms   bool
	KeepNoData     bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Colormap != "" {
		c.Colormap = flags.Colormap
	}
	if flags.Scalar != "" {
		c.Scalar = flags.Scalar
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.ComputeNormals {
		c.ComputeNormals = true
	}
	if flags.NoShareAtoms {
		c.ShareAtomPoints = boolPtr(false)
	}
	if flags.KeepNoData {
		c.NoDataToNaN = boolPtr(false)
	}

	if c.InputDir == "" {
		c.InputDir, _ = os.Getwd()
	}
	// A single surface file resolves output paths against its directory.
	baseDir := c.InputDir
	if info, err := os.Stat(c.InputDir); err == nil && !info.IsDir() {
		baseDir = filepath.Dir(c.InputDir)
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(baseDir, "renders")
	} else if !filepath.IsAbs(c.OutputDir) && baseDir != "" && flags.OutputDir == "" {
		// Relative paths in the config file are relative to the input dir.
		c.OutputDir = filepath.Join(baseDir, c.OutputDir)
	}

	if c.ShareAtomPoints == nil {
		c.ShareAtomPoints = boolPtr(true)
	}
	if c.NoDataToNaN == nil {
		c.NoDataToNaN = boolPtr(true)
	}
	if c.FeatureAngle <= 0 {
		c.FeatureAngle = normals.DefaultFeatureAngle
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Azimuth == nil {
		c.Azimuth = floatPtr(30)
	}
	if c.Elevation == nil {
		c.Elevation = floatPtr(45)
	}
	if c.Colormap == "" {
		c.Colormap = "viridis"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// ParseOptions converts the resolved parse settings.
func (c *Config) ParseOptions() tsurf.Options {
	opts := tsurf.DefaultOptions()
	opts.ComputeNormals = c.ComputeNormals
	if c.ShareAtomPoints != nil {
		opts.ShareAtomPoints = *c.ShareAtomPoints
	}
	if c.NoDataToNaN != nil {
		opts.NoDataToNaN = *c.NoDataToNaN
	}
	if c.ComputeNormals {
		angle := c.FeatureAngle
		if angle <= 0 {
			angle = normals.DefaultFeatureAngle
		}
		opts.Normals = normals.New(normals.Options{
			FeatureAngle:         angle,
			Splitting:            true,
			Consistency:          true,
			NonManifoldTraversal: true,
		})
	}
	return opts
}

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }
