package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"tsurf-renderer/internal/batch"
	"tsurf-renderer/internal/catalog"
	"tsurf-renderer/internal/colormap"
	"tsurf-renderer/internal/config"
	"tsurf-renderer/internal/raster"
)

func main() {
	// CLI flags
	configFile := pflag.String("config", "", "Path to config.json file")
	inputDir := pflag.StringP("input", "i", "", "TSurf file or directory to scan (default: current directory)")
	outputDir := pflag.StringP("output", "o", "", "Output directory (default: <input>/renders)")
	match := pflag.String("match", "", "Render only surfaces whose path contains this text")
	testN := pflag.Int("test", 0, "Render only first N surfaces for testing")
	workers := pflag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	format := pflag.String("format", "", "Output format: webp, tga or png (default: webp)")
	cmap := pflag.String("colormap", "", "Built-in colormap name or ramp image path (default: viridis)")
	scalar := pflag.String("scalar", "", "Property to color by (default: first scalar property)")
	size := pflag.Int("size", 0, "Output image size in pixels (default: 512)")
	computeNormals := pflag.Bool("normals", false, "Compute smooth point normals before rendering")
	noShare := pflag.Bool("duplicate-atoms", false, "Give ATOM records their own point instead of sharing")
	keepNoData := pflag.Bool("keep-nodata", false, "Keep NO_DATA_VALUES sentinels instead of NaN")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	code := run(*configFile, config.Flags{
		InputDir:       *inputDir,
		OutputDir:      *outputDir,
		Format:         *format,
		Colormap:       *cmap,
		Scalar:         *scalar,
		RenderSize:     *size,
		Workers:        *workers,
		ComputeNormals: *computeNormals,
		NoShareAtoms:   *noShare,
		KeepNoData:     *keepNoData,
	}, *match, *testN)
	glog.Flush()
	os.Exit(code)
}

func run(configFile string, flags config.Flags, match string, testN int) int {
	// Load config
	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 1
		}
	}
	cfg.Resolve(flags)

	if err := batch.CheckFormat(cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	ramp, err := colormap.Resolve(cfg.Colormap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	entries, err := catalog.Scan(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning input: %v\n", err)
		return 1
	}
	entries = catalog.Filter(entries, match)

	// Limit for testing
	if testN > 0 && testN < len(entries) {
		entries = entries[:testN]
	}

	if len(entries) == 0 {
		fmt.Println("No surfaces to render.")
		return 0
	}

	mode := ""
	if match != "" {
		mode = fmt.Sprintf(" (match %q)", match)
	} else if testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", testN)
	}

	fmt.Printf("GOCAD TSurf preview renderer → %s%s\n", cfg.Format, mode)
	fmt.Printf("Surfaces: %d, Workers: %d, Colormap: %s\n", len(entries), cfg.Workers, ramp.Name)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Parse:     cfg.ParseOptions(),
		Render: raster.Options{
			Size:        cfg.RenderSize,
			Supersample: cfg.Supersample,
			Azimuth:     *cfg.Azimuth,
			Elevation:   *cfg.Elevation,
			Scalar:      cfg.Scalar,
			Colormap:    ramp,
		},
		Workers: cfg.Workers,
		Progress: func(done, total int, rate float64) {
			fmt.Printf("  Progress: %d/%d (%.0f surfaces/sec)\n", done, total, rate)
		},
	}

	results := batch.Run(batchCfg, entries)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	skipped := 0
	for _, r := range results {
		if r.Success {
			success++
			skipped += r.Stats.SkippedTriangleCount
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(entries))
	if skipped > 0 {
		fmt.Printf("Skipped triangles: %d\n", skipped)
	}

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Rel, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		glog.Warningf("render: %v", err)
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
