package batch

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"tsurf-renderer/internal/catalog"
	"tsurf-renderer/internal/postprocess"
	"tsurf-renderer/internal/raster"
	"tsurf-renderer/internal/tsurf"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string
	Parse     tsurf.Options
	Render    raster.Options
	Workers   int

	// Progress, if set, receives a line every couple of seconds.
	Progress func(done, total int, rate float64)
}

// Result holds the outcome of processing one surface.
type Result struct {
	Name       string
	Rel        string
	Image      string // output path relative to OutputDir, forward slashes
	Success    bool
	Error      string
	Stats      tsurf.Stats
	Properties []tsurf.PropertyInfo
}

// Run processes all entries using a worker pool. Results keep input order.
func Run(cfg Config, entries []catalog.Entry) []Result {
	total := len(entries)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 && cfg.Progress != nil {
					elapsed := time.Since(start).Seconds()
					cfg.Progress(int(p), total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	work := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = processEntry(cfg, entries[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range entries {
		work <- i
	}
	close(work)

	wg.Wait()
	close(done)

	return results
}

func processEntry(cfg Config, entry catalog.Entry) Result {
	res := Result{Name: entry.Name, Rel: entry.Rel}
	fail := func(err error) Result {
		glog.Warningf("batch: %s: %v", entry.Rel, err)
		res.Error = err.Error()
		return res
	}

	parsed, err := tsurf.ParseFile(entry.Path, cfg.Parse)
	if err != nil {
		return fail(err)
	}
	res.Stats = parsed.Stats
	res.Properties = parsed.Properties
	if parsed.Stats.SkippedTriangleCount > 0 {
		glog.V(1).Infof("batch: %s: %d triangles skipped", entry.Rel, parsed.Stats.SkippedTriangleCount)
	}

	img := raster.Render(parsed.Mesh, cfg.Render)

	// Post-processing: supersample downsample
	if cfg.Render.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Render.Supersample)
	}

	ext := "." + strings.ToLower(cfg.Format)
	rel := strings.TrimSuffix(entry.Rel, path.Ext(entry.Rel)) + ext
	outPath := filepath.Join(cfg.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail(err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	if err := Encode(f, img, cfg.Format); err != nil {
		return fail(fmt.Errorf("%s: %w", outPath, err))
	}

	res.Image = rel
	res.Success = true
	return res
}
