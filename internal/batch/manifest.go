package batch

import (
	"encoding/json"
	"os"

	"tsurf-renderer/internal/tsurf"
)

// ManifestEntry represents one surface in the output manifest.
type ManifestEntry struct {
	Name       string               `json:"name"`
	Source     string               `json:"source"`
	Image      string               `json:"image,omitempty"`
	Error      string               `json:"error,omitempty"`
	Stats      *tsurf.Stats         `json:"stats,omitempty"`
	Properties []tsurf.PropertyInfo `json:"properties,omitempty"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Name:       r.Name,
			Source:     r.Rel,
			Error:      r.Error,
			Properties: r.Properties,
		}
		if r.Success {
			e.Image = r.Image
			stats := r.Stats
			e.Stats = &stats
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
