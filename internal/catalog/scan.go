package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions recognized as ASCII TSurf files.
var Extensions = []string{".ts", ".tsurf"}

func isSurface(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan walks dir recursively and returns every TSurf file, sorted by
// relative path. A single file path is returned as a one-entry catalog.
func Scan(dir string) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return []Entry{newEntry(dir, filepath.Base(dir))}, nil
	}

	var entries []Entry
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSurface(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		entries = append(entries, newEntry(path, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: scan %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Rel < entries[j].Rel })
	return entries, nil
}

func newEntry(path, rel string) Entry {
	base := filepath.Base(path)
	return Entry{
		Path: path,
		Rel:  filepath.ToSlash(rel),
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// Filter keeps the entries whose name or relative path contains substr,
// case-insensitively.
func Filter(entries []Entry, substr string) []Entry {
	if substr == "" {
		return entries
	}
	substr = strings.ToLower(substr)
	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Rel), substr) {
			out = append(out, e)
		}
	}
	return out
}
