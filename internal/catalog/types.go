package catalog

// Entry is one surface file found under the input directory.
type Entry struct {
	Path string // absolute or input-relative path on disk
	Rel  string // path relative to the input directory, forward slashes
	Name string // file stem, e.g. "horizon_top"
}
