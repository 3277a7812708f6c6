package tsurf

import (
	"errors"

	"tsurf-renderer/internal/mesh"
)

// Structural failures. Both wrap ErrStructural so callers can test for the class.
var (
	ErrStructural  = errors.New("tsurf: structural error")
	ErrNoVertices  = structural("no vertices found")
	ErrNoTriangles = structural("no valid triangles found")
)

type structuralError struct{ msg string }

func structural(msg string) error { return &structuralError{msg: msg} }

func (e *structuralError) Error() string { return "tsurf: " + e.msg }

func (e *structuralError) Is(target error) bool { return target == ErrStructural }

// NormalComputer replaces a mesh with a copy carrying point normals.
type NormalComputer interface {
	Compute(m *mesh.Mesh) (*mesh.Mesh, error)
}

// Options controls a parse.
type Options struct {
	ComputeNormals  bool
	ShareAtomPoints bool // ATOM aliases share the referenced vertex
	NoDataToNaN     bool // replace NO_DATA_VALUES sentinels with NaN

	// Normals is used when ComputeNormals is set. Nil means normals.Default().
	Normals NormalComputer
}

// DefaultOptions returns the documented defaults: no normals, shared atoms,
// no-data normalization on.
func DefaultOptions() Options {
	return Options{ShareAtomPoints: true, NoDataToNaN: true}
}

// PropertyInfo describes one point-data array of the result.
type PropertyInfo struct {
	Name   string   `json:"name"`
	Unit   string   `json:"unit,omitempty"`
	Kind   string   `json:"kind,omitempty"`
	Size   int      `json:"size"`
	NoData *float64 `json:"no_data,omitempty"`
}

// Stats counts what the scan produced.
type Stats struct {
	VertexCount          int `json:"vertex_count"`
	TriangleCount        int `json:"triangle_count"`
	SkippedTriangleCount int `json:"skipped_triangle_count"`
}

// Result is the output of one parse.
type Result struct {
	Mesh       *mesh.Mesh
	Properties []PropertyInfo
	Stats      Stats
}
