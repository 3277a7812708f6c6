package tsurf

import (
	"fmt"

	"github.com/golang/glog"

	"tsurf-renderer/internal/mesh"
	"tsurf-renderer/internal/normals"
)

// build runs once after the scan and composes the result.
func (p *parser) build() (*Result, error) {
	s := p.store
	if s.vertexCount() == 0 {
		return nil, ErrNoVertices
	}
	if p.tris.count() == 0 {
		return nil, ErrNoTriangles
	}

	// Declared properties with no value-bearing vertex still get (all-NaN) arrays.
	s.ensureSchema(0)
	for _, b := range s.props {
		b.backfill(s.vertexCount())
	}
	if p.opts.NoDataToNaN {
		normalizeNoData(s.props, p.reg)
	}

	m := &mesh.Mesh{
		Points:    s.positions,
		Triangles: p.tris.tris,
	}
	props := make([]PropertyInfo, 0, len(s.props))
	matched := make(map[string]bool)
	for i, b := range s.props {
		h, ok := p.reg.headers[b.name]
		if ok {
			matched[b.name] = true
		}
		m.PointData = append(m.PointData, &mesh.DataArray{
			Name:       b.name,
			Components: b.size,
			Unit:       h.unit,
			Kind:       h.kind,
			Values:     b.values,
		})
		if m.ActiveScalars == "" && b.size == 1 {
			m.ActiveScalars = b.name
		}

		info := PropertyInfo{Name: b.name, Unit: h.unit, Kind: h.kind, Size: b.size}
		if v, ok := p.reg.sentinel(i, len(s.props)); ok {
			info.NoData = &v
		}
		props = append(props, info)
	}
	for name := range p.reg.headers {
		if !matched[name] {
			glog.V(1).Infof("tsurf: class header %q matches no property, dropped", name)
		}
	}

	if p.opts.ComputeNormals {
		nc := p.opts.Normals
		if nc == nil {
			nc = normals.Default()
		}
		nm, err := nc.Compute(m)
		if err != nil {
			return nil, fmt.Errorf("tsurf: compute normals: %w", err)
		}
		m = nm
	}

	return &Result{
		Mesh:       m,
		Properties: props,
		Stats: Stats{
			VertexCount:          s.vertexCount(),
			TriangleCount:        p.tris.count(),
			SkippedTriangleCount: p.tris.skipped,
		},
	}, nil
}
