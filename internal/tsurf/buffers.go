package tsurf

import (
	"fmt"
	"math"
)

// propertyBuffer is the flat value store of one property. Vertex v occupies
// values[v*size : (v+1)*size]; slots never written hold NaN.
type propertyBuffer struct {
	name   string
	size   int
	values []float64
}

func newPropertyBuffer(name string, size, vertices int) *propertyBuffer {
	b := &propertyBuffer{name: name, size: size}
	b.backfill(vertices)
	return b
}

// backfill grows the buffer with NaN until it covers n vertices.
func (b *propertyBuffer) backfill(n int) {
	for len(b.values) < n*b.size {
		b.values = append(b.values, math.NaN())
	}
}

func (b *propertyBuffer) set(v, c int, x float64) {
	b.backfill(v + 1)
	b.values[v*b.size+c] = x
}

func (b *propertyBuffer) tuple(v int) []float64 {
	b.backfill(v + 1)
	return b.values[v*b.size : (v+1)*b.size]
}

// width returns the number of value columns the materialized schema consumes.
func (s *store) width() int {
	w := 0
	for _, b := range s.props {
		w += b.size
	}
	return w
}

// ensureSchema materializes the property buffers once. Declared names take
// their ESIZES component counts; without declarations, n single-component
// properties prop_1..prop_n are created. It is a no-op once materialized, and
// also when there is nothing to materialize yet.
func (s *store) ensureSchema(n int) {
	if s.materialized {
		return
	}
	if len(s.reg.names) > 0 {
		for i, name := range s.reg.names {
			s.addProperty(name, s.reg.sizeOf(i))
		}
	} else {
		if n == 0 {
			return
		}
		s.extend(n)
	}
	s.materialized = true
}

// extend appends n auto-named single-component properties, backfilled with
// NaN for every vertex seen so far.
func (s *store) extend(n int) {
	for i := 0; i < n; i++ {
		k := len(s.props) + 1
		name := fmt.Sprintf("prop_%d", k)
		for s.hasProperty(name) {
			k++
			name = fmt.Sprintf("prop_%d", k)
		}
		s.addProperty(name, 1)
	}
}

func (s *store) addProperty(name string, size int) {
	if s.hasProperty(name) {
		base := name
		for k := 2; s.hasProperty(name); k++ {
			name = fmt.Sprintf("%s_%d", base, k)
		}
	}
	s.props = append(s.props, newPropertyBuffer(name, size, s.vertexCount()))
}

func (s *store) hasProperty(name string) bool {
	for _, b := range s.props {
		if b.name == name {
			return true
		}
	}
	return false
}

// setValues writes the trailing value columns of a vertex record. Columns are
// consumed property by property, each taking its component count.
func (s *store) setValues(v int, raw []float64) {
	s.ensureSchema(len(raw))
	if w := s.width(); len(raw) > w {
		s.extend(len(raw) - w)
	}
	off := 0
	for _, b := range s.props {
		for c := 0; c < b.size; c++ {
			if off < len(raw) {
				b.set(v, c, raw[off])
			}
			off++
		}
	}
}
