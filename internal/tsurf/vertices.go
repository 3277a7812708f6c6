package tsurf

// store holds vertex positions, the external-id alias table and the property
// buffers. Indices are dense, assigned in order of first appearance and never
// reused.
type store struct {
	reg *registry

	positions []float64
	ids       map[int]int

	props        []*propertyBuffer
	materialized bool
}

func newStore(reg *registry) *store {
	return &store{reg: reg, ids: make(map[int]int)}
}

func (s *store) vertexCount() int { return len(s.positions) / 3 }

// addVertex appends a position bound to id. A repeated id rebinds to the new
// vertex; the old one stays in place for triangles already referencing it.
func (s *store) addVertex(id int, x, y, z float64) int {
	idx := s.vertexCount()
	s.positions = append(s.positions, x, y, z)
	for _, b := range s.props {
		b.backfill(idx + 1)
	}
	s.ids[id] = idx
	return idx
}

func (s *store) lookup(id int) (int, bool) {
	idx, ok := s.ids[id]
	return idx, ok
}

// resolveAtom binds newID to the vertex of refID. With share, both ids map
// to one index. Otherwise the vertex is duplicated, property values copied as
// they are now. It reports false when refID is unknown; newID then stays
// unresolved.
func (s *store) resolveAtom(newID, refID int, share bool) bool {
	ref, ok := s.ids[refID]
	if !ok {
		return false
	}
	if share {
		s.ids[newID] = ref
		return true
	}
	x, y, z := s.positions[3*ref], s.positions[3*ref+1], s.positions[3*ref+2]
	idx := s.addVertex(newID, x, y, z)
	for _, b := range s.props {
		copy(b.tuple(idx), b.tuple(ref))
	}
	return true
}
