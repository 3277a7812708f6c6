package tsurf

// assembler collects triangles whose three ids resolve to distinct vertices.
type assembler struct {
	tris    []int32
	skipped int
}

func (a *assembler) add(s *store, ids [3]int) bool {
	var t [3]int
	for k, id := range ids {
		idx, ok := s.lookup(id)
		if !ok {
			a.skipped++
			return false
		}
		t[k] = idx
	}
	if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
		a.skipped++
		return false
	}
	a.tris = append(a.tris, int32(t[0]), int32(t[1]), int32(t[2]))
	return true
}

func (a *assembler) count() int { return len(a.tris) / 3 }
