package tsurf

import (
	"math"
	"strconv"
	"strings"
)

// classHeader is the unit/kind metadata of one PROPERTY_CLASS_HEADER block.
type classHeader struct {
	unit string
	kind string
}

// registry accumulates the property schema declared in the header section.
// Declarations may arrive in any order and may repeat; buffers read the
// registry only when they are materialized.
type registry struct {
	names         []string
	hasProperties bool // a PROPERTIES line was seen; PROPERTY_CLASSES is then ignored
	sizes         []int
	noData        []float64
	headers       map[string]classHeader
}

func newRegistry() *registry {
	return &registry{headers: make(map[string]classHeader)}
}

// declareProperties replaces the whole name list.
func (r *registry) declareProperties(names []string) {
	r.names = append([]string(nil), names...)
	r.hasProperties = true
}

// declarePropertyClasses is a fallback used only until PROPERTIES appears.
func (r *registry) declarePropertyClasses(names []string) {
	if r.hasProperties {
		return
	}
	r.names = append([]string(nil), names...)
}

func (r *registry) declareNoData(fields []string) {
	r.noData = make([]float64, len(fields))
	for i, f := range fields {
		r.noData[i] = parseFloat(f)
	}
}

// declareSizes stores per-property component counts. Anything that is not a
// positive integer counts as 1.
func (r *registry) declareSizes(fields []string) {
	r.sizes = make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			n = 1
		}
		r.sizes[i] = n
	}
}

func (r *registry) sizeOf(i int) int {
	if i < len(r.sizes) {
		return r.sizes[i]
	}
	return 1
}

// declareClassHeader records unit and kind for a named property. body holds
// the text between the braces, possibly spanning several lines.
func (r *registry) declareClassHeader(name, body string) {
	h := r.headers[name]
	for _, line := range strings.Split(body, "\n") {
		for key, val := range headerPairs(line) {
			switch key {
			case "unit":
				h.unit = val
			case "kind":
				h.kind = val
			}
		}
	}
	r.headers[name] = h
}

// headerPairs splits "unit: m  kind: Depth" style text into lower-cased keys
// and their values. A token containing ':' starts a new key.
func headerPairs(line string) map[string]string {
	pairs := make(map[string]string)
	var key string
	var val []string
	flush := func() {
		if key != "" {
			pairs[key] = strings.Join(val, " ")
		}
	}
	for _, tok := range strings.Fields(line) {
		if i := strings.IndexByte(tok, ':'); i >= 0 {
			flush()
			key = strings.ToLower(strings.TrimSpace(tok[:i]))
			val = val[:0]
			if rest := tok[i+1:]; rest != "" {
				val = append(val, rest)
			}
			continue
		}
		if key != "" {
			val = append(val, tok)
		}
	}
	flush()
	return pairs
}

// sentinel resolves the no-data value for property i of n. A list matching
// the property count applies positionally, otherwise its first entry applies
// to every property. NaN sentinels are reported as absent.
func (r *registry) sentinel(i, n int) (float64, bool) {
	if len(r.noData) == 0 {
		return 0, false
	}
	v := r.noData[0]
	if len(r.noData) == n {
		v = r.noData[i]
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// parseFloat converts a numeric token; malformed or infinite values become NaN.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
