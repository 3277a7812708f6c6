package tsurf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// ParseFile reads a GOCAD TSurf (.ts) file and decodes it with Parse.
func ParseFile(path string, opts Options) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tsurf: read %s: %w", path, err)
	}
	res, err := Parse(string(raw), opts)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, path)
	}
	return res, nil
}

// Parse decodes ASCII TSurf text into a triangle mesh with per-vertex
// properties. Malformed records are skipped; only an input without vertices
// or without any valid triangle is an error (see ErrStructural).
func Parse(text string, opts Options) (*Result, error) {
	p := newParser(opts)
	p.scan(strings.Split(text, "\n"))
	return p.build()
}

type parser struct {
	opts  Options
	reg   *registry
	store *store
	tris  assembler
	line  int
}

func newParser(opts Options) *parser {
	reg := newRegistry()
	return &parser{opts: opts, reg: reg, store: newStore(reg)}
}

func (p *parser) scan(lines []string) {
	for p.line = 0; p.line < len(lines); p.line++ {
		rec, ok := Classify(lines[p.line])
		if !ok {
			continue
		}
		switch rec.Kind {
		case KindVertex, KindPropertyVertex:
			p.vertex(rec.Fields)
		case KindAtom:
			p.atom(rec.Fields)
		case KindTriangle:
			p.triangle(rec.Fields)
		case KindProperties:
			p.reg.declareProperties(rec.Fields)
		case KindPropertyClasses:
			p.reg.declarePropertyClasses(rec.Fields)
		case KindNoData:
			p.reg.declareNoData(rec.Fields)
		case KindESizes:
			p.reg.declareSizes(rec.Fields)
		case KindClassHeader:
			p.classHeader(rec.Fields, lines)
		case KindEnd:
			return
		}
	}
}

func (p *parser) vertex(f []string) {
	if len(f) < 4 {
		glog.V(2).Infof("tsurf: line %d: short vertex record skipped", p.line+1)
		return
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		glog.V(2).Infof("tsurf: line %d: bad vertex id %q", p.line+1, f[0])
		return
	}
	idx := p.store.addVertex(id, parseFloat(f[1]), parseFloat(f[2]), parseFloat(f[3]))
	if len(f) > 4 {
		raw := make([]float64, len(f)-4)
		for i, s := range f[4:] {
			raw[i] = parseFloat(s)
		}
		p.store.setValues(idx, raw)
	}
}

func (p *parser) atom(f []string) {
	if len(f) < 2 {
		return
	}
	newID, err1 := strconv.Atoi(f[0])
	refID, err2 := strconv.Atoi(f[1])
	if err1 != nil || err2 != nil {
		glog.V(2).Infof("tsurf: line %d: bad atom record", p.line+1)
		return
	}
	if !p.store.resolveAtom(newID, refID, p.opts.ShareAtomPoints) {
		glog.V(2).Infof("tsurf: line %d: atom %d references unknown vertex %d", p.line+1, newID, refID)
	}
}

func (p *parser) triangle(f []string) {
	var ids [3]int
	if len(f) < 3 {
		p.tris.skipped++
		return
	}
	for k := range ids {
		id, err := strconv.Atoi(f[k])
		if err != nil {
			p.tris.skipped++
			return
		}
		ids[k] = id
	}
	p.tris.add(p.store, ids)
}

// classHeader reads a PROPERTY_CLASS_HEADER block. The body runs from the
// opening brace to the first closing brace, on this line or a later one.
func (p *parser) classHeader(f []string, lines []string) {
	if len(f) == 0 {
		return
	}
	name := strings.TrimSuffix(f[0], "{")
	rest := strings.Join(f[1:], " ")
	rest = strings.TrimPrefix(strings.TrimSpace(rest), "{")

	var body strings.Builder
	for {
		if i := strings.IndexByte(rest, '}'); i >= 0 {
			body.WriteString(rest[:i])
			break
		}
		body.WriteString(rest)
		body.WriteByte('\n')
		if p.line+1 >= len(lines) {
			break
		}
		p.line++
		rest = lines[p.line]
	}
	p.reg.declareClassHeader(name, body.String())
}
