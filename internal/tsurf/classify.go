package tsurf

import "strings"

// Kind tags a classified line.
type Kind int

const (
	KindOther Kind = iota
	KindVertex
	KindPropertyVertex
	KindAtom
	KindTriangle
	KindProperties
	KindPropertyClasses
	KindNoData
	KindESizes
	KindClassHeader
	KindEnd
)

var kindNames = [...]string{
	KindOther:           "OTHER",
	KindVertex:          "VERTEX",
	KindPropertyVertex:  "PROPERTY_VERTEX",
	KindAtom:            "ATOM",
	KindTriangle:        "TRIANGLE",
	KindProperties:      "PROPERTIES_DECL",
	KindPropertyClasses: "PROPERTY_CLASSES_DECL",
	KindNoData:          "NO_DATA_DECL",
	KindESizes:          "ESIZES_DECL",
	KindClassHeader:     "PROPERTY_CLASS_HEADER",
	KindEnd:             "END",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "OTHER"
	}
	return kindNames[k]
}

var keywords = map[string]Kind{
	"VRTX":                  KindVertex,
	"PVRTX":                 KindPropertyVertex,
	"ATOM":                  KindAtom,
	"PATOM":                 KindAtom,
	"TRGL":                  KindTriangle,
	"PROPERTIES":            KindProperties,
	"PROPERTY_CLASSES":      KindPropertyClasses,
	"NO_DATA_VALUES":        KindNoData,
	"ESIZES":                KindESizes,
	"PROPERTY_CLASS_HEADER": KindClassHeader,
	"END":                   KindEnd,
}

// Record is one classified line. Fields excludes the keyword.
type Record struct {
	Kind   Kind
	Fields []string
}

// Classify tags a single line. Blank lines and # comments return ok=false.
// The keyword must be a whole token, so END_ORIGINAL_COORDINATE_SYSTEM is
// KindOther rather than KindEnd.
func Classify(line string) (rec Record, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return Record{}, false
	}
	fields := strings.Fields(line)
	kind, known := keywords[strings.ToUpper(fields[0])]
	if !known {
		return Record{Kind: KindOther, Fields: fields}, true
	}
	return Record{Kind: kind, Fields: fields[1:]}, true
}
