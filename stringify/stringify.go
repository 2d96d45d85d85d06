package stringify

import (
	"reflect"

	"github.com/mertcanaltin/logbus/core"
)

// maxDepth bounds the plainness walk; anything nested deeper goes to
// the rich fallback.
const maxDepth = 32

type kind int

const (
	kindPlain kind = iota
	kindCyclic
	kindRich
)

// Append appends the JSON-compatible textual form of v to dst.
//
// Classification is explicit and structural: values composed
// transitively of primitives and plain containers take the inlined
// fast path; everything else defers to the rich fallback encoder.
// Failure of the fast path is never detected by catching a panic or
// an error — the walk decides up front.
func Append(dst []byte, v any) []byte {
	switch classify(v, nil, 0) {
	case kindPlain:
		return appendPlain(dst, v)
	case kindCyclic:
		return append(dst, `"[Circular]"`...)
	default:
		return appendRich(dst, v)
	}
}

// String returns the textual form of v.
func String(v any) string {
	return string(Append(nil, v))
}

// classify walks v and reports whether it is structurally plain data.
// seen tracks container identities on the current path so cyclic plain
// containers classify as kindCyclic instead of hanging the walk.
func classify(v any, seen map[uintptr]bool, depth int) kind {
	if depth > maxDepth {
		return kindRich
	}
	switch val := v.(type) {
	case core.Fields:
		return classify(map[string]any(val), seen, depth)
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return kindPlain
	case []string, []int, []int64, []float64, []bool, map[string]string:
		return kindPlain
	case []any:
		if len(val) == 0 {
			return kindPlain
		}
		p := reflect.ValueOf(val).Pointer()
		if seen[p] {
			return kindCyclic
		}
		if seen == nil {
			seen = make(map[uintptr]bool, 4)
		}
		seen[p] = true
		worst := kindPlain
		for _, elem := range val {
			if k := classify(elem, seen, depth+1); k > worst {
				worst = k
			}
		}
		delete(seen, p)
		return worst
	case map[string]any:
		if len(val) == 0 {
			return kindPlain
		}
		p := reflect.ValueOf(val).Pointer()
		if seen[p] {
			return kindCyclic
		}
		if seen == nil {
			seen = make(map[uintptr]bool, 4)
		}
		seen[p] = true
		worst := kindPlain
		for _, elem := range val {
			if k := classify(elem, seen, depth+1); k > worst {
				worst = k
			}
		}
		delete(seen, p)
		return worst
	default:
		return kindRich
	}
}
