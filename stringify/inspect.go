package stringify

import (
	"fmt"
	"reflect"

	"github.com/segmentio/encoding/json"
)

// appendRich serializes values the structural walk rejected: custom
// structs, typed maps and slices, pointers, interfaces. It marshals
// through segmentio/encoding; kinds JSON fundamentally cannot carry
// are formatted via fmt up front rather than round-tripped through a
// marshal failure.
func appendRich(dst []byte, v any) []byte {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Uintptr,
		reflect.Complex64, reflect.Complex128:
		return AppendQuote(dst, fmt.Sprintf("%v", v))
	}
	if err, ok := v.(error); ok {
		return AppendQuote(dst, err.Error())
	}
	if s, ok := v.(fmt.Stringer); ok {
		return AppendQuote(dst, s.String())
	}
	b, err := json.Marshal(v)
	if err != nil {
		// A cycle through a custom type lands here; fmt would chase
		// the same cycle, so report instead of formatting the value.
		return AppendQuote(dst, "[unserializable: "+err.Error()+"]")
	}
	return append(dst, b...)
}
