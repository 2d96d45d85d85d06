package logger

import (
	"errors"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/mertcanaltin/logbus/core"
)

// circularMarker replaces a cause that points back into its own
// ancestor chain.
const circularMarker = "[Circular]"

// maxCauseDepth caps the unwrap chain. Value-typed errors have no
// stable identity, so a pathological self-producing Unwrap is cut off
// by depth instead of by the identity check.
const maxCauseDepth = 32

// SerializeError captures err as plain fields: name (concrete type),
// message, stack, optional code, and the cause chain via Unwrap.
// Extra exported struct fields are copied in only when their key is
// not already set — reserved keys are never overwritten, and a
// legitimate zero value set earlier stays.
func SerializeError(err error) core.Fields {
	return serializeError(err, nil, 0)
}

func serializeError(err error, path []uintptr, depth int) core.Fields {
	out := make(core.Fields, 6)
	out["name"] = reflect.TypeOf(err).String()
	out["message"] = err.Error()
	if depth == 0 {
		out["stack"] = captureStack(4)
	}
	if c, ok := err.(interface{ Code() string }); ok {
		out["code"] = c.Code()
	}

	if id, ok := identity(err); ok {
		path = append(path, id)
	}
	if cause := errors.Unwrap(err); cause != nil {
		switch {
		case depth >= maxCauseDepth:
			out["cause"] = circularMarker
		case revisits(path, cause):
			out["cause"] = circularMarker
		default:
			out["cause"] = serializeError(cause, path, depth+1)
		}
	}

	copyExtras(out, err)
	return out
}

// identity returns a comparable identity for reference-typed errors.
func identity(err error) (uintptr, bool) {
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.Pointer(), true
	}
	return 0, false
}

func revisits(path []uintptr, err error) bool {
	id, ok := identity(err)
	if !ok {
		return false
	}
	for _, p := range path {
		if p == id {
			return true
		}
	}
	return false
}

// copyExtras copies the error's exported struct fields into out,
// skipping keys that are already set.
func copyExtras(out core.Fields, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		if _, exists := out[f.Name]; exists {
			continue
		}
		out[f.Name] = v.Field(i).Interface()
	}
}

func captureStack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	for {
		f, more := frames.Next()
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.Function)
		b.WriteString("\n\t")
		b.WriteString(f.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.Line))
		if !more {
			break
		}
	}
	return b.String()
}
