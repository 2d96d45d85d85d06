package stringify

import (
	"sort"
	"strconv"

	"github.com/mertcanaltin/logbus/core"
)

// appendPlain serializes a value already classified as structurally
// plain. Map keys are emitted in sorted order so output is stable.
func appendPlain(dst []byte, v any) []byte {
	switch val := v.(type) {
	case core.Fields:
		return appendPlain(dst, map[string]any(val))
	case nil:
		return append(dst, "null"...)
	case string:
		return AppendQuote(dst, val)
	case bool:
		return strconv.AppendBool(dst, val)
	case int:
		return strconv.AppendInt(dst, int64(val), 10)
	case int8:
		return strconv.AppendInt(dst, int64(val), 10)
	case int16:
		return strconv.AppendInt(dst, int64(val), 10)
	case int32:
		return strconv.AppendInt(dst, int64(val), 10)
	case int64:
		return strconv.AppendInt(dst, val, 10)
	case uint:
		return strconv.AppendUint(dst, uint64(val), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(val), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(dst, val, 10)
	case float32:
		return strconv.AppendFloat(dst, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, val, 'f', -1, 64)
	case []any:
		dst = append(dst, '[')
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendPlain(dst, elem)
		}
		return append(dst, ']')
	case []string:
		dst = append(dst, '[')
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendQuote(dst, elem)
		}
		return append(dst, ']')
	case []int:
		dst = append(dst, '[')
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, int64(elem), 10)
		}
		return append(dst, ']')
	case []int64:
		dst = append(dst, '[')
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, elem, 10)
		}
		return append(dst, ']')
	case []float64:
		dst = append(dst, '[')
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendFloat(dst, elem, 'f', -1, 64)
		}
		return append(dst, ']')
	case []bool:
		dst = append(dst, '[')
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendBool(dst, elem)
		}
		return append(dst, ']')
	case map[string]any:
		keys := sortedKeysAny(val)
		dst = append(dst, '{')
		for i, k := range keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendQuote(dst, k)
			dst = append(dst, ':')
			dst = appendPlain(dst, val[k])
		}
		return append(dst, '}')
	case map[string]string:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		dst = append(dst, '{')
		for i, k := range keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendQuote(dst, k)
			dst = append(dst, ':')
			dst = AppendQuote(dst, val[k])
		}
		return append(dst, '}')
	default:
		// classify never routes other types here
		return append(dst, "null"...)
	}
}

func sortedKeysAny(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// AppendQuote appends s as a quoted, JSON-escaped string. Safe spans
// are copied whole; only control characters, quotes, and backslashes
// trigger the escape arms.
func AppendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = AppendEscaped(dst, s)
	return append(dst, '"')
}

// AppendEscaped appends the JSON-escaped form of s without the
// surrounding quotes.
func AppendEscaped(dst []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			dst = append(dst, s[start:i]...)
		}
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexChars[c>>4], hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		dst = append(dst, s[start:]...)
	}
	return dst
}
