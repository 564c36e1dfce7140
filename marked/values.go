package marked

import (
	"fmt"
	"regexp"
	"strings"
)

// textValues flattens values one level and coerces each element to text.
// Strings, []byte, fmt.Stringer and error values give their text; numbers,
// bools and other basic kinds are formatted with fmt.Sprint. Nil, values
// that coerce to the empty string, and anything else (structs, maps, funcs)
// are dropped. When skipPatterns is set,
// *regexp.Regexp values are dropped as well instead of being rendered through
// their String method.
func textValues(values []any, skipPatterns bool) (out []string, dropped int) {
	out = make([]string, 0, len(values))
	add := func(v any) {
		if s, ok := coerceText(v, skipPatterns); ok {
			out = append(out, s)
			return
		}
		dropped++
	}

	for _, v := range values {
		switch vv := v.(type) {
		case []string:
			for _, s := range vv {
				add(s)
			}
		case []fmt.Stringer:
			for _, s := range vv {
				add(s)
			}
		case []any:
			for _, s := range vv {
				add(s)
			}
		default:
			add(v)
		}
	}
	return out, dropped
}

func coerceText(v any, skipPatterns bool) (string, bool) {
	var s string
	switch vv := v.(type) {
	case nil:
		return "", false
	case string:
		s = vv
	case []byte:
		s = string(vv)
	case *regexp.Regexp:
		if skipPatterns || vv == nil {
			return "", false
		}
		s = vv.String()
	case *Text:
		if vv == nil {
			return "", false
		}
		s = strings.Join(vv.fragments, "")
	case fmt.Stringer:
		s = vv.String()
	case error:
		s = vv.Error()
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		s = fmt.Sprint(vv)
	default:
		return "", false
	}
	if s == "" {
		return "", false
	}
	return s, true
}
