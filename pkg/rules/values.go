package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// File describes an uploaded file. Size is in bytes; size-based rules compare it in kilobytes.
type File struct {
	Name     string
	Size     int64
	MIMEType string
}

var numericStringRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsEmpty reports whether v counts as absent: nil, a whitespace-only string,
// or an empty slice, array or map. false and 0 are present values.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// toFloat converts numbers and numeric strings. Strings must look like a
// decimal number; "NaN", "Inf" and hex literals are rejected.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case string:
		s := strings.TrimSpace(x)
		if !numericStringRegex.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case json.Number:
		return toFloat(string(x))
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case int:
		return float64(x), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return toFloat(rv.Elem().Interface())
	}
	return 0, false
}

func isNumberKind(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// toString renders scalar values the way a submitted form would carry them.
func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return string(x)
	case fmt.Stringer:
		return x.String()
	}
	if isNumberKind(v) {
		f, _ := toFloat(v)
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// sizeOf returns the measurable size of v: magnitude for numbers (and numeric
// strings when numeric is set), rune count for strings, element count for
// collections and kilobytes for files.
func sizeOf(v any, numeric bool) (float64, bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		if numeric {
			if f, ok := toFloat(x); ok {
				return f, true
			}
		}
		return float64(utf8.RuneCountInString(x)), true
	case File:
		return float64(x.Size) / 1024, true
	case *File:
		if x == nil {
			return 0, false
		}
		return float64(x.Size) / 1024, true
	}

	if isNumberKind(v) {
		return toFloat(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return float64(rv.Len()), true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return sizeOf(rv.Elem().Interface(), numeric)
	}
	return 0, false
}

// toSlice returns the elements of a slice or array value.
func toSlice(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func param(params []string, i int) (string, bool) {
	if i < 0 || i >= len(params) {
		return "", false
	}
	return params[i], true
}

func floatParam(params []string, i int) (float64, bool) {
	p, ok := param(params, i)
	if !ok {
		return 0, false
	}
	return toFloat(p)
}

func intParam(params []string, i int) (int, bool) {
	p, ok := param(params, i)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(p))
	if err != nil {
		return 0, false
	}
	return n, true
}
