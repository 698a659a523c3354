package rules

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// In requires the value, or every element of a list value, to be one of params.
func In(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	if items, ok := toSlice(value); ok {
		for _, item := range items {
			if !slices.Contains(params, toString(item)) {
				return false
			}
		}
		return true
	}
	return slices.Contains(params, toString(value))
}

// NotIn rejects the value, or any element of a list value, found in params.
func NotIn(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	if items, ok := toSlice(value); ok {
		for _, item := range items {
			if slices.Contains(params, toString(item)) {
				return false
			}
		}
		return true
	}
	return !slices.Contains(params, toString(value))
}

// Boolean accepts true, false, 1, 0 and their string forms.
func Boolean(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	if _, ok := value.(bool); ok {
		return true
	}
	switch toString(value) {
	case "1", "0", "true", "false":
		return true
	}
	return false
}

// Array requires a slice, array or map. With params, map keys must all be listed.
func Array(value any, params []string, _ string, _ Context) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Map:
		if len(params) == 0 {
			return true
		}
		for _, key := range rv.MapKeys() {
			if !slices.Contains(params, toString(key.Interface())) {
				return false
			}
		}
		return true
	}
	return false
}

// Distinct requires a list without duplicates. "distinct:ignore_case" compares
// case-insensitively; "distinct:strict" also distinguishes types.
func Distinct(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	items, ok := toSlice(value)
	if !ok {
		return true
	}

	strict := slices.Contains(params, "strict")
	ignoreCase := slices.Contains(params, "ignore_case")

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := toString(item)
		if ignoreCase {
			key = strings.ToLower(key)
		}
		if strict {
			key = fmt.Sprintf("%T", item) + "\x00" + key
		}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
