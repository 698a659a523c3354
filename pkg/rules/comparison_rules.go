package rules

import "reflect"

// ConfirmationSuffix names the companion field checked by the confirmed rule.
const ConfirmationSuffix = "_confirmation"

// Confirmed requires the value to strictly equal the field's "_confirmation" companion.
func Confirmed(value any, _ []string, field string, ctx Context) bool {
	if IsEmpty(value) {
		return true
	}
	other, _ := ctx.Lookup(field + ConfirmationSuffix)
	return strictEqual(value, other)
}

// Same requires the value to strictly equal the field named by params[0].
func Same(value any, params []string, _ string, ctx Context) bool {
	if IsEmpty(value) {
		return true
	}
	name, ok := param(params, 0)
	if !ok {
		return false
	}
	other, _ := ctx.Lookup(name)
	return strictEqual(value, other)
}

// Different requires the value to differ from the field named by params[0].
func Different(value any, params []string, _ string, ctx Context) bool {
	if IsEmpty(value) {
		return true
	}
	name, ok := param(params, 0)
	if !ok {
		return false
	}
	other, _ := ctx.Lookup(name)
	return !strictEqual(value, other)
}

// strictEqual compares type and value; "1" and 1 are different.
func strictEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
