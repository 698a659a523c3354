package rules

import "slices"

var (
	acceptedValues = []string{"yes", "on", "1", "true"}
	declinedValues = []string{"no", "off", "0", "false"}
)

// Required fails on nil, whitespace-only strings and empty collections.
// false and 0 count as present.
func Required(value any, _ []string, _ string, _ Context) bool {
	return !IsEmpty(value)
}

// Nullable always passes. The evaluator reads it as "skip remaining rules when empty".
func Nullable(_ any, _ []string, _ string, _ Context) bool {
	return true
}

// Marker is the evaluator for rules that only steer the evaluator, such as bail and sometimes.
func Marker(_ any, _ []string, _ string, _ Context) bool {
	return true
}

// Filled fails only when the field is present in the record but empty.
func Filled(value any, _ []string, field string, ctx Context) bool {
	if _, ok := ctx.Lookup(field); !ok {
		return true
	}
	return !IsEmpty(value)
}

// Present requires the field key to exist in the record, empty or not.
func Present(_ any, _ []string, field string, ctx Context) bool {
	_, ok := ctx.Lookup(field)
	return ok
}

// Accepted requires "yes", "on", "1", 1 or true.
func Accepted(value any, _ []string, _ string, _ Context) bool {
	return slices.Contains(acceptedValues, toString(value))
}

// Declined requires "no", "off", "0", 0 or false.
func Declined(value any, _ []string, _ string, _ Context) bool {
	return slices.Contains(declinedValues, toString(value))
}

// AcceptedIf applies Accepted when the field named by params[0] equals one of params[1:].
func AcceptedIf(value any, params []string, field string, ctx Context) bool {
	if !otherEquals(params, ctx) {
		return true
	}
	return Accepted(value, nil, field, ctx)
}

// DeclinedIf applies Declined when the field named by params[0] equals one of params[1:].
func DeclinedIf(value any, params []string, field string, ctx Context) bool {
	if !otherEquals(params, ctx) {
		return true
	}
	return Declined(value, nil, field, ctx)
}

// RequiredIf applies Required when the field named by params[0] equals one of params[1:].
func RequiredIf(value any, params []string, field string, ctx Context) bool {
	if !otherEquals(params, ctx) {
		return true
	}
	return Required(value, nil, field, ctx)
}

// RequiredUnless applies Required unless the field named by params[0] equals one of params[1:].
func RequiredUnless(value any, params []string, field string, ctx Context) bool {
	if len(params) == 0 || otherEquals(params, ctx) {
		return true
	}
	return Required(value, nil, field, ctx)
}

// RequiredWith applies Required when any of the named fields is filled.
func RequiredWith(value any, params []string, field string, ctx Context) bool {
	if countFilled(params, ctx) == 0 {
		return true
	}
	return Required(value, nil, field, ctx)
}

// RequiredWithAll applies Required when all of the named fields are filled.
func RequiredWithAll(value any, params []string, field string, ctx Context) bool {
	if len(params) == 0 || countFilled(params, ctx) < len(params) {
		return true
	}
	return Required(value, nil, field, ctx)
}

// RequiredWithout applies Required when any of the named fields is empty.
func RequiredWithout(value any, params []string, field string, ctx Context) bool {
	if countFilled(params, ctx) == len(params) {
		return true
	}
	return Required(value, nil, field, ctx)
}

// RequiredWithoutAll applies Required when all of the named fields are empty.
func RequiredWithoutAll(value any, params []string, field string, ctx Context) bool {
	if len(params) == 0 || countFilled(params, ctx) > 0 {
		return true
	}
	return Required(value, nil, field, ctx)
}

// Prohibited requires the field to be empty.
func Prohibited(value any, _ []string, _ string, _ Context) bool {
	return IsEmpty(value)
}

// ProhibitedIf requires the field to be empty when the field named by params[0] equals one of params[1:].
func ProhibitedIf(value any, params []string, _ string, ctx Context) bool {
	if !otherEquals(params, ctx) {
		return true
	}
	return IsEmpty(value)
}

// ProhibitedUnless requires the field to be empty unless the field named by params[0] equals one of params[1:].
func ProhibitedUnless(value any, params []string, _ string, ctx Context) bool {
	if len(params) == 0 || otherEquals(params, ctx) {
		return true
	}
	return IsEmpty(value)
}

// otherEquals compares the string form of the field named by params[0] to params[1:].
func otherEquals(params []string, ctx Context) bool {
	if len(params) < 2 {
		return false
	}
	other, _ := ctx.Lookup(params[0])
	return slices.Contains(params[1:], toString(other))
}

func countFilled(fields []string, ctx Context) int {
	n := 0
	for _, name := range fields {
		if v, ok := ctx.Lookup(name); ok && !IsEmpty(v) {
			n++
		}
	}
	return n
}
