package rules

// Size-based rules measure strings by length, numbers by magnitude, collections
// by element count and files in kilobytes. A numeric string counts as a number
// only when the field is also declared numeric or integer.

// Min requires a size of at least params[0].
func Min(value any, params []string, _ string, ctx Context) bool {
	return compareSize(value, params, ctx, func(size, bound float64) bool { return size >= bound })
}

// Max requires a size of at most params[0].
func Max(value any, params []string, _ string, ctx Context) bool {
	return compareSize(value, params, ctx, func(size, bound float64) bool { return size <= bound })
}

// Size requires a size of exactly params[0].
func Size(value any, params []string, _ string, ctx Context) bool {
	return compareSize(value, params, ctx, func(size, bound float64) bool { return size == bound })
}

// Between requires a size within params[0] and params[1], inclusive.
func Between(value any, params []string, _ string, ctx Context) bool {
	if IsEmpty(value) {
		return true
	}
	lo, ok1 := floatParam(params, 0)
	hi, ok2 := floatParam(params, 1)
	size, ok3 := sizeOf(value, ctx.Numeric())
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	return size >= lo && size <= hi
}

// Gt requires a size greater than another field's size or the literal params[0].
func Gt(value any, params []string, _ string, ctx Context) bool {
	return compareOther(value, params, ctx, func(a, b float64) bool { return a > b })
}

// Gte requires a size greater than or equal to another field's size or the literal params[0].
func Gte(value any, params []string, _ string, ctx Context) bool {
	return compareOther(value, params, ctx, func(a, b float64) bool { return a >= b })
}

// Lt requires a size less than another field's size or the literal params[0].
func Lt(value any, params []string, _ string, ctx Context) bool {
	return compareOther(value, params, ctx, func(a, b float64) bool { return a < b })
}

// Lte requires a size less than or equal to another field's size or the literal params[0].
func Lte(value any, params []string, _ string, ctx Context) bool {
	return compareOther(value, params, ctx, func(a, b float64) bool { return a <= b })
}

func compareSize(value any, params []string, ctx Context, cmp func(size, bound float64) bool) bool {
	if IsEmpty(value) {
		return true
	}
	bound, ok := floatParam(params, 0)
	if !ok {
		return false
	}
	size, ok := sizeOf(value, ctx.Numeric())
	if !ok {
		return false
	}
	return cmp(size, bound)
}

func compareOther(value any, params []string, ctx Context, cmp func(a, b float64) bool) bool {
	if IsEmpty(value) {
		return true
	}
	p, ok := param(params, 0)
	if !ok {
		return false
	}

	numeric := ctx.Numeric()
	size, ok := sizeOf(value, numeric)
	if !ok {
		return false
	}

	if other, found := ctx.Lookup(p); found {
		if IsEmpty(other) {
			return false
		}
		// A numeric string on the other side is compared by magnitude when this one is a number.
		otherSize, ok := sizeOf(other, numeric || isNumberKind(value))
		if !ok {
			return false
		}
		return cmp(size, otherSize)
	}

	bound, ok := toFloat(p)
	if !ok {
		return false
	}
	return cmp(size, bound)
}
