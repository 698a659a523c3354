package rules

import (
	"math"
	"regexp"
	"strings"
)

var (
	integerStringRegex = regexp.MustCompile(`^[+-]?\d+$`)
	digitsRegex        = regexp.MustCompile(`^\d+$`)
	decimalRegex       = regexp.MustCompile(`^[+-]?\d*(\.(\d*))?$`)
)

// Numeric requires a number or a numeric string.
func Numeric(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	_, ok := toFloat(value)
	return ok
}

// Integer requires a whole number or an integer string.
func Integer(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	if s, ok := value.(string); ok {
		return integerStringRegex.MatchString(strings.TrimSpace(s))
	}
	f, ok := toFloat(value)
	return ok && f == math.Trunc(f)
}

// Decimal requires exactly params[0] decimal places, or between params[0] and params[1].
func Decimal(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	lo, ok := intParam(params, 0)
	if !ok {
		return false
	}
	hi := lo
	if n, ok := intParam(params, 1); ok {
		hi = n
	}

	s := strings.TrimSpace(toString(value))
	if _, ok := toFloat(s); !ok {
		return false
	}
	m := decimalRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	places := len(m[2])
	return places >= lo && places <= hi
}

// Digits requires an all-digit value of exactly params[0] digits.
func Digits(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	n, ok := intParam(params, 0)
	if !ok {
		return false
	}
	s, ok := digitString(value)
	return ok && len(s) == n
}

// DigitsBetween requires an all-digit value with a length between params[0] and params[1].
func DigitsBetween(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	lo, ok1 := intParam(params, 0)
	hi, ok2 := intParam(params, 1)
	if !ok1 || !ok2 {
		return false
	}
	s, ok := digitString(value)
	return ok && len(s) >= lo && len(s) <= hi
}

// MinDigits requires an integer with at least params[0] digits.
func MinDigits(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	n, ok := intParam(params, 0)
	if !ok {
		return false
	}
	s, ok := digitString(value)
	return ok && len(s) >= n
}

// MaxDigits requires an integer with at most params[0] digits.
func MaxDigits(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	n, ok := intParam(params, 0)
	if !ok {
		return false
	}
	s, ok := digitString(value)
	return ok && len(s) <= n
}

// MultipleOf requires a number that divides evenly by params[0].
func MultipleOf(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	v, ok1 := toFloat(value)
	m, ok2 := floatParam(params, 0)
	if !ok1 || !ok2 || m == 0 {
		return false
	}
	q := v / m
	return math.Abs(q-math.Round(q)) < 1e-9
}

func digitString(value any) (string, bool) {
	s := strings.TrimSpace(toString(value))
	if _, isBool := value.(bool); isBool || !digitsRegex.MatchString(s) {
		return "", false
	}
	return s, true
}
