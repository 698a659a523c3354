package rules

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	alphaRegex          = regexp.MustCompile(`^[\pL\pM]+$`)
	alphaASCIIRegex     = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumRegex       = regexp.MustCompile(`^[\pL\pM\pN]+$`)
	alphaNumASCIIRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaDashRegex      = regexp.MustCompile(`^[\pL\pM\pN_-]+$`)
	alphaDashASCIIRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// String requires a Go string.
func String(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	_, ok := value.(string)
	return ok
}

// Alpha allows Unicode letters only; "alpha:ascii" restricts to a-z and A-Z.
func Alpha(value any, params []string, _ string, _ Context) bool {
	return matchVariant(value, params, alphaRegex, alphaASCIIRegex)
}

// AlphaNum allows letters and digits.
func AlphaNum(value any, params []string, _ string, _ Context) bool {
	return matchVariant(value, params, alphaNumRegex, alphaNumASCIIRegex)
}

// AlphaDash allows letters, digits, dashes and underscores.
func AlphaDash(value any, params []string, _ string, _ Context) bool {
	return matchVariant(value, params, alphaDashRegex, alphaDashASCIIRegex)
}

func matchVariant(value any, params []string, unicodeRe, asciiRe *regexp.Regexp) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := scalarString(value)
	if !ok {
		return false
	}
	if len(params) > 0 && params[0] == "ascii" {
		return asciiRe.MatchString(s)
	}
	return unicodeRe.MatchString(s)
}

// ASCII requires every character to be 7-bit ASCII.
func ASCII(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := scalarString(value)
	if !ok {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// Lowercase requires the value to equal its lower-cased form.
func Lowercase(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	return cases.Lower(language.Und).String(s) == s
}

// Uppercase requires the value to equal its upper-cased form.
func Uppercase(value any, _ []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	return cases.Upper(language.Und).String(s) == s
}

// StartsWith requires the value to start with one of params.
func StartsWith(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	return anyAffix(toString(value), params, strings.HasPrefix)
}

// EndsWith requires the value to end with one of params.
func EndsWith(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	return anyAffix(toString(value), params, strings.HasSuffix)
}

// DoesntStartWith rejects values starting with any of params.
func DoesntStartWith(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	return !anyAffix(toString(value), params, strings.HasPrefix)
}

// DoesntEndWith rejects values ending with any of params.
func DoesntEndWith(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	return !anyAffix(toString(value), params, strings.HasSuffix)
}

func anyAffix(s string, affixes []string, match func(string, string) bool) bool {
	for _, a := range affixes {
		if a != "" && match(s, a) {
			return true
		}
	}
	return false
}

// scalarString converts strings and numbers; collections and booleans are rejected.
func scalarString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	if isNumberKind(value) {
		return toString(value), true
	}
	return "", false
}
