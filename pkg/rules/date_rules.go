package rules

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when a value is parsed as a date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	"2006-01",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// Date requires a value that parses as a date.
func Date(value any, _ []string, _ string, ctx Context) bool {
	if IsEmpty(value) {
		return true
	}
	_, ok := parseDate(value, ctx.now().Location())
	return ok
}

// DateFormat requires the value to match at least one of the formats in params.
// Formats use the PHP notation ("Y-m-d H:i:s").
func DateFormat(value any, params []string, _ string, _ Context) bool {
	if IsEmpty(value) {
		return true
	}
	s, ok := value.(string)
	if !ok || len(params) == 0 {
		return false
	}
	for _, format := range params {
		if _, err := time.Parse(goLayout(format), s); err == nil {
			return true
		}
	}
	return false
}

// After requires a date strictly later than the reference.
func After(value any, params []string, _ string, ctx Context) bool {
	return compareDates(value, params, ctx, false, func(v, ref time.Time) bool { return v.After(ref) })
}

// Before requires a date strictly earlier than the reference.
func Before(value any, params []string, _ string, ctx Context) bool {
	return compareDates(value, params, ctx, false, func(v, ref time.Time) bool { return v.Before(ref) })
}

// AfterOrEqual compares calendar days; time of day is ignored.
func AfterOrEqual(value any, params []string, _ string, ctx Context) bool {
	return compareDates(value, params, ctx, true, func(v, ref time.Time) bool { return !v.Before(ref) })
}

// BeforeOrEqual compares calendar days; time of day is ignored.
func BeforeOrEqual(value any, params []string, _ string, ctx Context) bool {
	return compareDates(value, params, ctx, true, func(v, ref time.Time) bool { return !v.After(ref) })
}

// DateEquals requires the same calendar day as the reference.
func DateEquals(value any, params []string, _ string, ctx Context) bool {
	return compareDates(value, params, ctx, true, func(v, ref time.Time) bool { return v.Equal(ref) })
}

func compareDates(value any, params []string, ctx Context, dateOnly bool, cmp func(v, ref time.Time) bool) bool {
	if IsEmpty(value) {
		return true
	}
	p, ok := param(params, 0)
	if !ok {
		return false
	}

	now := ctx.now()
	v, ok := parseDate(value, now.Location())
	if !ok {
		return false
	}
	ref, ok := referenceDate(p, ctx, now)
	if !ok {
		return false
	}

	if dateOnly {
		v, ref = midnight(v), midnight(ref.In(v.Location()))
	}
	return cmp(v, ref)
}

// referenceDate resolves a date parameter: another field's value, a relative
// keyword, or a literal date.
func referenceDate(p string, ctx Context, now time.Time) (time.Time, bool) {
	if other, found := ctx.Lookup(p); found {
		if IsEmpty(other) {
			return time.Time{}, false
		}
		return parseDate(other, now.Location())
	}

	switch strings.ToLower(p) {
	case "now":
		return now, true
	case "today":
		return midnight(now), true
	case "tomorrow":
		return midnight(now).AddDate(0, 0, 1), true
	case "yesterday":
		return midnight(now).AddDate(0, 0, -1), true
	}
	return parseDate(p, now.Location())
}

func parseDate(value any, loc *time.Location) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// phpLayout maps PHP date format characters to Go layout fragments.
var phpLayout = map[rune]string{
	'd': "02",
	'j': "2",
	'D': "Mon",
	'l': "Monday",
	'm': "01",
	'n': "1",
	'M': "Jan",
	'F': "January",
	'Y': "2006",
	'y': "06",
	'H': "15",
	'G': "15",
	'h': "03",
	'g': "3",
	'i': "04",
	's': "05",
	'A': "PM",
	'a': "pm",
	'v': "000",
	'u': "000000",
	'T': "MST",
	'e': "MST",
	'O': "-0700",
	'P': "-07:00",
	'c': time.RFC3339,
}

// goLayout translates a PHP date format into a Go time layout.
// A backslash escapes the next character.
func goLayout(format string) string {
	var b strings.Builder
	escaped := false
	for _, r := range format {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if frag, ok := phpLayout[r]; ok {
			b.WriteString(frag)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
