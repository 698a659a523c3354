package rules

import (
	"maps"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var placeholderRegex = regexp.MustCompile(`:([A-Za-z_]+)`)

// Formatter resolves and interpolates failure messages.
//
// Template resolution order, first hit wins:
//
//  1. Messages["field.rule"]
//  2. Messages["rule"]
//  3. the registry default for rule
//  4. DefaultMessage
type Formatter struct {
	registry   *Registry
	messages   map[string]string
	attributes map[string]string
}

// NewFormatter creates a Formatter. A nil registry resolves only overrides and DefaultMessage.
func NewFormatter(registry *Registry, messages, attributes map[string]string) *Formatter {
	return &Formatter{
		registry:   registry,
		messages:   maps.Clone(messages),
		attributes: maps.Clone(attributes),
	}
}

// Template returns the uninterpolated template for field and rule.
func (f *Formatter) Template(field, rule string) string {
	if msg, ok := f.messages[field+"."+rule]; ok && msg != "" {
		return msg
	}
	if msg, ok := f.messages[rule]; ok && msg != "" {
		return msg
	}
	if f.registry != nil {
		return f.registry.Message(rule)
	}
	return DefaultMessage
}

// Format returns the interpolated message for a failed rule.
// Placeholders without a value are left untouched.
func (f *Formatter) Format(field, rule string, params []string) string {
	return f.Interpolate(f.Template(field, rule), field, rule, params)
}

// Interpolate replaces placeholders in template. ":attribute" and ":field" become the
// field label, ":Attribute" capitalizes it and ":ATTRIBUTE" upper-cases it.
func (f *Formatter) Interpolate(template, field, rule string, params []string) string {
	values := f.placeholders(field, rule, params)
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1:]
		if v, ok := values[name]; ok {
			return v
		}
		lower := strings.ToLower(name)
		v, ok := values[lower]
		if !ok {
			return match
		}
		switch name {
		case strings.ToUpper(lower):
			return strings.ToUpper(v)
		case upperFirst(lower):
			return upperFirst(v)
		}
		return match
	})
}

// Label returns the human-readable name of field: the configured attribute label,
// or the field name with underscores replaced by spaces.
func (f *Formatter) Label(field string) string {
	if label, ok := f.attributes[field]; ok && label != "" {
		return label
	}
	return strings.ReplaceAll(field, "_", " ")
}

func (f *Formatter) labels(fields []string) string {
	out := make([]string, len(fields))
	for i, name := range fields {
		out[i] = f.Label(name)
	}
	return strings.Join(out, " / ")
}

func (f *Formatter) placeholders(field, rule string, params []string) map[string]string {
	label := f.Label(field)
	values := map[string]string{
		"attribute": label,
		"field":     label,
	}

	p0, has0 := param(params, 0)
	p1, has1 := param(params, 1)
	set := func(key, value string, ok bool) {
		if ok {
			values[key] = value
		}
	}

	switch rule {
	case "min", "min_digits":
		set("min", p0, has0)
	case "max", "max_digits":
		set("max", p0, has0)
	case "size":
		set("size", p0, has0)
	case "between", "digits_between":
		set("min", p0, has0)
		set("max", p1, has1)
	case "digits":
		set("digits", p0, has0)
	case "decimal":
		if has1 {
			set("decimal", p0+"-"+p1, true)
		} else {
			set("decimal", p0, has0)
		}
	case "same", "different", "confirmed":
		set("other", f.Label(p0), has0)
	case "gt", "gte", "lt", "lte", "multiple_of":
		set("value", p0, has0)
	case "after", "before", "after_or_equal", "before_or_equal", "date_equals":
		set("date", p0, has0)
	case "date_format":
		set("format", p0, has0)
	case "in", "not_in", "starts_with", "ends_with", "doesnt_start_with", "doesnt_end_with":
		set("values", strings.Join(params, ", "), len(params) > 0)
	case "required_if", "accepted_if", "declined_if", "prohibited_if":
		set("other", f.Label(p0), has0)
		set("value", strings.Join(tail(params), ", "), has1)
	case "required_unless", "prohibited_unless":
		set("other", f.Label(p0), has0)
		set("values", strings.Join(tail(params), ", "), has1)
	case "required_with", "required_with_all", "required_without", "required_without_all":
		set("values", f.labels(params), len(params) > 0)
	default:
		set("value", p0, has0)
		set("values", strings.Join(params, ", "), len(params) > 0)
	}
	return values
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func tail(params []string) []string {
	if len(params) < 2 {
		return nil
	}
	return params[1:]
}
