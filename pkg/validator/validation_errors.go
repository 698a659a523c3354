package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is a single failed rule on a field.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationErrors is a collection of failures that satisfies error.
type ValidationErrors []ValidationError

// Error renders every failure as "field (rule): message".
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, err := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		if err.Rule != "" {
			b.WriteString(" (" + err.Rule + ")")
		}
		b.WriteString(": " + err.Message)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether field failed. With rules given, only a failure of one
// of those rules counts.
func (ve ValidationErrors) Has(field string, rules ...string) bool {
	return slices.ContainsFunc(ve, func(err ValidationError) bool {
		return err.Field == field && (len(rules) == 0 || slices.Contains(rules, err.Rule))
	})
}

// Messages returns the messages recorded for field.
func (ve ValidationErrors) Messages(field string) []string {
	var out []string
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err.Message)
		}
	}
	return out
}

// FailedRules returns the rule names that failed on field, in evaluation order.
func (ve ValidationErrors) FailedRules(field string) []string {
	var out []string
	for _, err := range ve {
		if err.Field == field && err.Rule != "" {
			out = append(out, err.Rule)
		}
	}
	return out
}

// Fields returns the failing fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, err := range ve {
		if !slices.Contains(fields, err.Field) {
			fields = append(fields, err.Field)
		}
	}
	return fields
}

// Map groups messages by field, the shape of FormVerdict.Errors.
func (ve ValidationErrors) Map() map[string][]string {
	out := make(map[string][]string)
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if err != nil && errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return err != nil && errors.As(err, &verrs)
}
