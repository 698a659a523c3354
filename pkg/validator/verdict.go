package validator

// Verdict is the outcome of validating one field. Errors is never nil; a
// failed verdict always carries at least one message. FailedRules lines up
// with Errors.
type Verdict struct {
	Valid       bool
	Errors      []string
	FailedRules []string
}

func validVerdict() Verdict {
	return Verdict{Valid: true, Errors: []string{}, FailedRules: []string{}}
}

// FormVerdict is the outcome of ValidateAll. Errors holds only the fields that
// failed; Results holds every declared field in Fields order.
type FormVerdict struct {
	Valid   bool
	Fields  []string
	Errors  map[string][]string
	Results map[string]Verdict
}

// Err returns nil for a valid form, otherwise ValidationErrors in field order.
func (f FormVerdict) Err() error {
	if f.Valid {
		return nil
	}
	var errs ValidationErrors
	for _, field := range f.Fields {
		v, ok := f.Results[field]
		if !ok || v.Valid {
			continue
		}
		for i, msg := range v.Errors {
			rule := ""
			if i < len(v.FailedRules) {
				rule = v.FailedRules[i]
			}
			errs = append(errs, ValidationError{Field: field, Rule: rule, Message: msg})
		}
	}
	return errs
}
