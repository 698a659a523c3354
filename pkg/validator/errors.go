package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidConfig is returned by New and Config.Validate for unusable settings.
	ErrInvalidConfig = errors.New("invalid validator config")

	// ErrInvalidRules is returned by New when a rule declaration cannot be parsed.
	ErrInvalidRules = errors.New("invalid rule declaration")
)
