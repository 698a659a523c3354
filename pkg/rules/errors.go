package rules

import "errors"

var (
	// ErrInvalidSpec is returned when a rule specification has an unsupported shape.
	ErrInvalidSpec = errors.New("invalid rule specification")

	// ErrInvalidRule is returned when a registration lacks a name or an evaluator.
	ErrInvalidRule = errors.New("invalid rule registration")
)
