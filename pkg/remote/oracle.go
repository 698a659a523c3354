package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Request is the JSON body posted to the remote validation endpoint.
type Request struct {
	Field      string            `json:"field"`
	Value      any               `json:"value"`
	Rule       string            `json:"rule"`
	Parameters []string          `json:"parameters"`
	Messages   map[string]string `json:"messages"`
	Attributes map[string]string `json:"attributes"`
}

// Response is the verdict returned by the remote authority.
// An empty Message lets the caller format its own.
type Response struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// UnmarshalJSON accepts either {"valid": bool, "message": string} or a bare
// boolean. An object without a "valid" key is rejected.
func (r *Response) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: empty body", ErrInvalidResponse)
	}

	var b bool
	if err := json.Unmarshal(trimmed, &b); err == nil {
		*r = Response{Valid: b}
		return nil
	}

	var raw struct {
		Valid   *bool  `json:"valid"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if raw.Valid == nil {
		return fmt.Errorf("%w: missing \"valid\"", ErrInvalidResponse)
	}
	*r = Response{Valid: *raw.Valid, Message: raw.Message}
	return nil
}

// Oracle decides remote-only rules. Implementations must honour ctx.
type Oracle interface {
	Check(ctx context.Context, req Request) (Response, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, req Request) (Response, error)

// Check calls f.
func (f OracleFunc) Check(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}
