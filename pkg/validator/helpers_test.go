package validator_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/remote"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func newValidator(t *testing.T, opts ...validator.Option) *validator.Validator {
	t.Helper()

	v, err := validator.New(opts...)
	require.NoError(t, err)
	return v
}

// countingOracle treats the value "taken" as invalid and counts calls.
type countingOracle struct {
	calls atomic.Int32

	mu   sync.Mutex
	reqs []remote.Request
}

func (o *countingOracle) Check(_ context.Context, req remote.Request) (remote.Response, error) {
	o.calls.Add(1)
	o.mu.Lock()
	o.reqs = append(o.reqs, req)
	o.mu.Unlock()

	if req.Value == "taken" {
		return remote.Response{Valid: false, Message: "server says taken"}, nil
	}
	if req.Value == "silent" {
		return remote.Response{Valid: false}, nil
	}
	return remote.Response{Valid: true}, nil
}

func (o *countingOracle) requests() []remote.Request {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]remote.Request(nil), o.reqs...)
}

// recorder collects observer events.
type recorder struct {
	mu     sync.Mutex
	events []validator.Event
}

func (r *recorder) OnEvent(_ context.Context, e validator.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []validator.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]validator.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
