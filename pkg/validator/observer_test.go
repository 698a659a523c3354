package validator_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/rules"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestObservers(t *testing.T) {
	t.Parallel()

	t.Run("field events", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		v := newValidator(t, validator.WithField("email", "required|email"), validator.WithObserver(rec))

		v.ValidateField(context.Background(), "email", "bad", nil)
		v.ValidateField(context.Background(), "email", "ok@example.com", nil)

		assert.Equal(t, []validator.EventType{
			validator.EventBeforeField, validator.EventAfterField, validator.EventFieldFailed,
			validator.EventBeforeField, validator.EventAfterField, validator.EventFieldPassed,
		}, rec.types())

		rec.mu.Lock()
		failed := rec.events[2]
		rec.mu.Unlock()
		assert.Equal(t, "email", failed.Field)
		assert.Equal(t, "bad", failed.Value)
		require.NotNil(t, failed.Verdict)
		assert.False(t, failed.Verdict.Valid)
	})

	t.Run("form events wrap field events", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		v := newValidator(t, validator.WithField("a", "required"), validator.WithObserver(rec))
		v.ValidateAll(context.Background(), map[string]any{"a": "x"})

		types := rec.types()
		require.Len(t, types, 5)
		assert.Equal(t, validator.EventBeforeValidate, types[0])
		assert.Equal(t, validator.EventAfterValidate, types[4])

		rec.mu.Lock()
		last := rec.events[4]
		rec.mu.Unlock()
		require.NotNil(t, last.Form)
		assert.True(t, last.Form.Valid)
	})

	t.Run("panicking observer is ignored", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		v := newValidator(t,
			validator.WithField("a", "required"),
			validator.WithObserver(validator.ObserverFunc(func(context.Context, validator.Event) { panic("observer") })),
			validator.WithObserver(rec),
		)

		got := v.ValidateField(context.Background(), "a", "", nil)
		assert.False(t, got.Valid)
		assert.Len(t, rec.types(), 3)
	})

	t.Run("observers see validating state", func(t *testing.T) {
		t.Parallel()

		var v *validator.Validator
		var during, after bool
		v = newValidator(t,
			validator.WithField("a", "required"),
			validator.WithObserver(validator.ObserverFunc(func(_ context.Context, e validator.Event) {
				switch e.Type {
				case validator.EventBeforeField:
					during = v.IsValidating(e.Field) && v.IsTouched(e.Field)
				case validator.EventAfterField:
					after = v.IsValidating(e.Field)
				}
			})),
		)
		v.ValidateField(context.Background(), "a", "x", nil)
		assert.True(t, during)
		assert.False(t, after)
	})
}

func TestLogsCarryFormName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	v := newValidator(t,
		validator.WithName("signup"),
		validator.WithLogger(log),
		validator.WithField("code", "boom"),
	)
	require.NoError(t, v.Extend("boom", func(any, []string, string, rules.Context) bool { panic("x") }, ""))

	v.ValidateField(context.Background(), "code", "1", nil)
	out := buf.String()
	assert.Contains(t, out, `"form":"signup"`)
	assert.Contains(t, out, "rule evaluator failed")
	assert.Equal(t, "signup", v.Name())
}
