package validator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/remote"
	"github.com/dmitrymomot/formrules/pkg/rules"
)

// EvaluatorErrorMessage replaces the message of a rule whose evaluator panicked.
const EvaluatorErrorMessage = "A validation error occurred for the :attribute field."

const (
	ruleNullable  = "nullable"
	ruleSometimes = "sometimes"
	ruleBail      = "bail"
)

func (v *Validator) run(ctx context.Context, field string, value any, record map[string]any, set rules.Set) Verdict {
	ctx = logger.WithForm(ctx, v.name)
	v.begin(field)
	v.notify(ctx, Event{Type: EventBeforeField, Field: field, Value: value})

	verdict := v.evaluate(ctx, field, value, record, set)

	v.finish(field, verdict)

	result := verdict
	v.notify(ctx, Event{Type: EventAfterField, Field: field, Value: value, Verdict: &result})
	if verdict.Valid {
		v.notify(ctx, Event{Type: EventFieldPassed, Field: field, Value: value, Verdict: &result})
	} else {
		v.notify(ctx, Event{Type: EventFieldFailed, Field: field, Value: value, Verdict: &result})
	}
	return verdict
}

func (v *Validator) evaluate(ctx context.Context, field string, value any, record map[string]any, set rules.Set) Verdict {
	verdict := validVerdict()

	if set.Has(ruleNullable) && rules.IsEmpty(value) {
		return verdict
	}
	if set.Has(ruleSometimes) {
		if _, present := record[field]; !present {
			return verdict
		}
	}

	rctx := rules.Context{Data: record, Rules: set, Now: v.now}
	bail := v.cfg.StopOnFirstError || set.Has(ruleBail)

	for _, inv := range set {
		switch inv.Name {
		case ruleNullable, ruleSometimes, ruleBail:
			continue
		}

		passed, msg := v.check(ctx, field, value, inv, rctx)
		if passed {
			continue
		}
		if msg == "" {
			msg = v.formatter.Format(field, inv.Name, inv.Params)
		}
		verdict.Valid = false
		verdict.Errors = append(verdict.Errors, msg)
		verdict.FailedRules = append(verdict.FailedRules, inv.Name)
		if bail {
			break
		}
	}
	return verdict
}

// check returns whether inv passed and, on failure, an optional message that
// replaces the formatted one.
func (v *Validator) check(ctx context.Context, field string, value any, inv rules.Invocation, rctx rules.Context) (bool, string) {
	if inv.Remote {
		return v.checkRemote(ctx, field, value, inv)
	}

	reg, ok := v.registry.Lookup(inv.Name)
	if !ok {
		v.logger.DebugContext(ctx, "unknown rule forwarded to remote",
			logger.Component("validator"),
			logger.Field(field),
			logger.Rule(inv.Name, inv.Params...),
		)
		return v.checkRemote(ctx, field, value, inv)
	}
	if reg.Remote || reg.Evaluator == nil {
		return v.checkRemote(ctx, field, value, inv)
	}

	passed, err := safeEval(reg.Evaluator, value, inv.Params, field, rctx)
	if err != nil {
		v.logger.ErrorContext(ctx, "rule evaluator failed",
			logger.Component("validator"),
			logger.Field(field),
			logger.Rule(inv.Name, inv.Params...),
			logger.Error(err),
		)
		return false, v.formatter.Interpolate(EvaluatorErrorMessage, field, inv.Name, inv.Params)
	}
	return passed, ""
}

// checkRemote asks the delegate. Empty values pass without a request, like
// every local rule.
func (v *Validator) checkRemote(ctx context.Context, field string, value any, inv rules.Invocation) (bool, string) {
	if rules.IsEmpty(value) {
		return true, ""
	}

	res := v.delegate.Validate(ctx, remote.Request{
		Field:      field,
		Value:      value,
		Rule:       inv.Name,
		Parameters: slices.Clone(inv.Params),
		Messages:   v.messages,
		Attributes: v.attributes,
	})
	if res.Valid {
		return true, ""
	}
	return false, res.Message
}

func safeEval(eval rules.Evaluator, value any, params []string, field string, rctx rules.Context) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluator panic: %v", r)
		}
	}()
	return eval(value, params, field, rctx), nil
}

func (v *Validator) begin(field string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.touched[field] = true
	v.validating[field]++
}

func (v *Validator) finish(field string, verdict Verdict) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if n := v.validating[field] - 1; n > 0 {
		v.validating[field] = n
	} else {
		delete(v.validating, field)
	}
	if verdict.Valid {
		delete(v.errors, field)
		return
	}
	v.errors[field] = slices.Clone(verdict.Errors)
}

func (v *Validator) notify(ctx context.Context, e Event) {
	for _, o := range v.observers {
		v.deliver(ctx, o, e)
	}
}

func (v *Validator) deliver(ctx context.Context, o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.ErrorContext(ctx, "validation observer panicked",
				logger.Component("validator"),
				logger.Event(string(e.Type)),
				logger.Field(e.Field),
				slog.Any("panic", r),
			)
		}
	}()
	o.OnEvent(ctx, e)
}
