package validator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/formrules/pkg/async"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/remote"
	"github.com/dmitrymomot/formrules/pkg/rules"
)

type declaration struct {
	field string
	spec  any
}

// Validator evaluates declared field rules and tracks per-field error,
// touched and validating state. It is safe for concurrent use.
type Validator struct {
	name       string
	cfg        Config
	registry   *rules.Registry
	parser     *rules.Parser
	formatter  *rules.Formatter
	delegate   *remote.Delegate
	oracle     remote.Oracle
	httpOpts   []remote.HTTPOption
	logger     *slog.Logger
	observers  []Observer
	now        func() time.Time
	messages   map[string]string
	attributes map[string]string
	pending    []declaration

	mu         sync.RWMutex
	fields     []string
	rules      map[string]rules.Set
	errors     map[string][]string
	touched    map[string]bool
	validating map[string]int

	debounceMu sync.Mutex
	debounce   map[string]*debounceSlot
}

// New builds a Validator. Without WithOracle, remote rules are posted to
// Config.RemoteURL.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		cfg:        DefaultConfig(),
		logger:     logger.NewNop(),
		now:        time.Now,
		messages:   make(map[string]string),
		attributes: make(map[string]string),
		rules:      make(map[string]rules.Set),
		errors:     make(map[string][]string),
		touched:    make(map[string]bool),
		validating: make(map[string]int),
		debounce:   make(map[string]*debounceSlot),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	if err := v.cfg.Validate(); err != nil {
		return nil, err
	}

	if v.registry == nil {
		v.registry = rules.NewRegistry()
	}
	v.parser = rules.NewParser(rules.WithParserLogger(v.logger))
	for _, d := range v.pending {
		set, err := v.parser.ParseAny(d.spec)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidRules, d.field, err)
		}
		v.setRules(d.field, set)
	}
	v.pending = nil
	v.formatter = rules.NewFormatter(v.registry, v.messages, v.attributes)

	oracle := v.oracle
	if oracle == nil {
		httpOpts := append([]remote.HTTPOption{
			remote.WithRetries(v.cfg.RemoteRetries),
			remote.WithHTTPLogger(v.logger),
		}, v.httpOpts...)
		oracle = remote.NewHTTPOracle(v.cfg.RemoteURL, httpOpts...)
	}
	v.delegate = remote.NewDelegate(oracle,
		remote.WithTimeout(v.cfg.RemoteTimeout),
		remote.WithCacheTTL(v.cfg.CacheTTL),
		remote.WithCacheMaxEntries(v.cfg.CacheMaxEntries),
		remote.WithClock(v.now),
		remote.WithLogger(v.logger),
	)
	return v, nil
}

func (v *Validator) declare(field string, spec any) error {
	if field == "" {
		return fmt.Errorf("%w: empty field name", ErrInvalidRules)
	}
	v.pending = append(v.pending, declaration{field: field, spec: spec})
	return nil
}

func (v *Validator) setRules(field string, set rules.Set) {
	if _, ok := v.rules[field]; !ok {
		v.fields = append(v.fields, field)
	}
	v.rules[field] = set
}

// ValidateField checks value against the rules declared for field. data is the
// rest of the record for cross-field rules and may be nil; value takes
// precedence over data[field]. Fields without rules are valid and leave the
// state untouched.
func (v *Validator) ValidateField(ctx context.Context, field string, value any, data map[string]any) Verdict {
	set := v.Rules(field)
	if len(set) == 0 {
		return validVerdict()
	}

	record := maps.Clone(data)
	if record == nil {
		record = make(map[string]any, 1)
	}
	record[field] = value
	return v.run(ctx, field, value, record, set)
}

// ValidateAll validates every declared field. Fields missing from data are
// validated as "". Results are identical whether fields run in parallel or not.
func (v *Validator) ValidateAll(ctx context.Context, data map[string]any) FormVerdict {
	ctx = logger.WithForm(ctx, v.name)
	record := maps.Clone(data)
	if record == nil {
		record = make(map[string]any)
	}
	v.notify(ctx, Event{Type: EventBeforeValidate, Data: record})

	fields := v.Fields()
	verdicts := make([]Verdict, len(fields))

	if v.cfg.ParallelFields && len(fields) > 1 {
		// Every field must run even when ctx is already done: run records
		// state, and remote rules turn the cancellation into a failure message.
		detached := context.WithoutCancel(ctx)
		futures := make([]*async.Future[Verdict], len(fields))
		for i, field := range fields {
			futures[i] = async.Async(detached, field, func(_ context.Context, field string) (Verdict, error) {
				return v.validateInForm(ctx, field, record), nil
			})
		}
		verdicts, _ = async.WaitAll(futures...)
	} else {
		for i, field := range fields {
			verdicts[i] = v.validateInForm(ctx, field, record)
		}
	}

	form := FormVerdict{
		Valid:   true,
		Fields:  fields,
		Errors:  make(map[string][]string),
		Results: make(map[string]Verdict, len(fields)),
	}
	for i, field := range fields {
		verdict := verdicts[i]
		form.Results[field] = verdict
		if !verdict.Valid {
			form.Valid = false
			form.Errors[field] = slices.Clone(verdict.Errors)
		}
	}

	v.notify(ctx, Event{Type: EventAfterValidate, Data: record, Form: &form})
	return form
}

func (v *Validator) validateInForm(ctx context.Context, field string, record map[string]any) Verdict {
	set := v.Rules(field)
	if len(set) == 0 {
		return validVerdict()
	}
	value, ok := record[field]
	if !ok {
		value = ""
	}
	return v.run(ctx, field, value, record, set)
}

// Extend registers a local rule on the validator's registry. Validators sharing
// the registry see it too.
func (v *Validator) Extend(name string, eval rules.Evaluator, message string) error {
	return v.registry.Extend(name, eval, message)
}

// RegisterRemote marks name as answered by the remote authority.
func (v *Validator) RegisterRemote(name, message string) error {
	return v.registry.RegisterRemote(name, message)
}

// SetRules replaces the rules of field, declaring it if needed.
func (v *Validator) SetRules(field string, spec any) error {
	if field == "" {
		return fmt.Errorf("%w: empty field name", ErrInvalidRules)
	}
	set, err := v.parser.ParseAny(spec)
	if err != nil {
		return fmt.Errorf("%w: field %q: %w", ErrInvalidRules, field, err)
	}
	v.mu.Lock()
	v.setRules(field, set)
	v.mu.Unlock()
	return nil
}

// ClearErrors forgets the errors of the given fields, or of all fields when
// none are given.
func (v *Validator) ClearErrors(fields ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(fields) == 0 {
		clear(v.errors)
		return
	}
	for _, f := range fields {
		delete(v.errors, f)
	}
}

// Reset clears errors and the touched and validating flags. Pending debounced
// calls still settle.
func (v *Validator) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	clear(v.errors)
	clear(v.touched)
	clear(v.validating)
}

func (v *Validator) HasError(field string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.errors[field]) > 0
}

// GetErrors returns a copy of the messages recorded for field.
func (v *Validator) GetErrors(field string) []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.errors[field])
}

// FirstError returns the first recorded message for field, or "".
func (v *Validator) FirstError(field string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if msgs := v.errors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Errors returns a copy of every recorded error.
func (v *Validator) Errors() map[string][]string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make(map[string][]string, len(v.errors))
	for f, msgs := range v.errors {
		out[f] = slices.Clone(msgs)
	}
	return out
}

// IsValid reports whether no field currently has errors.
func (v *Validator) IsValid() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.errors) == 0
}

func (v *Validator) IsTouched(field string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.touched[field]
}

// IsValidating reports whether a validation of field is in progress.
func (v *Validator) IsValidating(field string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.validating[field] > 0
}

// Fields returns the declared fields in validation order.
func (v *Validator) Fields() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.fields)
}

// Rules returns a copy of the rules declared for field.
func (v *Validator) Rules(field string) rules.Set {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.rules[field])
}

func (v *Validator) Name() string { return v.name }

func (v *Validator) Config() Config { return v.cfg }

func (v *Validator) Registry() *rules.Registry { return v.registry }

// RemoteStats exposes the remote cache counters.
func (v *Validator) RemoteStats() remote.Stats { return v.delegate.Stats() }

// ClearRemoteCache drops cached remote verdicts.
func (v *Validator) ClearRemoteCache() { v.delegate.Clear() }
