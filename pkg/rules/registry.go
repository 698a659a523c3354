package rules

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// DefaultMessage is used when neither an override nor a registered template exists.
const DefaultMessage = "The :attribute is invalid."

// Context carries what an evaluator may look at besides the value itself.
type Context struct {
	// Data is the whole record being validated, used by cross-field rules.
	Data map[string]any
	// Rules is the full rule list of the field under evaluation.
	Rules Set
	// Now resolves relative date parameters; time.Now when nil.
	Now func() time.Time
}

func (c Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Lookup returns the value stored under field in the record.
func (c Context) Lookup(field string) (any, bool) {
	if c.Data == nil {
		return nil, false
	}
	v, ok := c.Data[field]
	return v, ok
}

// Numeric reports whether the field is declared numeric, in which case size
// rules compare numeric strings by magnitude instead of length.
func (c Context) Numeric() bool {
	return c.Rules.Has("numeric", "integer")
}

// Evaluator checks value against a rule's parameters. It must be a pure function.
type Evaluator func(value any, params []string, field string, ctx Context) bool

// Registration describes one rule known to a Registry.
type Registration struct {
	Name      string
	Evaluator Evaluator
	Remote    bool
	Message   string
}

// Registry maps rule names to evaluators, remote classification and default messages.
// It is safe for concurrent use; every validator holding the same Registry sees
// rules added through Extend.
type Registry struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
	remote     map[string]struct{}
	messages   map[string]string
}

// BuiltinRemoteRules can only be decided by the remote authority.
var BuiltinRemoteRules = []string{"unique", "exists", "password", "current_password"}

// NewRegistry returns a Registry populated with the built-in rule catalog.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for name, eval := range builtinEvaluators() {
		r.evaluators[name] = eval
	}
	for _, name := range BuiltinRemoteRules {
		r.remote[name] = struct{}{}
	}
	for name, msg := range defaultMessages {
		r.messages[name] = msg
	}
	return r
}

// NewEmptyRegistry returns a Registry without any rules.
func NewEmptyRegistry() *Registry {
	return &Registry{
		evaluators: make(map[string]Evaluator),
		remote:     make(map[string]struct{}),
		messages:   make(map[string]string),
	}
}

// Has reports whether name has a local evaluator or is known as remote.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, local := r.evaluators[name]
	_, remote := r.remote[name]
	return local || remote
}

// Get returns the local evaluator for name.
func (r *Registry) Get(name string) (Evaluator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	eval, ok := r.evaluators[name]
	return eval, ok
}

// IsRemote reports whether name must be decided by the remote authority.
func (r *Registry) IsRemote(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.remote[name]
	return ok
}

// Extend registers a local evaluator under name, replacing any built-in or earlier
// registration, including a remote classification. A non-empty message becomes
// the rule's default template.
func (r *Registry) Extend(name string, eval Evaluator, message string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRule)
	}
	if eval == nil {
		return fmt.Errorf("%w: nil evaluator for %q", ErrInvalidRule, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.evaluators[name] = eval
	delete(r.remote, name)
	if message != "" {
		r.messages[name] = message
	}
	return nil
}

// RegisterRemote marks name as remote-only. Any local evaluator stays registered
// but is no longer consulted. A non-empty message becomes the default template.
func (r *Registry) RegisterRemote(name string, message string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRule)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.remote[name] = struct{}{}
	if message != "" {
		r.messages[name] = message
	}
	return nil
}

// SetMessage replaces the default template of name.
func (r *Registry) SetMessage(name, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[name] = message
}

// Message returns the default template for name, or DefaultMessage if none is registered.
func (r *Registry) Message(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if msg, ok := r.messages[name]; ok && msg != "" {
		return msg
	}
	return DefaultMessage
}

// Lookup returns the full registration for name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	eval, local := r.evaluators[name]
	_, remote := r.remote[name]
	if !local && !remote {
		return Registration{}, false
	}
	return Registration{
		Name:      name,
		Evaluator: eval,
		Remote:    remote,
		Message:   r.messages[name],
	}, true
}

// Names lists every known rule name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.evaluators)+len(r.remote))
	for name := range r.evaluators {
		names = append(names, name)
	}
	for name := range r.remote {
		if _, ok := r.evaluators[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
