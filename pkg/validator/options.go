package validator

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/dmitrymomot/formrules/pkg/catalog"
	"github.com/dmitrymomot/formrules/pkg/remote"
	"github.com/dmitrymomot/formrules/pkg/rules"
)

// Option configures a Validator.
type Option func(*Validator) error

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(v *Validator) error {
		v.cfg = cfg
		return nil
	}
}

// WithRules declares rules for several fields. Each value is a pipe-delimited
// string, a list of segments or a rules.Set. New fields are appended in
// sorted key order.
func WithRules(declared map[string]any) Option {
	return func(v *Validator) error {
		for _, field := range slices.Sorted(maps.Keys(declared)) {
			if err := v.declare(field, declared[field]); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithField declares the rules of one field. Declaration order is validation order.
func WithField(field string, spec any) Option {
	return func(v *Validator) error {
		return v.declare(field, spec)
	}
}

// WithMessages adds message overrides keyed "rule" or "field.rule".
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) error {
		maps.Copy(v.messages, messages)
		return nil
	}
}

// WithAttributes adds human labels for field names.
func WithAttributes(attributes map[string]string) Option {
	return func(v *Validator) error {
		maps.Copy(v.attributes, attributes)
		return nil
	}
}

// WithCatalog applies the messages and attributes of a loaded catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(v *Validator) error {
		if c == nil {
			return nil
		}
		maps.Copy(v.messages, c.Messages)
		maps.Copy(v.attributes, c.Attributes)
		return nil
	}
}

// WithRegistry shares a rule registry between validators. By default every
// Validator owns a fresh one.
func WithRegistry(reg *rules.Registry) Option {
	return func(v *Validator) error {
		if reg == nil {
			return fmt.Errorf("%w: nil registry", ErrInvalidConfig)
		}
		v.registry = reg
		return nil
	}
}

// WithOracle answers remote rules with o instead of posting to RemoteURL.
func WithOracle(o remote.Oracle) Option {
	return func(v *Validator) error {
		v.oracle = o
		return nil
	}
}

// WithHTTPOptions passes options to the default HTTP oracle, e.g. a CSRF header.
func WithHTTPOptions(opts ...remote.HTTPOption) Option {
	return func(v *Validator) error {
		v.httpOpts = append(v.httpOpts, opts...)
		return nil
	}
}

// WithRemoteURL sets the endpoint of the default HTTP oracle.
func WithRemoteURL(url string) Option {
	return func(v *Validator) error {
		v.cfg.RemoteURL = url
		return nil
	}
}

// WithName names the form. The name is attached to log records as "form".
func WithName(name string) Option {
	return func(v *Validator) error {
		v.name = name
		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) error {
		if l != nil {
			v.logger = l
		}
		return nil
	}
}

// WithObserver registers a lifecycle observer. Observers run in registration order.
func WithObserver(o Observer) Option {
	return func(v *Validator) error {
		if o != nil {
			v.observers = append(v.observers, o)
		}
		return nil
	}
}

func WithStopOnFirstError(stop bool) Option {
	return func(v *Validator) error {
		v.cfg.StopOnFirstError = stop
		return nil
	}
}

func WithDebounce(d time.Duration) Option {
	return func(v *Validator) error {
		v.cfg.Debounce = d
		return nil
	}
}

// WithClock sets the time source for relative dates and the remote cache.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) error {
		if now != nil {
			v.now = now
		}
		return nil
	}
}
