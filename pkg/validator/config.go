package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/formrules/pkg/config"
)

// EnvPrefix namespaces the environment variables read by LoadConfig.
const EnvPrefix = "FORMRULES_"

// Config holds the tunables of a Validator.
type Config struct {
	RemoteURL        string        `env:"REMOTE_URL"`
	Debounce         time.Duration `env:"DEBOUNCE"`
	StopOnFirstError bool          `env:"STOP_ON_FIRST_ERROR"`
	RemoteTimeout    time.Duration `env:"REMOTE_TIMEOUT"`
	CacheTTL         time.Duration `env:"CACHE_TTL"`
	CacheMaxEntries  int           `env:"CACHE_MAX_ENTRIES"`
	RemoteRetries    int           `env:"REMOTE_RETRIES"`
	ParallelFields   bool          `env:"PARALLEL_FIELDS"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		RemoteURL:        "/validate",
		Debounce:         300 * time.Millisecond,
		StopOnFirstError: true,
		RemoteTimeout:    5 * time.Second,
		CacheTTL:         60 * time.Second,
		CacheMaxEntries:  100,
	}
}

// LoadConfig overlays FORMRULES_* environment variables on DefaultConfig.
func LoadConfig(opts ...config.Option) (Config, error) {
	cfg := DefaultConfig()
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Parse(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every unusable setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce must not be negative, got %s", c.Debounce))
	}
	if c.RemoteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("remote timeout must be positive, got %s", c.RemoteTimeout))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("cache ttl must be positive, got %s", c.CacheTTL))
	}
	if c.CacheMaxEntries <= 0 {
		errs = append(errs, fmt.Errorf("cache max entries must be positive, got %d", c.CacheMaxEntries))
	}
	if c.RemoteRetries < 0 {
		errs = append(errs, fmt.Errorf("remote retries must not be negative, got %d", c.RemoteRetries))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
