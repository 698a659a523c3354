package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/formrules/pkg/async"
	"github.com/dmitrymomot/formrules/pkg/cache"
	"github.com/dmitrymomot/formrules/pkg/logger"
)

const (
	DefaultTimeout         = 5 * time.Second
	DefaultCacheTTL        = 60 * time.Second
	DefaultCacheMaxEntries = 100

	DefaultTimeoutMessage = "Validation timed out. Please try again."
	DefaultFailureMessage = "Validation could not be completed. Please try again."
)

// Result is the settled outcome of a remote check.
// Message is empty when the remote authority left formatting to the caller.
type Result struct {
	Valid   bool
	Message string
}

// Stats is a snapshot of Delegate counters.
type Stats struct {
	Hits      int64
	Coalesced int64
	Misses    int64
	Size      int
}

// Delegate resolves remote rules through an Oracle with per-key request
// coalescing and a bounded TTL cache. Validate never fails: timeouts and
// oracle errors settle into a failed Result.
type Delegate struct {
	oracle Oracle
	logger *slog.Logger

	timeout        time.Duration
	timeoutMessage string
	failureMessage string

	mu       sync.Mutex
	cache    *cache.TTLCache[string, Result]
	inflight map[string]*async.Future[Result]

	hits      atomic.Int64
	coalesced atomic.Int64
	misses    atomic.Int64
}

type delegateOptions struct {
	timeout        time.Duration
	ttl            time.Duration
	maxEntries     int
	now            func() time.Time
	timeoutMessage string
	failureMessage string
	logger         *slog.Logger
}

// Option configures a Delegate.
type Option func(*delegateOptions)

// WithTimeout bounds each remote exchange, retries included.
func WithTimeout(d time.Duration) Option {
	return func(o *delegateOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithCacheTTL sets how long a verdict is reused.
func WithCacheTTL(d time.Duration) Option {
	return func(o *delegateOptions) {
		if d > 0 {
			o.ttl = d
		}
	}
}

// WithCacheMaxEntries bounds the cache; the oldest inserted entry is evicted first.
func WithCacheMaxEntries(n int) Option {
	return func(o *delegateOptions) {
		if n > 0 {
			o.maxEntries = n
		}
	}
}

// WithClock replaces time.Now for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(o *delegateOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithTimeoutMessage sets the message of results settled by a timeout.
func WithTimeoutMessage(msg string) Option {
	return func(o *delegateOptions) {
		if msg != "" {
			o.timeoutMessage = msg
		}
	}
}

// WithFailureMessage sets the message of results settled by any other failure.
func WithFailureMessage(msg string) Option {
	return func(o *delegateOptions) {
		if msg != "" {
			o.failureMessage = msg
		}
	}
}

// WithLogger sets the delegate logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *delegateOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewDelegate creates a Delegate with its own cache. A nil oracle settles every
// check as a failure.
func NewDelegate(oracle Oracle, opts ...Option) *Delegate {
	o := delegateOptions{
		timeout:        DefaultTimeout,
		ttl:            DefaultCacheTTL,
		maxEntries:     DefaultCacheMaxEntries,
		timeoutMessage: DefaultTimeoutMessage,
		failureMessage: DefaultFailureMessage,
		logger:         logger.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var cacheOpts []cache.Option
	if o.now != nil {
		cacheOpts = append(cacheOpts, cache.WithClock(o.now))
	}

	d := &Delegate{
		oracle:         oracle,
		logger:         o.logger,
		timeout:        o.timeout,
		timeoutMessage: o.timeoutMessage,
		failureMessage: o.failureMessage,
		cache:          cache.NewTTLCache[string, Result](o.maxEntries, o.ttl, cacheOpts...),
		inflight:       make(map[string]*async.Future[Result]),
	}
	d.cache.SetEvictCallback(func(key string, _ Result) {
		d.logger.Debug("remote cache entry evicted",
			logger.Component("remote.delegate"),
			logger.CacheKey(key),
		)
	})
	return d
}

// CacheKey is the deterministic key of a request: field, value, rule and parameters.
func CacheKey(req Request) string {
	params := req.Parameters
	if params == nil {
		params = []string{}
	}
	b, err := json.Marshal([]any{req.Field, req.Value, req.Rule, params})
	if err != nil {
		return fmt.Sprintf("%q|%#v|%q|%q", req.Field, req.Value, req.Rule, params)
	}
	return string(b)
}

// Validate resolves req from the cache, joins an identical in-flight request,
// or asks the oracle. The outbound request is not tied to ctx cancellation;
// ctx only bounds how long this caller waits.
func (d *Delegate) Validate(ctx context.Context, req Request) Result {
	key := CacheKey(req)

	d.mu.Lock()
	if res, ok := d.cache.Get(key); ok {
		d.mu.Unlock()
		d.hits.Add(1)
		return res
	}
	if fut, ok := d.inflight[key]; ok {
		d.mu.Unlock()
		d.coalesced.Add(1)
		return d.await(ctx, fut)
	}
	fut, settle := async.NewFuture[Result]()
	d.inflight[key] = fut
	d.mu.Unlock()

	d.misses.Add(1)
	go d.dispatch(context.WithoutCancel(ctx), key, req, settle)
	return d.await(ctx, fut)
}

func (d *Delegate) dispatch(parent context.Context, key string, req Request, settle func(Result, error)) {
	ctx, cancel := context.WithTimeout(parent, d.timeout)
	defer cancel()

	start := time.Now()
	resp, err := async.Async(ctx, req, d.check).AwaitContext(ctx)

	var res Result
	cacheable := false
	switch {
	case err == nil:
		res = Result{Valid: resp.Valid, Message: resp.Message}
		cacheable = true
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrTimeout):
		res = Result{Valid: false, Message: d.timeoutMessage}
		d.logger.WarnContext(ctx, "remote validation timed out",
			logger.Component("remote.delegate"),
			logger.Field(req.Field),
			logger.Rule(req.Rule, req.Parameters...),
			logger.Duration(time.Since(start)),
		)
	default:
		res = Result{Valid: false, Message: d.failureMessage}
		d.logger.WarnContext(ctx, "remote validation failed",
			logger.Component("remote.delegate"),
			logger.Field(req.Field),
			logger.Rule(req.Rule, req.Parameters...),
			logger.Error(err),
		)
	}

	d.mu.Lock()
	if cacheable {
		d.cache.Put(key, res)
	}
	delete(d.inflight, key)
	d.mu.Unlock()

	settle(res, nil)
}

func (d *Delegate) check(ctx context.Context, req Request) (resp Response, err error) {
	if d.oracle == nil {
		return Response{}, fmt.Errorf("%w: no oracle configured", ErrRequestFailed)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: oracle panic: %v", ErrRequestFailed, r)
		}
	}()
	return d.oracle.Check(ctx, req)
}

func (d *Delegate) await(ctx context.Context, fut *async.Future[Result]) Result {
	res, err := fut.AwaitContext(ctx)
	if err == nil {
		return res
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Result{Valid: false, Message: d.timeoutMessage}
	}
	return Result{Valid: false, Message: d.failureMessage}
}

// Stats returns the current counters. Expired entries are purged first so Size
// counts only reusable verdicts.
func (d *Delegate) Stats() Stats {
	d.cache.Purge()
	return Stats{
		Hits:      d.hits.Load(),
		Coalesced: d.coalesced.Load(),
		Misses:    d.misses.Load(),
		Size:      d.cache.Len(),
	}
}

// Clear drops every cached verdict. In-flight requests are unaffected.
func (d *Delegate) Clear() {
	d.cache.Clear()
}

// TimeoutMessage returns the message used for timed-out checks.
func (d *Delegate) TimeoutMessage() string { return d.timeoutMessage }

// FailureMessage returns the message used for failed checks.
func (d *Delegate) FailureMessage() string { return d.failureMessage }
