package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

const maxResponseBody = 64 * 1024

// HTTPOracle posts Requests as JSON to a validation endpoint.
// Zero value is not usable; use NewHTTPOracle.
type HTTPOracle struct {
	endpoint  string
	client    *http.Client
	headers   map[string]string
	userAgent string
	retries   int
	backoff   BackoffStrategy
	breaker   *CircuitBreaker
	logger    *slog.Logger
}

// HTTPOption configures an HTTPOracle.
type HTTPOption func(*HTTPOracle)

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(o *HTTPOracle) {
		if client != nil {
			o.client = client
		}
	}
}

// WithHeader adds a header to every request, e.g. a CSRF token.
func WithHeader(key, value string) HTTPOption {
	return func(o *HTTPOracle) {
		if key != "" {
			o.headers[key] = value
		}
	}
}

// WithHeaders adds several headers to every request.
func WithHeaders(headers map[string]string) HTTPOption {
	return func(o *HTTPOracle) {
		for k, v := range headers {
			if k != "" {
				o.headers[k] = v
			}
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(o *HTTPOracle) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithRetries sets how many times a temporary failure is retried. Default 0.
func WithRetries(n int) HTTPOption {
	return func(o *HTTPOracle) {
		if n >= 0 {
			o.retries = n
		}
	}
}

// WithBackoff sets the delay strategy between retries.
func WithBackoff(strategy BackoffStrategy) HTTPOption {
	return func(o *HTTPOracle) {
		if strategy != nil {
			o.backoff = strategy
		}
	}
}

// WithCircuitBreaker guards the endpoint with cb. Share one breaker per endpoint.
func WithCircuitBreaker(cb *CircuitBreaker) HTTPOption {
	return func(o *HTTPOracle) {
		o.breaker = cb
	}
}

// WithHTTPLogger sets the logger for retries and failed attempts.
func WithHTTPLogger(l *slog.Logger) HTTPOption {
	return func(o *HTTPOracle) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewHTTPOracle creates an oracle for endpoint. The endpoint must be an absolute
// http or https URL; anything else makes every Check fail with ErrInvalidURL.
func NewHTTPOracle(endpoint string, opts ...HTTPOption) *HTTPOracle {
	o := &HTTPOracle{
		endpoint: endpoint,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		headers:   make(map[string]string),
		userAgent: "formrules/1.0",
		backoff:   DefaultBackoffStrategy(),
		logger:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Endpoint returns the configured URL.
func (o *HTTPOracle) Endpoint() string {
	return o.endpoint
}

// Check posts req and decodes the verdict. Non-2xx responses whose body is still
// a verdict are honoured. 4xx responses without a verdict are not retried.
func (o *HTTPOracle) Check(ctx context.Context, req Request) (Response, error) {
	if err := validateEndpoint(o.endpoint); err != nil {
		return Response{}, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: encode request: %w", ErrRequestFailed, err)
	}

	if o.breaker != nil && !o.breaker.Allow() {
		return Response{}, ErrCircuitOpen
	}

	var lastErr error
	for attempt := 0; attempt <= o.retries; attempt++ {
		if attempt > 0 {
			delay := o.backoff.NextInterval(attempt)
			o.logger.DebugContext(ctx, "retrying remote validation",
				logger.Component("remote.http"),
				logger.Field(req.Field),
				logger.Rule(req.Rule, req.Parameters...),
				logger.Attempt(attempt+1),
				logger.Duration(delay),
			)
			select {
			case <-ctx.Done():
				return Response{}, contextError(ctx, lastErr)
			case <-time.After(delay):
			}
		}

		resp, status, err := o.attempt(ctx, payload)
		o.record(err)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return Response{}, contextError(ctx, err)
		}
		if isPermanent(status, err) {
			return Response{}, fmt.Errorf("%w: %w", ErrPermanentFailure, err)
		}
	}

	return Response{}, fmt.Errorf("%w after %d attempts: %w", ErrRequestFailed, o.retries+1, lastErr)
}

func (o *HTTPOracle) attempt(ctx context.Context, payload []byte) (Response, int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", o.userAgent)
	for k, v := range o.headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Response{}, 0, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return Response{}, 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		return Response{}, httpResp.StatusCode, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	var resp Response
	decodeErr := json.Unmarshal(body, &resp)
	if decodeErr == nil {
		return resp, httpResp.StatusCode, nil
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return Response{}, httpResp.StatusCode, fmt.Errorf("%w: %w", ErrInvalidResponse, decodeErr)
	}
	return Response{}, httpResp.StatusCode, fmt.Errorf("%w: status %d: %s",
		ErrRequestFailed, httpResp.StatusCode, sanitizeBody(body))
}

func (o *HTTPOracle) record(err error) {
	if o.breaker == nil {
		return
	}
	if err == nil {
		o.breaker.RecordSuccess()
		return
	}
	o.breaker.RecordFailure()
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrInvalidURL, endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}

// isPermanent reports failures a retry cannot fix: malformed verdicts and 4xx
// responses other than 408, 425 and 429.
func isPermanent(status int, err error) bool {
	if errors.Is(err, ErrInvalidResponse) {
		return true
	}
	if status >= 400 && status < 500 {
		switch status {
		case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
			return false
		}
		return true
	}
	return false
}

func contextError(ctx context.Context, last error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		if last != nil && errors.Is(last, ErrTimeout) {
			return last
		}
		return errors.Join(ErrTimeout, ctx.Err())
	}
	return errors.Join(ErrRequestFailed, ctx.Err())
}

func sanitizeBody(body []byte) string {
	s := strings.ReplaceAll(string(body), "\n", " ")
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
