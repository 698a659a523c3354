package validator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/remote"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestRemoteRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("remote message wins over local formatting", func(t *testing.T) {
		t.Parallel()

		oracle := &countingOracle{}
		v := newValidator(t, validator.WithField("email", "required|unique:users,email"), validator.WithOracle(oracle))

		got := v.ValidateField(ctx, "email", "taken", nil)
		assert.Equal(t, []string{"server says taken"}, got.Errors)
		assert.Equal(t, []string{"unique"}, got.FailedRules)

		got = v.ValidateField(ctx, "email", "silent", nil)
		assert.Equal(t, []string{"The email has already been taken."}, got.Errors)
	})

	t.Run("request carries rule, parameters, messages and attributes", func(t *testing.T) {
		t.Parallel()

		oracle := &countingOracle{}
		v := newValidator(t,
			validator.WithField("email", "unique:users,email"),
			validator.WithOracle(oracle),
			validator.WithMessages(map[string]string{"unique": "Taken!"}),
			validator.WithAttributes(map[string]string{"email": "e-mail"}),
		)
		v.ValidateField(ctx, "email", "a@b.c", nil)

		reqs := oracle.requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, "email", reqs[0].Field)
		assert.Equal(t, "a@b.c", reqs[0].Value)
		assert.Equal(t, "unique", reqs[0].Rule)
		assert.Equal(t, []string{"users", "email"}, reqs[0].Parameters)
		assert.Equal(t, "Taken!", reqs[0].Messages["unique"])
		assert.Equal(t, "e-mail", reqs[0].Attributes["email"])
	})

	t.Run("ajax prefix and unknown rules go remote", func(t *testing.T) {
		t.Parallel()

		oracle := &countingOracle{}
		v := newValidator(t,
			validator.WithField("email", "ajax:email"),
			validator.WithField("slug", "slug_available:posts"),
			validator.WithOracle(oracle),
		)

		assert.True(t, v.ValidateField(ctx, "email", "not-an-email-but-server-decides", nil).Valid)
		assert.False(t, v.ValidateField(ctx, "slug", "taken", nil).Valid)
		assert.Equal(t, int32(2), oracle.calls.Load())
	})

	t.Run("registered remote rule", func(t *testing.T) {
		t.Parallel()

		oracle := &countingOracle{}
		v := newValidator(t, validator.WithField("code", "voucher"), validator.WithOracle(oracle))
		require.NoError(t, v.RegisterRemote("voucher", "The :attribute is not a valid voucher."))

		got := v.ValidateField(ctx, "code", "silent", nil)
		assert.Equal(t, []string{"The code is not a valid voucher."}, got.Errors)
	})

	t.Run("empty values skip the remote call", func(t *testing.T) {
		t.Parallel()

		oracle := &countingOracle{}
		v := newValidator(t, validator.WithField("email", "unique:users"), validator.WithOracle(oracle))

		assert.True(t, v.ValidateField(ctx, "email", "", nil).Valid)
		assert.Zero(t, oracle.calls.Load())
	})

	t.Run("verdicts are cached per validator", func(t *testing.T) {
		t.Parallel()

		oracle := &countingOracle{}
		a := newValidator(t, validator.WithField("email", "unique:users"), validator.WithOracle(oracle))
		b := newValidator(t, validator.WithField("email", "unique:users"), validator.WithOracle(oracle))

		a.ValidateField(ctx, "email", "x@y.z", nil)
		a.ValidateField(ctx, "email", "x@y.z", nil)
		assert.Equal(t, int32(1), oracle.calls.Load())
		assert.Equal(t, int64(1), a.RemoteStats().Hits)

		b.ValidateField(ctx, "email", "x@y.z", nil)
		assert.Equal(t, int32(2), oracle.calls.Load())

		a.ClearRemoteCache()
		a.ValidateField(ctx, "email", "x@y.z", nil)
		assert.Equal(t, int32(3), oracle.calls.Load())
	})
}

func TestRemoteRules_Coalescing(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	oracle := remote.OracleFunc(func(ctx context.Context, _ remote.Request) (remote.Response, error) {
		calls.Add(1)
		select {
		case <-release:
		case <-ctx.Done():
			return remote.Response{}, ctx.Err()
		}
		return remote.Response{Valid: false, Message: "taken"}, nil
	})
	v := newValidator(t, validator.WithField("email", "unique:users"), validator.WithOracle(oracle))

	var wg sync.WaitGroup
	results := make([]validator.Verdict, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = v.ValidateField(context.Background(), "email", "a@b.c", nil)
		}()
	}

	require.Eventually(t, func() bool {
		return v.RemoteStats().Coalesced == 1 && v.IsValidating("email")
	}, time.Second, 5*time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, results[0], results[1])
	assert.Equal(t, []string{"taken"}, results[0].Errors)
	assert.False(t, v.IsValidating("email"))
	assert.True(t, v.IsTouched("email"))
}

func TestRemoteRules_Timeout(t *testing.T) {
	t.Parallel()

	oracle := remote.OracleFunc(func(ctx context.Context, _ remote.Request) (remote.Response, error) {
		<-ctx.Done()
		return remote.Response{}, ctx.Err()
	})
	cfg := validator.DefaultConfig()
	cfg.RemoteTimeout = 30 * time.Millisecond
	v := newValidator(t,
		validator.WithConfig(cfg),
		validator.WithField("email", "unique:users"),
		validator.WithOracle(oracle),
	)

	got := v.ValidateField(context.Background(), "email", "a@b.c", nil)
	assert.False(t, got.Valid)
	assert.Equal(t, []string{remote.DefaultTimeoutMessage}, got.Errors)
	assert.Zero(t, v.RemoteStats().Size)
}

func TestRemoteRules_HTTPEndpoint(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	r := chi.NewRouter()
	r.Post("/validate", func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
		if req.Header.Get("X-CSRF-TOKEN") != "csrf" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var body remote.Request
		_ = json.NewDecoder(req.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		if body.Value == "taken@example.com" {
			_, _ = w.Write([]byte(`{"valid":false,"message":"The email has already been taken."}`))
			return
		}
		_, _ = w.Write([]byte(`true`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	v := newValidator(t,
		validator.WithField("email", "required|email|unique:users,email"),
		validator.WithRemoteURL(srv.URL+"/validate"),
		validator.WithHTTPOptions(remote.WithHeader("X-CSRF-TOKEN", "csrf")),
	)

	ctx := context.Background()
	assert.Equal(t, []string{"The email has already been taken."},
		v.ValidateField(ctx, "email", "taken@example.com", nil).Errors)
	assert.True(t, v.ValidateField(ctx, "email", "free@example.com", nil).Valid)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRemoteRules_UnreachableEndpoint(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("default relative URL cannot be dialled", func(t *testing.T) {
		t.Parallel()

		v := newValidator(t, validator.WithField("email", "unique:users"))
		got := v.ValidateField(ctx, "email", "a@b.c", nil)
		assert.False(t, got.Valid)
		assert.Equal(t, []string{remote.DefaultFailureMessage}, got.Errors)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		v := newValidator(t, validator.WithField("email", "unique:users"), validator.WithRemoteURL(srv.URL))
		got := v.ValidateField(ctx, "email", "a@b.c", nil)
		assert.Equal(t, []string{remote.DefaultFailureMessage}, got.Errors)
	})
}

// blockingOracle answers only once its context ends.
type blockingOracle struct{}

func (blockingOracle) Check(ctx context.Context, _ remote.Request) (remote.Response, error) {
	<-ctx.Done()
	return remote.Response{}, ctx.Err()
}

func TestValidateAll_ParallelWithCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := validator.DefaultConfig()
	cfg.ParallelFields = true
	cfg.RemoteTimeout = 50 * time.Millisecond

	t.Run("local rules still run", func(t *testing.T) {
		t.Parallel()

		v := newValidator(t,
			validator.WithConfig(cfg),
			validator.WithField("a", "required"),
			validator.WithField("b", "required|min:3"),
		)
		form := v.ValidateAll(ctx, map[string]any{"a": "x", "b": "yes"})
		assert.True(t, form.Valid)
		assert.Empty(t, form.Errors)
		assert.True(t, form.Results["a"].Valid)
		assert.True(t, v.IsTouched("a"))
		assert.True(t, v.IsTouched("b"))

		form = v.ValidateAll(ctx, map[string]any{"a": "", "b": "yes"})
		assert.False(t, form.Valid)
		assert.True(t, v.HasError("a"))
		assert.NotEmpty(t, form.Errors["a"])
	})

	t.Run("remote rules fail with a message", func(t *testing.T) {
		t.Parallel()

		v := newValidator(t,
			validator.WithConfig(cfg),
			validator.WithOracle(blockingOracle{}),
			validator.WithField("name", "required"),
			validator.WithField("email", "unique:users"),
		)
		form := v.ValidateAll(ctx, map[string]any{"name": "Ann", "email": "a@example.com"})
		assert.False(t, form.Valid)
		assert.True(t, form.Results["name"].Valid)
		assert.Equal(t, []string{remote.DefaultFailureMessage}, form.Errors["email"])
		assert.Equal(t, []string{remote.DefaultFailureMessage}, v.GetErrors("email"))
		assert.False(t, v.IsValidating("email"))
	})
}
