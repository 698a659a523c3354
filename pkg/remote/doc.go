// Package remote delegates rules that only a server can decide (unique,
// exists, password, current_password and any rule registered as remote) to
// an external validation authority.
//
// An Oracle answers a single Request with a Response. HTTPOracle is the
// standard implementation: it posts
//
//	{"field": "...", "value": ..., "rule": "...", "parameters": [...],
//	 "messages": {...}, "attributes": {...}}
//
// to an endpoint and accepts either {"valid": bool, "message": "..."} or a
// bare JSON boolean in return. Optional retries (with a BackoffStrategy) and
// a CircuitBreaker protect the endpoint.
//
// Delegate sits in front of an Oracle and owns the caching policy:
//
//   - verdicts are cached per field, value, rule and parameters for a TTL
//     (60s by default) in a cache bounded to 100 entries, evicting the
//     oldest inserted entry first;
//   - concurrent identical requests share one outbound call;
//   - every exchange is bounded by a timeout (5s by default); a timeout or
//     any oracle error settles into a failed Result with a fixed advisory
//     message and is not cached.
//
// Example:
//
//	oracle := remote.NewHTTPOracle("https://example.com/validate",
//	    remote.WithHeader("X-CSRF-TOKEN", token),
//	)
//	d := remote.NewDelegate(oracle, remote.WithTimeout(3*time.Second))
//	res := d.Validate(ctx, remote.Request{Field: "email", Value: "a@b.c", Rule: "unique", Parameters: []string{"users"}})
package remote
