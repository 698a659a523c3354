// Package async provides a small generic Future type used to share the eventual
// result of one computation among many waiters.
//
// A Future is obtained either from Async, which runs the supplied function in its
// own goroutine, or from NewFuture, which hands back a settle function so the owner
// decides when and with what the Future completes. The second form is what the
// remote delegate uses to coalesce identical in-flight requests and what the
// validator uses for its per-field debounce slot: every caller that joins the slot
// awaits the same Future and therefore observes the same final result.
//
// # Usage
//
//	future := async.Async(ctx, req, func(ctx context.Context, r Request) (Result, error) {
//		return oracle.Check(ctx, r)
//	})
//	res, err := future.Await()
//
//	// externally settled
//	f, settle := async.NewFuture[Verdict]()
//	go func() { settle(run(), nil) }()
//	v, err := f.AwaitContext(ctx)
//
// # Error Handling
//
// The package does not introduce custom error types; functions return the error
// produced by the user callback or, for AwaitContext, the context error.
package async
