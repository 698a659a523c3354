package async

import (
	"context"
	"sync"
)

// Future represents the result of an asynchronous computation.
// Any number of goroutines may wait on the same Future; all of them observe
// the single value it is settled with.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// NewFuture returns an unsettled Future together with the function that settles it.
// Only the first call to settle has an effect; later calls are ignored.
func NewFuture[U any]() (*Future[U], func(U, error)) {
	f := &Future[U]{done: make(chan struct{})}
	return f, f.settle
}

func (f *Future[U]) settle(result U, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to end, whichever comes first.
// Giving up on the wait does not cancel the computation; other waiters still
// receive its result.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f, settle := NewFuture[U]()

	go func() {
		// Early exit prevents running work for a caller that already gave up
		select {
		case <-ctx.Done():
			var zero U
			settle(zero, ctx.Err())
			return
		default:
		}

		settle(fn(ctx, param))
	}()

	return f
}

// WaitAll waits for all futures to complete and returns a slice of their results and
// the first error encountered, if any. Results keep the order of the futures.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
