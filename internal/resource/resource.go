package resource

import (
	"context"
	"sync"
)

// State describes the lifecycle of a Resource.
type State int

const (
	StatePending State = iota
	StateSuccess
	StateFailure
)

// String returns a human-friendly name for the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Resource wraps exactly one asynchronous operation's outcome. It is
// single-use: a new operation requires a new Resource, there is no
// in-place refresh. After settlement the cell never changes again.
type Resource[T any] struct {
	done chan struct{}
	once sync.Once

	// Written once before done is closed; read only after done is closed.
	value T
	err   error
}

// New starts op in its own goroutine and returns the Resource that will
// hold its outcome. The operation receives ctx but runs to completion on
// its own schedule; abandoning the Resource does not cancel it.
func New[T any](ctx context.Context, op func(context.Context) (T, error)) *Resource[T] {
	r := &Resource[T]{done: make(chan struct{})}
	go func() {
		value, err := op(ctx)
		r.settle(value, err)
	}()
	return r
}

// settle records the outcome. Only the first call has any effect.
func (r *Resource[T]) settle(value T, err error) {
	r.once.Do(func() {
		r.value = value
		r.err = err
		close(r.done)
	})
}

// TryRead is the non-blocking read. While the operation is pending it
// returns ready == false and the caller must re-read after Done closes.
// Once settled it returns the identical value or error on every call.
func (r *Resource[T]) TryRead() (value T, err error, ready bool) {
	select {
	case <-r.done:
		return r.value, r.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

// Read blocks until settlement or ctx cancellation. It exists for tests
// and tooling; the UI path uses TryRead plus Done.
func (r *Resource[T]) Read(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed exactly once, when the backing operation settles.
func (r *Resource[T]) Done() <-chan struct{} {
	return r.done
}

// State reports pending/success/failure without blocking.
func (r *Resource[T]) State() State {
	select {
	case <-r.done:
		if r.err != nil {
			return StateFailure
		}
		return StateSuccess
	default:
		return StatePending
	}
}
