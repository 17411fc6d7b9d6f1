package traverse

import (
	"context"

	"github.com/ferrous-go/outcome/pkg/outcome"
)

// Sequence collapses ordered results into one result of the ordered
// payloads. It stops at the first non-success and returns it re-wrapped;
// cancellation is checked before each element. An empty input yields a
// Success of an empty slice.
func Sequence[T any](ctx context.Context, rs []outcome.Result[T]) outcome.Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if err := ctx.Err(); err != nil {
			return outcome.Cancel[[]T](err)
		}
		v, ok := r.Get()
		if !ok {
			return outcome.CancelFrom[T, []T](r)
		}
		values = append(values, v)
	}
	return outcome.Success(values)
}

// Traverse runs op over the elements strictly in order, short-circuiting on
// the first non-success: later elements and their operations never run. A
// cancelled context aborts at the next element boundary.
func Traverse[In, Out any](ctx context.Context, items []In,
	op func(ctx context.Context, item In) outcome.Result[Out]) outcome.Result[[]Out] {

	if op == nil {
		panic("traverse: Traverse requires a non-nil operation")
	}

	values := make([]Out, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return outcome.Cancel[[]Out](err)
		}
		r := op(ctx, item)
		v, ok := r.Get()
		if !ok {
			return outcome.CancelFrom[Out, []Out](r)
		}
		values = append(values, v)
	}
	return outcome.Success(values)
}
