package traverse

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/ferrous-go/outcome/pkg/outcome"
)

// Parallel runs op over every element with at most workers operations in
// flight. A workers value <= 0 falls back to the context-carried option and
// then to unbounded (one slot per element).
//
// Parallel does not short-circuit: absent cancellation every operation is
// started and awaited. Each operation commits its result to its own slot of
// a position-indexed buffer, so the payload order always matches the input
// order regardless of completion order. After all operations finish the
// buffer is scanned in input order and the first non-success, if any, is
// returned.
//
// Cancellation is cooperative: it stops unstarted slots (they become Cancel
// results) and is visible to in-flight operations through their context.
func Parallel[In, Out any](ctx context.Context, items []In, workers int,
	op func(ctx context.Context, item In) outcome.Result[Out]) outcome.Result[[]Out] {

	if op == nil {
		panic("traverse: Parallel requires a non-nil operation")
	}
	if err := ctx.Err(); err != nil {
		return outcome.Cancel[[]Out](err)
	}
	if len(items) == 0 {
		return outcome.Success(make([]Out, 0))
	}

	if workers <= 0 {
		workers = MaxWorkers(ctx, len(items))
	}
	if workers <= 0 || workers > len(items) {
		workers = len(items)
	}

	sem := semaphore.NewWeighted(int64(workers))
	buf := make([]outcome.Result[Out], len(items))
	var wg sync.WaitGroup

	for i, item := range items {
		if err := sem.Acquire(ctx, 1); err != nil {
			buf[i] = outcome.Cancel[Out](err)
			continue
		}

		wg.Add(1)
		go func(i int, item In) {
			defer wg.Done()
			defer sem.Release(1)
			buf[i] = op(ctx, item)
		}(i, item)
	}
	wg.Wait()

	values := make([]Out, len(items))
	for i, r := range buf {
		v, ok := r.Get()
		if !ok {
			return outcome.CancelFrom[Out, []Out](r)
		}
		values[i] = v
	}
	return outcome.Success(values)
}
