package traverse

import (
	"context"
	"errors"

	"github.com/ferrous-go/outcome/pkg/outcome"
	"github.com/ferrous-go/outcome/pkg/outcome/opt"
)

// ErrNoneSucceeded is returned by FirstSuccess over an empty input.
var ErrNoneSucceeded = errors.New("traverse: no operation succeeded")

// Collect returns the successful payloads in relative order, discarding
// failures. It never fails.
func Collect[T any](rs []outcome.Result[T]) []T {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if v, ok := r.Get(); ok {
			values = append(values, v)
		}
	}
	return values
}

// CollectSome returns the present payloads in relative order.
func CollectSome[T any](os []opt.Option[T]) []T {
	values := make([]T, 0, len(os))
	for _, o := range os {
		if v, ok := o.Get(); ok {
			values = append(values, v)
		}
	}
	return values
}

// Partition splits results into ordered payloads and ordered errors. Both
// slices preserve the relative input order; it never fails.
func Partition[T any](rs []outcome.Result[T]) (values []T, errs []error) {
	values = make([]T, 0, len(rs))
	errs = make([]error, 0)
	for _, r := range rs {
		if v, ok := r.Get(); ok {
			values = append(values, v)
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}

// FirstSuccess runs op over the elements in order and returns the first
// success, stopping further evaluation. If no element succeeds the failure
// carries every error joined in element order.
func FirstSuccess[In, Out any](ctx context.Context, items []In,
	op func(ctx context.Context, item In) outcome.Result[Out]) outcome.Result[Out] {

	if op == nil {
		panic("traverse: FirstSuccess requires a non-nil operation")
	}

	var errs []error
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return outcome.Cancel[Out](err)
		}
		r := op(ctx, item)
		if r.IsSuccess() {
			return r
		}
		errs = append(errs, r.Err())
	}

	if len(errs) == 0 {
		return outcome.Fail[Out](ErrNoneSucceeded)
	}
	return outcome.Fail[Out](errors.Join(errs...))
}

// FirstSome scans for the first present option.
func FirstSome[T any](os []opt.Option[T]) opt.Option[T] {
	for _, o := range os {
		if o.IsSome() {
			return o
		}
	}
	return opt.None[T]()
}

// Choose is filter+map+first: it runs op over the elements in order and
// stops at the first Some. Later elements never run.
//
// An option carries no interruption variant, so a cancelled context stops
// the scan and yields None, indistinguishable from no element matching. Use
// FirstSuccess when interruption must be reported.
func Choose[In, Out any](ctx context.Context, items []In,
	op func(ctx context.Context, item In) opt.Option[Out]) opt.Option[Out] {

	if op == nil {
		panic("traverse: Choose requires a non-nil operation")
	}

	for _, item := range items {
		if ctx.Err() != nil {
			return opt.None[Out]()
		}
		if o := op(ctx, item); o.IsSome() {
			return o
		}
	}
	return opt.None[Out]()
}
