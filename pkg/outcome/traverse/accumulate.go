package traverse

import (
	"context"

	"github.com/ferrous-go/outcome/pkg/outcome"
	"github.com/ferrous-go/outcome/pkg/outcome/valid"
)

// SequenceValid collapses ordered validations into one, never stopping
// early: every invalid element contributes its error sequence, concatenated
// in element order. Only if every element is valid does it yield the ordered
// payloads.
func SequenceValid[T any](ctx context.Context, vs []valid.Validated[T]) valid.Validated[[]T] {
	values := make([]T, 0, len(vs))
	var errs []error

	for _, v := range vs {
		if err := ctx.Err(); err != nil {
			return valid.Invalid[[]T](err)
		}
		if v.IsInvalid() {
			errs = append(errs, v.Errs()...)
			continue
		}
		values = append(values, v.Value())
	}

	if len(errs) > 0 {
		return valid.Invalid[[]T](errs...)
	}
	return valid.Valid(values)
}

// TraverseValid runs op over every element, accumulating all errors instead
// of short-circuiting. Independent validations (form fields, record columns)
// report every problem in one pass.
func TraverseValid[In, Out any](ctx context.Context, items []In,
	op func(ctx context.Context, item In) valid.Validated[Out]) valid.Validated[[]Out] {

	if op == nil {
		panic("traverse: TraverseValid requires a non-nil operation")
	}

	values := make([]Out, 0, len(items))
	var errs []error

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			return valid.Invalid[[]Out](errs...)
		}
		v := op(ctx, item)
		if v.IsInvalid() {
			errs = append(errs, v.Errs()...)
			continue
		}
		values = append(values, v.Value())
	}

	if len(errs) > 0 {
		return valid.Invalid[[]Out](errs...)
	}
	return valid.Valid(values)
}

// TraverseAccum is TraverseValid for operations that return a Result,
// lifting each failure into a length-1 error sequence.
func TraverseAccum[In, Out any](ctx context.Context, items []In,
	op func(ctx context.Context, item In) outcome.Result[Out]) valid.Validated[[]Out] {

	if op == nil {
		panic("traverse: TraverseAccum requires a non-nil operation")
	}
	return TraverseValid(ctx, items, func(ctx context.Context, item In) valid.Validated[Out] {
		return valid.FromResult(op(ctx, item))
	})
}
