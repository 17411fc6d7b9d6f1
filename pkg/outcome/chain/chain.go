package chain

import (
	"context"

	"github.com/ferrous-go/outcome/pkg/outcome"
)

// Chain wraps a Result with its context to enable fluent pipelines.
type Chain[T any] struct {
	ctx    context.Context
	result outcome.Result[T]
}

// Start begins a chain from an existing Result.
func Start[T any](ctx context.Context, result outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, result: result}
}

// FromValue begins a chain from a successful value.
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, outcome.Success(value))
}

// Result returns the underlying Result.
func (c Chain[T]) Result() outcome.Result[T] {
	return c.result
}

// Then chains a function that returns a Result of a new type.
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, v T) outcome.Result[U]) Chain[U] {
	return Chain[U]{
		ctx:    c.ctx,
		result: outcome.Bind(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a native (U, error) function.
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, v T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx:    c.ctx,
		result: outcome.Try(c.ctx, c.result, try),
	}
}

// Map chains a pure transformation.
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, v T) U) Chain[U] {
	return Chain[U]{
		ctx:    c.ctx,
		result: outcome.Map(c.ctx, c.result, onSuccess),
	}
}

// Then chains a same-type step without a package-level call.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, v T) outcome.Result[T]) Chain[T] {
	return Then(c, onSuccess)
}

// Ensure fails the chain when check reports an error.
func (c Chain[T]) Ensure(check func(ctx context.Context, v T) error) Chain[T] {
	return Chain[T]{
		ctx:    c.ctx,
		result: outcome.Ensure(c.ctx, c.result, check),
	}
}

// Tee runs a side effect on a successful value without changing the result.
func (c Chain[T]) Tee(effect func(ctx context.Context, v T)) Chain[T] {
	return Chain[T]{
		ctx:    c.ctx,
		result: outcome.Tee(c.ctx, c.result, effect),
	}
}

// Or keeps c when successful, otherwise falls back to alternative. A
// cancelled chain wins over a failed one when neither succeeded.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	if alternative.result.IsSuccess() {
		return alternative
	}
	if c.result.IsCancel() {
		return c
	}
	if alternative.result.IsCancel() {
		return alternative
	}
	return c
}

// And returns the first non-success of the two chains, or required itself.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain into a final value.
func Finally[T, U any](c Chain[T],
	onSuccess func(ctx context.Context, v T) U,
	onFailure func(ctx context.Context, err error) U,
	onCancel func(ctx context.Context, err error) U) U {

	return outcome.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
