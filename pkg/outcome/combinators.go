package outcome

import (
	"context"
)

// Map applies f to a successful payload and rewraps the result. Failures and
// cancellations pass through untouched; f never runs on them.
func Map[In, Out any](ctx context.Context, input Result[In], f func(ctx context.Context, v In) Out) Result[Out] {
	mustArm("Map", f == nil)
	if input.IsSuccess() {
		return Success(f(ctx, input.value))
	}
	return CancelFrom[In, Out](input)
}

// Bind sequences a dependent step. The pipeline stops at the first
// non-success and f never runs after that.
func Bind[In, Out any](ctx context.Context, input Result[In], f func(ctx context.Context, v In) Result[Out]) Result[Out] {
	mustArm("Bind", f == nil)
	if input.IsSuccess() {
		return f(ctx, input.value)
	}
	return CancelFrom[In, Out](input)
}

// Try runs a native (Out, error) operation on a successful payload.
func Try[In, Out any](ctx context.Context, input Result[In], f func(ctx context.Context, v In) (Out, error)) Result[Out] {
	mustArm("Try", f == nil)
	if input.IsSuccess() {
		return From(f(ctx, input.value))
	}
	return CancelFrom[In, Out](input)
}

// Ensure turns a successful value into a Failure when check reports an error.
func Ensure[T any](ctx context.Context, input Result[T], check func(ctx context.Context, v T) error) Result[T] {
	mustArm("Ensure", check == nil)
	if input.IsSuccess() {
		if err := check(ctx, input.value); err != nil {
			return Fail[T](err)
		}
	}
	return input
}

// Tee runs a side effect on a successful payload and returns the input unchanged.
func Tee[T any](ctx context.Context, input Result[T], effect func(ctx context.Context, v T)) Result[T] {
	mustArm("Tee", effect == nil)
	if input.IsSuccess() {
		effect(ctx, input.value)
	}
	return input
}

// TeeErr runs a side effect on the carried error and returns the input unchanged.
func TeeErr[T any](ctx context.Context, input Result[T], effect func(ctx context.Context, err error)) Result[T] {
	mustArm("TeeErr", effect == nil)
	if input.IsFailure() {
		effect(ctx, input.err)
	}
	return input
}

// Match eliminates a Result into a plain value. Exactly one arm runs;
// cancellations take the failure arm. Both arms are required.
func Match[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	mustArm("Match", onSuccess == nil || onFailure == nil)
	if input.IsSuccess() {
		return onSuccess(ctx, input.value)
	}
	return onFailure(ctx, input.err)
}

// MatchDo is the action form of Match.
func MatchDo[T any](ctx context.Context, input Result[T],
	onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context, err error)) {

	mustArm("MatchDo", onSuccess == nil || onFailure == nil)
	if input.IsSuccess() {
		onSuccess(ctx, input.value)
		return
	}
	onFailure(ctx, input.err)
}

// Finally eliminates a Result with an explicit cancellation arm.
func Finally[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	mustArm("Finally", onSuccess == nil || onFailure == nil || onCancel == nil)
	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.value)
	case input.IsCancel():
		return onCancel(ctx, input.err)
	default:
		return onFailure(ctx, input.err)
	}
}

// OrElse returns the input if successful, otherwise the alternative.
func OrElse[T any](input, alternative Result[T]) Result[T] {
	if input.IsSuccess() {
		return input
	}
	return alternative
}

// Recover maps a Failure back onto the success track. Cancellations are not
// recoverable and pass through.
func Recover[T any](ctx context.Context, input Result[T], f func(ctx context.Context, err error) T) Result[T] {
	mustArm("Recover", f == nil)
	if input.v == variantFailure {
		return Success(f(ctx, input.err))
	}
	return input
}

func mustArm(op string, missing bool) {
	if missing {
		panic("outcome: " + op + " requires non-nil function arguments")
	}
}
