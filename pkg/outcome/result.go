package outcome

import (
	"context"
	"fmt"
)

// variant discriminates the three Result states. The zero variant is success,
// so the zero Result[T] is Success of T's zero value.
type variant uint8

const (
	variantSuccess variant = iota
	variantFailure
	variantCancel
)

// Result is an immutable success-or-failure value. It is either Success with
// a payload, Failure with an error, or Cancel with the cancellation cause.
// Cancel counts as a failure for every combinator; IsCancel distinguishes it
// where callers care.
type Result[T any] struct {
	value T
	err   error
	v     variant
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps err as a Failure. A nil err is a programmer error and panics.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("outcome: Fail called with nil error")
	}
	return Result[T]{err: err, v: variantFailure}
}

// Cancel wraps err as a cancellation. A nil err defaults to context.Canceled.
func Cancel[T any](err error) Result[T] {
	if err == nil {
		err = context.Canceled
	}
	return Result[T]{err: err, v: variantCancel}
}

// From adapts a native (value, error) pair. Cancellation errors become
// Cancel, other errors become Failure.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		if IsCancellation(err) {
			return Cancel[T](err)
		}
		return Fail[T](err)
	}
	return Success(v)
}

// CancelFrom re-wraps a non-success Result under another payload type,
// preserving the Failure/Cancel distinction. Panics on a Success input.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	if from.IsSuccess() {
		panic("outcome: CancelFrom called on a success")
	}
	return Result[Out]{err: from.err, v: from.v}
}

func (r Result[T]) IsSuccess() bool {
	return r.v == variantSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.v != variantSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.v == variantCancel
}

// Value returns the payload, which is the zero T unless IsSuccess.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Get returns the payload and whether this is a Success.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.v == variantSuccess
}

// MustValue returns the payload or panics with the carried error.
func (r Result[T]) MustValue() T {
	if r.v != variantSuccess {
		panic(fmt.Sprintf("outcome: MustValue on %s", r))
	}
	return r.value
}

func (r Result[T]) String() string {
	switch r.v {
	case variantFailure:
		return fmt.Sprintf("Failure(%v)", r.err)
	case variantCancel:
		return fmt.Sprintf("Cancel(%v)", r.err)
	default:
		return fmt.Sprintf("Success(%v)", r.value)
	}
}

// Equal reports structural equality: same variant, and equal payloads for
// successes or equal error messages otherwise.
func Equal[T comparable](a, b Result[T]) bool {
	if a.v != b.v {
		return false
	}
	if a.v == variantSuccess {
		return a.value == b.value
	}
	return sameError(a.err, b.err)
}

func sameError(a, b error) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Error() == b.Error()
}
