package valid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ferrous-go/outcome/pkg/outcome"
)

// Validated is a success-or-all-errors value. Valid carries a payload,
// Invalid carries a non-empty error sequence in the order the errors were
// collected. The zero Validated is Valid of T's zero value, mirroring
// Result; there is no third state.
type Validated[T any] struct {
	value T
	errs  []error
}

func Valid[T any](v T) Validated[T] {
	return Validated[T]{value: v}
}

// Invalid wraps one or more errors. Nil entries are dropped; at least one
// non-nil error is required and an empty call panics.
func Invalid[T any](errs ...error) Validated[T] {
	kept := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	if len(kept) == 0 {
		panic("valid: Invalid requires at least one non-nil error")
	}
	return Validated[T]{errs: kept}
}

func (v Validated[T]) IsValid() bool {
	return len(v.errs) == 0
}

func (v Validated[T]) IsInvalid() bool {
	return len(v.errs) > 0
}

// Value returns the payload, which is the zero T unless IsValid.
func (v Validated[T]) Value() T {
	return v.value
}

// Errs returns a copy of the collected errors, empty for a Valid value.
func (v Validated[T]) Errs() []error {
	out := make([]error, len(v.errs))
	copy(out, v.errs)
	return out
}

func (v Validated[T]) String() string {
	if len(v.errs) == 0 {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	msgs := make([]string, len(v.errs))
	for i, err := range v.errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("Invalid(%s)", strings.Join(msgs, "; "))
}

// FromResult converts structurally: a single failure becomes a length-1
// error sequence. A joined error is flattened so its parts accumulate
// individually.
func FromResult[T any](r outcome.Result[T]) Validated[T] {
	if v, ok := r.Get(); ok {
		return Valid(v)
	}
	return Invalid[T](outcome.Errors(r.Err())...)
}

// ToResult collapses the error sequence into one joined error.
func ToResult[T any](v Validated[T]) outcome.Result[T] {
	if len(v.errs) == 0 {
		return outcome.Success(v.value)
	}
	return outcome.Fail[T](errors.Join(v.errs...))
}

// Map applies f to a valid payload; errors pass through untouched.
func Map[In, Out any](v Validated[In], f func(v In) Out) Validated[Out] {
	mustArm("Map", f == nil)
	if len(v.errs) > 0 {
		return Validated[Out]{errs: v.errs}
	}
	return Valid(f(v.value))
}

// Bind sequences a dependent step and short-circuits on the first Invalid.
// Use the Join functions for independent values whose errors should all be
// reported.
func Bind[In, Out any](v Validated[In], f func(v In) Validated[Out]) Validated[Out] {
	mustArm("Bind", f == nil)
	if len(v.errs) > 0 {
		return Validated[Out]{errs: v.errs}
	}
	return f(v.value)
}

// Tee runs a side effect on a valid payload and returns v unchanged.
func Tee[T any](v Validated[T], effect func(v T)) Validated[T] {
	mustArm("Tee", effect == nil)
	if len(v.errs) == 0 {
		effect(v.value)
	}
	return v
}

// Match eliminates a Validated into a plain value. Both arms are required.
func Match[In, Out any](v Validated[In], onValid func(v In) Out, onInvalid func(errs []error) Out) Out {
	mustArm("Match", onValid == nil || onInvalid == nil)
	if len(v.errs) > 0 {
		return onInvalid(v.Errs())
	}
	return onValid(v.value)
}

// Equal reports structural equality: equal payloads for valid values, equal
// error message sequences otherwise.
func Equal[T comparable](a, b Validated[T]) bool {
	if len(a.errs) != len(b.errs) {
		return false
	}
	if len(a.errs) == 0 {
		return a.value == b.value
	}
	for i := range a.errs {
		if a.errs[i].Error() != b.errs[i].Error() {
			return false
		}
	}
	return true
}

func mustArm(op string, missing bool) {
	if missing {
		panic("valid: " + op + " requires non-nil function arguments")
	}
}
