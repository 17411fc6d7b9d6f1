package outcome

import (
	"github.com/ferrous-go/outcome/pkg/outcome/opt"
)

// FromOption promotes an option to a Result, failing with err on None.
func FromOption[T any](o opt.Option[T], err error) Result[T] {
	if v, ok := o.Get(); ok {
		return Success(v)
	}
	return Fail[T](err)
}

// FromOptionFunc promotes an option to a Result; the error is only computed
// when the option is None.
func FromOptionFunc[T any](o opt.Option[T], errFn func() error) Result[T] {
	mustArm("FromOptionFunc", errFn == nil)
	if v, ok := o.Get(); ok {
		return Success(v)
	}
	return Fail[T](errFn())
}

// ToOption demotes a Result to an option, discarding the error.
func ToOption[T any](r Result[T]) opt.Option[T] {
	if r.IsSuccess() {
		return opt.Some(r.value)
	}
	return opt.None[T]()
}
