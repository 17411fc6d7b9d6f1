package opt

import "fmt"

// Option is an optional value: Some carries a payload, None is structural
// absence. The zero Option is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the payload or panics on None.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic("opt: MustGet on None")
	}
	return o.value
}

// GetOr returns the payload if present, otherwise fallback.
func (o Option[T]) GetOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// GetOrFunc returns the payload if present, otherwise the lazily computed fallback.
func (o Option[T]) GetOrFunc(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

// Or returns o if present, otherwise alternative.
func (o Option[T]) Or(alternative Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alternative
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Equal reports structural equality of two options.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
