package outcome

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether err is nil, including a typed nil pointer carried
// inside a non-nil error interface.
func IsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Errors flattens a joined error into its parts. A plain error yields a
// single-element slice; nil, including a typed nil, yields an empty one.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err originates from context cancellation.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
