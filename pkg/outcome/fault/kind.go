package fault

import (
	"context"
	"errors"
	"io"
	"os"
)

// Kind classifies a fault. The set is closed; unclassifiable native errors
// land in KindUnknown.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPermission
	KindTimeout
	KindCancelled
	KindUnavailable
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPermission:
		return "permission"
	case KindTimeout:
		return "timeout"
	case KindCancelled:
		return "cancelled"
	case KindUnavailable:
		return "unavailable"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// classifications is the fixed table mapping native sentinel errors to kinds.
// First match wins.
var classifications = []struct {
	target error
	kind   Kind
}{
	{context.Canceled, KindCancelled},
	{context.DeadlineExceeded, KindTimeout},
	{os.ErrDeadlineExceeded, KindTimeout},
	{os.ErrNotExist, KindNotFound},
	{os.ErrExist, KindConflict},
	{os.ErrPermission, KindPermission},
	{io.ErrUnexpectedEOF, KindUnavailable},
	{io.ErrClosedPipe, KindUnavailable},
}

func classify(err error) Kind {
	for _, c := range classifications {
		if errors.Is(err, c.target) {
			return c.kind
		}
	}
	return KindUnknown
}
