package fault

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// Fault is an immutable causal error node. A node owns its source: extension
// methods return a new head node and never mutate an existing one, so chains
// grow from the most specific cause at the tail to the most general context
// at the head. Fault implements error; Unwrap exposes the source for
// errors.Is and errors.As.
type Fault struct {
	id      uuid.UUID
	kind    Kind
	message string
	source  *Fault
	trace   string
	meta    []Entry
}

// New creates a sourceless node with KindUnknown.
func New(msg string) *Fault {
	return NewKind(msg, KindUnknown)
}

func NewKind(msg string, kind Kind) *Fault {
	return &Fault{
		id:      uuid.New(),
		kind:    kind,
		message: msg,
	}
}

// From converts a native error into a fault. The kind comes from the fixed
// classification table, and the error's unwrap chain is converted
// recursively into owned source nodes, bounded by MaxRenderDepth. The
// result is a structural copy: a *Fault in the chain is copied, never
// aliased.
func From(err error) *Fault {
	return fromAt(err, 0)
}

func fromAt(err error, depth int) *Fault {
	if err == nil || depth >= MaxRenderDepth {
		return nil
	}

	f := &Fault{
		id:      uuid.New(),
		message: err.Error(),
		kind:    classify(err),
	}

	if orig, ok := err.(*Fault); ok {
		f.kind = orig.kind
		f.trace = orig.trace
		f.meta = append([]Entry(nil), orig.meta...)
		f.source = fromAt(orig.Unwrap(), depth+1)
		f.message = orig.message
		return f
	}

	if cause := errors.Unwrap(err); cause != nil {
		f.source = fromAt(cause, depth+1)
	}
	return f
}

func (f *Fault) Error() string {
	return f.message
}

// Unwrap returns the source node, or nil for a root cause. The concrete
// return type is error so a nil source compares equal to nil.
func (f *Fault) Unwrap() error {
	if f.source == nil {
		return nil
	}
	return f.source
}

func (f *Fault) ID() uuid.UUID { return f.id }

func (f *Fault) Kind() Kind { return f.kind }

func (f *Fault) Message() string { return f.message }

// Source returns the owned cause node, nil for a root cause.
func (f *Fault) Source() *Fault { return f.source }

// Trace returns the captured trace, empty if none was attached.
func (f *Fault) Trace() string { return f.trace }

// Meta returns a copy of the ordered metadata entries.
func (f *Fault) Meta() []Entry {
	return append([]Entry(nil), f.meta...)
}

// MetaValue looks up a metadata value by key.
func (f *Fault) MetaValue(key string) (Value, bool) {
	for _, e := range f.meta {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Wrap returns a new head node carrying msg, with f as its source.
func (f *Fault) Wrap(msg string) *Fault {
	return f.WrapKind(msg, KindUnknown)
}

func (f *Fault) WrapKind(msg string, kind Kind) *Fault {
	return &Fault{
		id:      uuid.New(),
		kind:    kind,
		message: msg,
		source:  f,
	}
}

// WithMeta returns a copy of f with the metadata entry set. An existing key
// keeps its position; a new key appends. The value must come from a shape
// constructor; a zero Value panics.
func (f *Fault) WithMeta(key string, v Value) *Fault {
	if !v.IsValid() {
		panic("fault: WithMeta requires a value built by a shape constructor")
	}

	c := f.clone()
	for i, e := range c.meta {
		if e.Key == key {
			c.meta[i].Value = v
			return c
		}
	}
	c.meta = append(c.meta, Entry{Key: key, Value: v})
	return c
}

// WithKind returns a copy of f with the classification replaced.
func (f *Fault) WithKind(kind Kind) *Fault {
	c := f.clone()
	c.kind = kind
	return c
}

// WithTrace returns a copy of f with the captured trace attached.
func (f *Fault) WithTrace(trace string) *Fault {
	c := f.clone()
	c.trace = trace
	return c
}

func (f *Fault) clone() *Fault {
	return &Fault{
		id:      uuid.New(),
		kind:    f.kind,
		message: f.message,
		source:  f.source,
		trace:   f.trace,
		meta:    append([]Entry(nil), f.meta...),
	}
}

// Equal reports structural equality over message, kind and the source chain.
// Metadata, trace and node identity are ignored. Comparison is bounded by
// the render depth limit so adversarial chains terminate.
func (f *Fault) Equal(other *Fault) bool {
	return equalAt(f, other, 0)
}

func equalAt(a, b *Fault, depth int) bool {
	if a == nil || b == nil {
		return a == b
	}
	if depth >= MaxRenderDepth {
		return true
	}
	if a.message != b.message || a.kind != b.kind {
		return false
	}
	return equalAt(a.source, b.source, depth+1)
}

// Stack formats the caller's stack for WithTrace, skipping runtime frames.
func Stack() string {
	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
