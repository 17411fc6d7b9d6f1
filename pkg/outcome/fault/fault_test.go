package fault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	f := New("boom")
	assert.Equal(t, "boom", f.Message())
	assert.Equal(t, KindUnknown, f.Kind())
	assert.Nil(t, f.Source())
	assert.Equal(t, "boom", f.Error())
	assert.NotEqual(t, uuid.Nil, f.ID())

	k := NewKind("bad input", KindValidation)
	assert.Equal(t, KindValidation, k.Kind())
}

func TestFromClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want Kind
	}{
		{context.Canceled, KindCancelled},
		{context.DeadlineExceeded, KindTimeout},
		{os.ErrDeadlineExceeded, KindTimeout},
		{os.ErrNotExist, KindNotFound},
		{os.ErrExist, KindConflict},
		{os.ErrPermission, KindPermission},
		{io.ErrUnexpectedEOF, KindUnavailable},
		{io.ErrClosedPipe, KindUnavailable},
		{errors.New("anything else"), KindUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, From(tc.err).Kind(), "classifying %v", tc.err)
	}

	// wrapped sentinels still classify
	wrapped := fmt.Errorf("reading config: %w", os.ErrNotExist)
	assert.Equal(t, KindNotFound, From(wrapped).Kind())
}

func TestFromConvertsCauseChain(t *testing.T) {
	t.Parallel()

	root := errors.New("root cause")
	mid := fmt.Errorf("mid: %w", root)
	top := fmt.Errorf("top: %w", mid)

	f := From(top)
	require.NotNil(t, f.Source())
	require.NotNil(t, f.Source().Source())
	assert.Nil(t, f.Source().Source().Source())
	assert.Equal(t, "root cause", f.Source().Source().Message())

	assert.Nil(t, From(nil))
}

func TestFromFaultIsStructuralCopy(t *testing.T) {
	t.Parallel()

	orig := New("inner").Wrap("outer").WithMeta("k", String("v"))
	copied := From(error(orig))

	require.NotSame(t, orig, copied)
	assert.NotSame(t, orig.Source(), copied.Source())
	assert.True(t, orig.Equal(copied))
	v, ok := copied.MetaValue("k")
	require.True(t, ok)
	assert.Equal(t, "v", v.String())
}

func TestWrapBuildsChainHeadFirst(t *testing.T) {
	t.Parallel()

	base := New("disk error")
	f := base.Wrap("loading profile").Wrap("handling request")

	assert.Equal(t, "handling request", f.Message())
	assert.Equal(t, "loading profile", f.Source().Message())
	assert.Equal(t, "disk error", f.Source().Source().Message())

	// the base node is untouched
	assert.Nil(t, base.Source())
	assert.Equal(t, "disk error", base.Message())
}

func TestExtensionsAreNonDestructive(t *testing.T) {
	t.Parallel()

	f := New("boom")
	withKind := f.WithKind(KindInternal)
	withMeta := f.WithMeta("attempt", Int(3))
	withTrace := f.WithTrace("stack here")

	assert.Equal(t, KindUnknown, f.Kind())
	assert.Empty(t, f.Meta())
	assert.Empty(t, f.Trace())

	assert.Equal(t, KindInternal, withKind.Kind())
	assert.Equal(t, "stack here", withTrace.Trace())
	v, ok := withMeta.MetaValue("attempt")
	require.True(t, ok)
	assert.Equal(t, "3", v.String())

	// each extension mints a new identity
	assert.NotEqual(t, f.ID(), withKind.ID())
}

func TestMetaOrderAndReplacement(t *testing.T) {
	t.Parallel()

	f := New("boom").
		WithMeta("b", Int(1)).
		WithMeta("a", Int(2)).
		WithMeta("b", Int(3))

	entries := f.Meta()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Key)
	assert.Equal(t, "3", entries[0].Value.String())
	assert.Equal(t, "a", entries[1].Key)
}

func TestMetaReturnsCopy(t *testing.T) {
	t.Parallel()

	f := New("boom").WithMeta("k", String("v"))
	m := f.Meta()
	m[0].Key = "mutated"
	assert.Equal(t, "k", f.Meta()[0].Key)
}

func TestWithMetaRejectsZeroValue(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New("boom").WithMeta("k", Value{}) })
}

func TestMetaValueShapes(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	cases := []struct {
		v    Value
		want string
	}{
		{String("s"), "s"},
		{Int(-4), "-4"},
		{Float(1.5), "1.5"},
		{Bool(true), "true"},
		{Time(ts), "2026-08-30T12:00:00Z"},
		{Duration(90 * time.Second), "1m30s"},
		{ID(id), "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{Tag("retryable"), "retryable"},
	}
	for _, tc := range cases {
		assert.True(t, tc.v.IsValid())
		assert.Equal(t, tc.want, tc.v.String())
	}

	assert.False(t, Value{}.IsValid())
}

func TestUnwrapInterop(t *testing.T) {
	t.Parallel()

	f := From(fmt.Errorf("wrap: %w", context.Canceled))
	// the chain is a structural copy, so errors.Is works by message-free
	// identity only within the fault chain itself
	assert.Equal(t, "context canceled", f.Source().Message())
	assert.Nil(t, New("root").Unwrap())

	head := New("root").Wrap("ctx")
	assert.Equal(t, head.Source(), head.Unwrap())
}

func TestEqualStructural(t *testing.T) {
	t.Parallel()

	a := New("root").Wrap("ctx")
	b := New("root").Wrap("ctx")
	assert.True(t, a.Equal(b))

	// metadata and trace are ignored
	assert.True(t, a.Equal(b.WithMeta("k", Int(1)).WithTrace("tr")))

	// kind participates
	assert.False(t, a.Equal(b.WithKind(KindInternal)))

	// message and chain depth participate
	assert.False(t, a.Equal(New("root")))
	assert.False(t, a.Equal(New("other").Wrap("ctx")))
	assert.False(t, a.Equal(nil))
}

func TestKindStrings(t *testing.T) {
	t.Parallel()

	kinds := map[Kind]string{
		KindUnknown:     "unknown",
		KindValidation:  "validation",
		KindNotFound:    "not_found",
		KindConflict:    "conflict",
		KindPermission:  "permission",
		KindTimeout:     "timeout",
		KindCancelled:   "cancelled",
		KindUnavailable: "unavailable",
		KindInternal:    "internal",
	}
	for k, want := range kinds {
		assert.Equal(t, want, k.String())
	}
}

func TestStackIsNonEmpty(t *testing.T) {
	t.Parallel()

	s := Stack()
	assert.Contains(t, s, "fault_test.go")
}
