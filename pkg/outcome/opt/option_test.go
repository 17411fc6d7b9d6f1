package opt

import (
	"strconv"
	"testing"
)

func TestSomeNone(t *testing.T) {
	t.Parallel()

	s := Some(1)
	if !s.IsSome() || s.IsNone() {
		t.Fatalf("expected Some, got %s", s)
	}
	n := None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Fatalf("expected None, got %s", n)
	}

	var zero Option[int]
	if !zero.IsNone() {
		t.Fatal("zero Option should be None")
	}
}

func TestGetVariants(t *testing.T) {
	t.Parallel()

	if v, ok := Some("a").Get(); !ok || v != "a" {
		t.Fatalf("got %q %v", v, ok)
	}
	if _, ok := None[string]().Get(); ok {
		t.Fatal("None should report !ok")
	}
	if Some(2).GetOr(7) != 2 || None[int]().GetOr(7) != 7 {
		t.Fatal("GetOr")
	}

	lazy := 0
	if None[int]().GetOrFunc(func() int { lazy++; return 9 }) != 9 || lazy != 1 {
		t.Fatal("GetOrFunc on None")
	}
	if Some(2).GetOrFunc(func() int { lazy++; return 9 }) != 2 || lazy != 1 {
		t.Fatal("GetOrFunc must not run on Some")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustGet on None should panic")
		}
	}()
	None[int]().MustGet()
}

func TestMapLaws(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }
	show := strconv.Itoa

	if got := Map(Some(3), func(v int) int { return v }); !Equal(got, Some(3)) {
		t.Fatalf("map identity violated: %s", got)
	}

	left := Map(Map(Some(3), double), show)
	right := Map(Some(3), func(v int) string { return show(double(v)) })
	if !Equal(left, right) {
		t.Fatalf("map composition violated: %s vs %s", left, right)
	}

	called := false
	if got := Map(None[int](), func(v int) int { called = true; return v }); !got.IsNone() || called {
		t.Fatal("map must not run on None")
	}
}

func TestBindAndFilter(t *testing.T) {
	t.Parallel()

	half := func(v int) Option[int] {
		if v%2 != 0 {
			return None[int]()
		}
		return Some(v / 2)
	}

	if got := Bind(Some(8), half); !Equal(got, Some(4)) {
		t.Fatalf("got %s", got)
	}
	if got := Bind(Some(3), half); !got.IsNone() {
		t.Fatalf("got %s", got)
	}

	even := func(v int) bool { return v%2 == 0 }
	if got := Filter(Some(4), even); !Equal(got, Some(4)) {
		t.Fatalf("got %s", got)
	}
	if got := Filter(Some(3), even); !got.IsNone() {
		t.Fatalf("got %s", got)
	}

	called := false
	Filter(None[int](), func(v int) bool { called = true; return true })
	if called {
		t.Fatal("filter predicate must not run on None")
	}
}

func TestZip(t *testing.T) {
	t.Parallel()

	p, ok := Zip(Some(1), Some("a")).Get()
	if !ok || p.First != 1 || p.Second != "a" {
		t.Fatalf("got %+v %v", p, ok)
	}

	if got := Zip(Some(1), None[string]()); !got.IsNone() {
		t.Fatalf("zip with None should be None, got %s", got)
	}
	if got := Zip(None[int](), Some("a")); !got.IsNone() {
		t.Fatalf("zip with None should be None, got %s", got)
	}

	sum := ZipWith(Some(2), Some(3), func(a, b int) int { return a + b })
	if !Equal(sum, Some(5)) {
		t.Fatalf("got %s", sum)
	}
}

func TestAndOrXor(t *testing.T) {
	t.Parallel()

	if got := And(Some(1), Some("b")); !Equal(got, Some("b")) {
		t.Fatalf("and: %s", got)
	}
	if got := And(None[int](), Some("b")); !got.IsNone() {
		t.Fatalf("and: %s", got)
	}

	if got := Some(1).Or(Some(2)); !Equal(got, Some(1)) {
		t.Fatalf("or: %s", got)
	}
	if got := None[int]().Or(Some(2)); !Equal(got, Some(2)) {
		t.Fatalf("or: %s", got)
	}

	if got := Xor(Some(1), None[int]()); !Equal(got, Some(1)) {
		t.Fatalf("xor: %s", got)
	}
	if got := Xor(None[int](), Some(2)); !Equal(got, Some(2)) {
		t.Fatalf("xor: %s", got)
	}
	if got := Xor(Some(1), Some(2)); !got.IsNone() {
		t.Fatalf("xor with both present should be None, got %s", got)
	}
	if got := Xor(None[int](), None[int]()); !got.IsNone() {
		t.Fatalf("xor with both absent should be None, got %s", got)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	got := Match(Some(2), strconv.Itoa, func() string { return "none" })
	if got != "2" {
		t.Fatalf("got %q", got)
	}
	got = Match(None[int](), strconv.Itoa, func() string { return "none" })
	if got != "none" {
		t.Fatalf("got %q", got)
	}

	ran := ""
	MatchDo(Some(1), func(v int) { ran = "some" }, func() { ran = "none" })
	if ran != "some" {
		t.Fatalf("got %q", ran)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("nil match arm should panic")
		}
	}()
	Match[int, string](Some(1), nil, func() string { return "" })
}

func TestTee(t *testing.T) {
	t.Parallel()

	seen := 0
	Tee(Some(5), func(v int) { seen = v })
	if seen != 5 {
		t.Fatal("tee should run on Some")
	}

	noneSeen := false
	TeeNone(None[int](), func() { noneSeen = true })
	if !noneSeen {
		t.Fatal("teeNone should run on None")
	}
}

func TestStringForm(t *testing.T) {
	t.Parallel()

	if got := Some(1).String(); got != "Some(1)" {
		t.Fatalf("got %q", got)
	}
	if got := None[int]().String(); got != "None" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertHelpers(t *testing.T) {
	t.Parallel()

	v := 3
	if got := FromPtr(&v); !Equal(got, Some(3)) {
		t.Fatalf("got %s", got)
	}
	if got := FromPtr[int](nil); !got.IsNone() {
		t.Fatalf("got %s", got)
	}

	p := Some(4).ToPtr()
	if p == nil || *p != 4 {
		t.Fatal("ToPtr on Some")
	}
	if None[int]().ToPtr() != nil {
		t.Fatal("ToPtr on None should be nil")
	}

	m := map[string]int{"a": 1}
	if got := FromMap(m, "a"); !Equal(got, Some(1)) {
		t.Fatalf("got %s", got)
	}
	if got := FromMap(m, "b"); !got.IsNone() {
		t.Fatalf("got %s", got)
	}

	s := []int{10, 20}
	if got := At(s, 1); !Equal(got, Some(20)) {
		t.Fatalf("got %s", got)
	}
	if got := At(s, 2); !got.IsNone() {
		t.Fatalf("got %s", got)
	}
	if got := At(s, -1); !got.IsNone() {
		t.Fatalf("got %s", got)
	}
	if got := First(s); !Equal(got, Some(10)) {
		t.Fatalf("got %s", got)
	}
	if got := First([]int{}); !got.IsNone() {
		t.Fatalf("got %s", got)
	}

	if got := FromZero(0); !got.IsNone() {
		t.Fatalf("got %s", got)
	}
	if got := FromZero(7); !Equal(got, Some(7)) {
		t.Fatalf("got %s", got)
	}
}
