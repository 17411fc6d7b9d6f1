package opt

// Pair groups the payloads of two zipped options.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map applies f to a present payload and rewraps it. f never runs on None.
func Map[In, Out any](o Option[In], f func(v In) Out) Option[Out] {
	mustArm("Map", f == nil)
	if o.some {
		return Some(f(o.value))
	}
	return None[Out]()
}

// Bind sequences a dependent step; the pipeline stops at the first None.
func Bind[In, Out any](o Option[In], f func(v In) Option[Out]) Option[Out] {
	mustArm("Bind", f == nil)
	if o.some {
		return f(o.value)
	}
	return None[Out]()
}

// Filter keeps a present value only if pred holds. pred never runs on None.
func Filter[T any](o Option[T], pred func(v T) bool) Option[T] {
	mustArm("Filter", pred == nil)
	if o.some && !pred(o.value) {
		return None[T]()
	}
	return o
}

// Zip pairs two options; any None yields None.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipWith(a, b, func(av A, bv B) Pair[A, B] {
		return Pair[A, B]{First: av, Second: bv}
	})
}

// ZipWith combines two options only if both are present.
func ZipWith[A, B, Out any](a Option[A], b Option[B], combine func(a A, b B) Out) Option[Out] {
	mustArm("ZipWith", combine == nil)
	if a.some && b.some {
		return Some(combine(a.value, b.value))
	}
	return None[Out]()
}

// And returns b iff a is present, otherwise None.
func And[A, B any](a Option[A], b Option[B]) Option[B] {
	if a.some {
		return b
	}
	return None[B]()
}

// Xor returns whichever option is present iff exactly one is.
func Xor[T any](a, b Option[T]) Option[T] {
	switch {
	case a.some && !b.some:
		return a
	case b.some && !a.some:
		return b
	default:
		return None[T]()
	}
}

// Tee runs a side effect on a present payload and returns o unchanged.
func Tee[T any](o Option[T], effect func(v T)) Option[T] {
	mustArm("Tee", effect == nil)
	if o.some {
		effect(o.value)
	}
	return o
}

// TeeNone runs a side effect when o is None and returns o unchanged.
func TeeNone[T any](o Option[T], effect func()) Option[T] {
	mustArm("TeeNone", effect == nil)
	if !o.some {
		effect()
	}
	return o
}

// Match eliminates an option into a plain value. Exactly one arm runs; both
// arms are required.
func Match[In, Out any](o Option[In], onSome func(v In) Out, onNone func() Out) Out {
	mustArm("Match", onSome == nil || onNone == nil)
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MatchDo is the action form of Match.
func MatchDo[T any](o Option[T], onSome func(v T), onNone func()) {
	mustArm("MatchDo", onSome == nil || onNone == nil)
	if o.some {
		onSome(o.value)
		return
	}
	onNone()
}

func mustArm(op string, missing bool) {
	if missing {
		panic("opt: " + op + " requires non-nil function arguments")
	}
}
