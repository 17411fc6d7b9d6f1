package opt

// FromPtr wraps a pointer's target, mapping nil to None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// ToPtr returns a pointer to a copy of the payload, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// FromMap wraps a map lookup.
func FromMap[K comparable, V any](m map[K]V, key K) Option[V] {
	if v, ok := m[key]; ok {
		return Some(v)
	}
	return None[V]()
}

// At wraps a bounds-checked slice index.
func At[T any](s []T, i int) Option[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}

// First returns the first element of s, or None when empty.
func First[T any](s []T) Option[T] {
	return At(s, 0)
}

// FromZero maps the zero value of T to None and anything else to Some.
func FromZero[T comparable](v T) Option[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}
