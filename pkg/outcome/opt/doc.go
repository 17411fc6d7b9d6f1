// Package opt provides the Option[T] optional value: Some or structural
// None, with map/bind/filter/zip combinators, two-arm matching and small
// adapters for pointers, maps and slices.
package opt
