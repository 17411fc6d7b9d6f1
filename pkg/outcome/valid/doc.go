// Package valid provides the Validated[T] accumulating outcome: Valid with
// a payload or Invalid with every error collected so far, in order.
//
// Bind still short-circuits for genuinely dependent steps, but the Join
// functions combine independent validations without discarding errors: if
// several operands are invalid the result carries all of their errors
// concatenated in operand order. This is what lets a form report every bad
// field in a single pass instead of one at a time.
package valid
