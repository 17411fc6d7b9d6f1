package either

import (
	"fmt"

	"github.com/ferrous-go/outcome/pkg/outcome/opt"
)

// Either holds one of two equally valid alternatives. Neither side is an
// error side. The zero Either is Left of L's zero value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left payload and whether it is the active side.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right payload and whether it is the active side.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Swap exchanges the two sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// LeftOption projects the left side onto an option.
func (e Either[L, R]) LeftOption() opt.Option[L] {
	if e.isRight {
		return opt.None[L]()
	}
	return opt.Some(e.left)
}

// RightOption projects the right side onto an option.
func (e Either[L, R]) RightOption() opt.Option[R] {
	if e.isRight {
		return opt.Some(e.right)
	}
	return opt.None[R]()
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapLeft applies f to the left payload when active; a right value passes
// through untouched.
func MapLeft[L, R, L2 any](e Either[L, R], f func(l L) L2) Either[L2, R] {
	mustArm("MapLeft", f == nil)
	if e.isRight {
		return Right[L2, R](e.right)
	}
	return Left[L2, R](f(e.left))
}

// MapRight applies f to the right payload when active.
func MapRight[L, R, R2 any](e Either[L, R], f func(r R) R2) Either[L, R2] {
	mustArm("MapRight", f == nil)
	if e.isRight {
		return Right[L, R2](f(e.right))
	}
	return Left[L, R2](e.left)
}

// BindLeft sequences a dependent step on the left side. A right value
// passes through untouched and f never runs on it.
func BindLeft[L, R, L2 any](e Either[L, R], f func(l L) Either[L2, R]) Either[L2, R] {
	mustArm("BindLeft", f == nil)
	if e.isRight {
		return Right[L2, R](e.right)
	}
	return f(e.left)
}

// BindRight sequences a dependent step on the right side.
func BindRight[L, R, R2 any](e Either[L, R], f func(r R) Either[L, R2]) Either[L, R2] {
	mustArm("BindRight", f == nil)
	if e.isRight {
		return f(e.right)
	}
	return Left[L, R2](e.left)
}

// TeeLeft runs a side effect on an active left payload and returns e unchanged.
func (e Either[L, R]) TeeLeft(effect func(l L)) Either[L, R] {
	mustArm("TeeLeft", effect == nil)
	if !e.isRight {
		effect(e.left)
	}
	return e
}

// TeeRight runs a side effect on an active right payload and returns e unchanged.
func (e Either[L, R]) TeeRight(effect func(r R)) Either[L, R] {
	mustArm("TeeRight", effect == nil)
	if e.isRight {
		effect(e.right)
	}
	return e
}

// Map transforms both sides independently; only the active side's function runs.
func Map[L, R, L2, R2 any](e Either[L, R], fl func(l L) L2, fr func(r R) R2) Either[L2, R2] {
	mustArm("Map", fl == nil || fr == nil)
	if e.isRight {
		return Right[L2, R2](fr(e.right))
	}
	return Left[L2, R2](fl(e.left))
}

// Match eliminates an Either into a plain value. Exactly one arm runs; both
// arms are required.
func Match[L, R, Out any](e Either[L, R], onLeft func(l L) Out, onRight func(r R) Out) Out {
	mustArm("Match", onLeft == nil || onRight == nil)
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MatchDo is the action form of Match.
func MatchDo[L, R any](e Either[L, R], onLeft func(l L), onRight func(r R)) {
	mustArm("MatchDo", onLeft == nil || onRight == nil)
	if e.isRight {
		onRight(e.right)
		return
	}
	onLeft(e.left)
}

// Equal reports structural equality of two eithers.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}

func mustArm(op string, missing bool) {
	if missing {
		panic("either: " + op + " requires non-nil function arguments")
	}
}
