// Package algebra: core type declarations, sentinel errors, and the
// approximate-equality tolerance shared by Term and Elements.
package algebra

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Kind discriminates the operator family a Term belongs to: spin, fermion,
// boson, or whatever closed set of families the application defines.
//
// The core reserves KindScalar (the zero value) for field scalars embedded in
// the algebra; applications declare their own positive constants for their
// concrete families:
//
//	const (
//		KindSpin    algebra.Kind = iota + 1
//		KindFermion
//	)
//
// Combining terms of different kinds goes through Promote (or a Table of
// cross-family rules) — never through implicit coercion.
type Kind int

// KindScalar marks a field scalar embedded in the algebra. It is the
// promotion identity: combining any kind with KindScalar yields that kind.
const KindScalar Kind = 0

// String renders "scalar" for KindScalar and "kind(n)" otherwise.
// Applications with richer naming wrap Kind in their own enum printer.
func (k Kind) String() string {
	if k == KindScalar {
		return "scalar"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinel errors for term arithmetic and container invariants.
var (
	// ErrKindMismatch indicates an attempt to combine two operator families
	// with no declared promotion between them.
	// Classification: domain error (mismatched algebra kind).
	ErrKindMismatch = errors.New("algebra: incompatible operator kinds")

	// ErrBadExponent indicates a power with a non-positive exponent; powers
	// are defined via repeated multiplication for n ≥ 1 only.
	// Classification: domain error (non-positive power exponent).
	ErrBadExponent = errors.New("algebra: exponent must be positive")

	// ErrZeroDivisor indicates scalar division by exact zero.
	// Classification: domain error (zero divisor).
	ErrZeroDivisor = errors.New("algebra: division by zero scalar")

	// ErrKeyMismatch indicates a container entry stored under a key that is
	// not its own identifier's key. Reported by Validate; a correctly used
	// Elements never reaches this state.
	// Classification: invariant error (key/value identifier mismatch).
	ErrKeyMismatch = errors.New("algebra: entry key does not match term identifier")

	// ErrZeroEntry indicates a container entry holding an exactly-zero
	// value, which insertion should have pruned. Reported by Validate.
	// Classification: invariant error (zero-valued entry survived).
	ErrZeroEntry = errors.New("algebra: container holds an exactly-zero term")
)

// Default tolerance bounds for ApproxEqual comparisons.
const (
	// DefaultAbsTol is the default absolute tolerance.
	DefaultAbsTol = 1e-12

	// DefaultRelTol is the default relative tolerance.
	DefaultRelTol = 1e-12
)

// Tolerance configures approximate coefficient comparison: two values are
// close when |a−b| ≤ max(Abs, Rel·max(|a|, |b|)).
//
// Identifier and kind comparison stays exact under every tolerance; only the
// coefficient magnitude is softened.
type Tolerance struct {
	// Abs is the absolute difference bound.
	Abs float64

	// Rel is the relative difference bound, scaled by the larger magnitude.
	Rel float64
}

// DefaultTolerance returns the standard tolerance used by tests and
// examples: Abs = DefaultAbsTol, Rel = DefaultRelTol.
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: DefaultAbsTol, Rel: DefaultRelTol}
}

// Close reports whether a and b agree within the tolerance.
// Complexity: O(1).
func (tol Tolerance) Close(a, b complex128) bool {
	diff := cmplx.Abs(a - b)
	scale := math.Max(cmplx.Abs(a), cmplx.Abs(b))

	return diff <= math.Max(tol.Abs, tol.Rel*scale)
}
