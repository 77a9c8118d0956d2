// Package graded: the Rule contract, sentinel errors, and build options.
package graded

import "errors"

// Rule is the pluggable combinatorial enumeration consumed by NewSpace.
//
// Tuples returns the ordered sequence of index tuples for selecting rank
// positions out of n base positions. The contract NewSpace enforces:
//
//   - every tuple has length rank and indices in [0, n);
//   - the sequence is strictly ascending in lexicographic order (this is
//     the binary-search invariant of the built Space);
//   - rank 0 yields exactly one empty tuple (the scalar grade).
//
// The shipped implementations — Combinations, Multisets, Permutations,
// Words — all satisfy the contract; domain-specific rules plug in the same
// way.
type Rule interface {
	Tuples(n, rank int) [][]int
}

// Sentinel errors reported by NewSpace and the Space lookups.
var (
	// ErrEmptyBase indicates an empty base generator set.
	// Classification: validation error (nothing to enumerate).
	ErrEmptyBase = errors.New("graded: base set is empty")

	// ErrDuplicateBase indicates the same generator appearing twice in the
	// base set; positions would be ambiguous.
	// Classification: validation error (ambiguous base position).
	ErrDuplicateBase = errors.New("graded: duplicate base generator")

	// ErrNilRule indicates a nil combinatorics rule.
	// Classification: validation error (missing collaborator).
	ErrNilRule = errors.New("graded: combinatorics rule is nil")

	// ErrRankBounds indicates a negative minimum rank or a maximum rank
	// below the minimum.
	// Classification: validation error (inverted or negative rank range).
	ErrRankBounds = errors.New("graded: invalid rank bounds")

	// ErrTupleArity indicates a rule emitted a tuple whose length is not
	// the requested rank.
	// Classification: validation error (rule contract violation).
	ErrTupleArity = errors.New("graded: rule tuple has wrong arity")

	// ErrTupleRange indicates a rule emitted a tuple index outside the
	// base positions [0, n).
	// Classification: validation error (rule contract violation).
	ErrTupleRange = errors.New("graded: rule tuple index out of range")

	// ErrTupleOrder indicates a rule emitted tuples out of strictly
	// ascending lexicographic order, breaking the binary-search invariant.
	// Classification: validation error (rule contract violation).
	ErrTupleOrder = errors.New("graded: rule tuples not strictly ascending")

	// ErrIndexRange indicates a global position outside [0, Len()).
	// Classification: lookup error (position not in the space).
	ErrIndexRange = errors.New("graded: index out of range")

	// ErrNotFound indicates an identifier the space does not enumerate:
	// an atom outside the base set, a rank outside the configured bounds,
	// or a tuple the rule never emits.
	// Classification: lookup error (identifier not in the space).
	ErrNotFound = errors.New("graded: identifier not in space")
)

// Options configures the rank range a Space enumerates.
//
// MinRank — lowest enumerated rank; 0 (the default) includes the scalar
// grade, whose only member is the scalar identifier.
// MaxRank — highest enumerated rank; defaults to 1 (the base generators
// themselves).
type Options struct {
	MinRank int
	MaxRank int
}

// Option represents a functional option for configuring NewSpace.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: ranks 0 through 1.
func DefaultOptions() Options {
	return Options{MinRank: 0, MaxRank: 1}
}

// WithMinRank sets the lowest enumerated rank.
// Negative values are rejected by NewSpace with ErrRankBounds.
func WithMinRank(r int) Option {
	return func(o *Options) {
		o.MinRank = r
	}
}

// WithMaxRank sets the highest enumerated rank.
// Values below MinRank are rejected by NewSpace with ErrRankBounds.
func WithMaxRank(r int) Option {
	return func(o *Options) {
		o.MaxRank = r
	}
}
