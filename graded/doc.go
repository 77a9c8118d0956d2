// Package graded enumerates the identifier universe of the algebra rank by
// rank: every product identifier of a given total rank buildable from a
// finite base of generators, under a pluggable combinatorial rule, with
// O(log n) identifier → position lookup.
//
// 🚀 What is graded?
//
//	Ordering tables, coupling tables, and basis enumerations all need the
//	same thing: a flat, stable numbering of "every product of rank r over
//	these generators".  graded builds that numbering once and answers both
//	directions:
//	  • At(i)       — global position → product identifier
//	  • IndexOf(id) — product identifier → global position (binary search)
//
//	Positions are graded: all rank-r identifiers come before all rank-(r+1)
//	identifiers, and within one rank the rule's enumeration order is kept.
//
// ✨ Key features:
//   - pluggable combinatorics: one Rule interface, four shipped
//     enumerations — Combinations (strictly increasing, no repetition),
//     Multisets (non-decreasing, with repetition), Permutations (ordered,
//     no repetition), Words (ordered, with repetition)
//   - every rule enumerates tuples in strictly ascending lexicographic
//     order, which is exactly the invariant binary search needs
//   - build-time validation: empty or duplicated base, bad rank bounds,
//     and out-of-contract rule output fail fast with sentinel errors
//   - a built Space is immutable and safely shared between goroutines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/opalg/graded"
//
//	x, _ := ident.NewUnit(0, 0, 'x', 0.5)
//	y, _ := ident.NewUnit(0, 0, 'y', 0.5)
//	z, _ := ident.NewUnit(0, 0, 'z', 0.5)
//
//	sp, err := graded.NewSpace(
//		[]ident.Unit{x, y, z},
//		graded.Multisets{},
//		graded.WithMaxRank(2),
//	)
//	if err != nil { ... }
//
//	id, _ := sp.At(5)          // global position → identifier
//	i, _ := sp.IndexOf(id)     // identifier → global position; i == 5
//
// Performance:
//
//   - build: O(Σ_r T(r)·r) over the rule's tuple counts T(r)
//   - At: O(log ranks + rank); IndexOf: O(rank + log T(rank))
//   - memory: one []int tuple per enumerated identifier
//
// The scalar grade (rank 0) holds exactly one member, the scalar identifier,
// whenever the configured rank range includes 0.
package graded
