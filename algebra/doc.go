// Package algebra implements the term and container layer of the operator
// algebra: Kind (the operator-family discriminant), Term (one coefficient
// attached to one product identifier), and Elements (the sparse canonical
// linear combination that is the currency of the whole engine).
//
// 🚀 What is algebra?
//
//	An element of the algebra is a finite sum  Σ cᵢ·IDᵢ  of complex
//	coefficients over product identifiers.  algebra gives that sum a sparse,
//	always-canonical representation:
//	  • Kind     — closed discriminant of the operator family (spin,
//	    fermion, …); KindScalar marks the embedded field scalars
//	  • Term     — (Kind, complex128 value, ident.ID) with ring arithmetic
//	  • Elements — map from identifier key to Term with merge-on-insert
//	    and exact zero-pruning: a combination that sums to zero vanishes
//
// ✨ Key features:
//   - merge-on-insert: equal identifiers fold into one entry, so the
//     container is canonical after every single operation
//   - exact zero-elimination: an entry whose value becomes exactly 0 is
//     deleted, and an empty Elements is the zero element of the algebra
//   - non-commutative product: Mul distributes over both operands and
//     concatenates identifiers without any reordering (canonical ordering
//     is the canon package's separate, explicit step)
//   - explicit kind promotion: combining terms of different families goes
//     through Promote (scalar absorbs, mismatches fail fast) or a
//     caller-built Table of cross-family rules
//   - fail-before-mutate: every operation computes its result before
//     touching the container, so a failed call leaves state unchanged
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/opalg/algebra"
//		"github.com/katalvlaran/opalg/ident"
//	)
//
//	x, _ := ident.NewUnit(0, 0, 'x', 0.5)
//	y, _ := ident.NewUnit(0, 0, 'y', 0.5)
//
//	const KindSpin algebra.Kind = 1
//	t := algebra.NewTerm(KindSpin, 1, ident.NewID(x, y))
//
//	e, _ := algebra.NewElements(t)
//	_ = e.AddScalar(5)            // += 5·I
//	p, _ := e.Mul(e)              // full distributive product, no reordering
//	for _, pt := range p.Terms() { // ascending identifier order
//		fmt.Println(pt)
//	}
//
// Performance:
//
//   - Add/Sub/Term lookup: O(1) amortized per term
//   - Mul: O(|a|·|b|) pairwise products, each O(rank) for the concat
//   - Terms(): O(n·log n) for the deterministic sorted view
//
// The engine is single-threaded by design: an Elements is owned exclusively
// by its calling goroutine during a computation. Concurrent pipelines give
// each goroutine its own accumulator and merge afterwards via AddElements
// (see canon.PermuteParallel).
package algebra
