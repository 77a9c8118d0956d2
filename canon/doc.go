// Package canon is the rewriting engine of the operator algebra: it reduces
// an arbitrary product of generators to an equivalent linear combination
// whose every surviving product is in canonical order, by repeatedly
// applying a caller-supplied pairwise exchange rule.
//
// 🚀 What is canon?
//
//	A product like x·y is generally not canonical: the algebra fixes a total
//	order over generators (an externally supplied ordering table), and a
//	product is canonical when its generators are non-increasing in that
//	order.  canon rewrites any Term or Elements into canonical form:
//	  • find the first adjacent out-of-order pair,
//	  • ask the domain's exchange rule what that pair rewrites to
//	    (e.g. x·y → y·x + [x,y], encoding the commutation relation),
//	  • multiply the replacements back into place and repeat to fixpoint.
//
//	The engine is an explicit work-stack, not recursion, so deep
//	canonicalization chains cannot overflow the call stack.
//
// ✨ Key features:
//   - exchange rules are data, not subclasses: one callback
//     (a, b, table) → replacement terms, invoked only on adjacent,
//     out-of-order, unequal generator pairs
//   - exact cancellation: replacement terms merge through the Elements
//     container, so combinations that sum to zero vanish
//   - deterministic results: entries are processed in ascending identifier
//     order and merged by identifier, independent of rewrite order
//   - hooks over loggers: OnExchange and OnCanonical observe the engine
//     without coupling it to any output layer
//   - opt-in rewrite budget: WithMaxRewrites turns a runaway rule into
//     ErrRewriteBudget instead of an infinite loop
//   - PermuteParallel shards entries across goroutines with one private
//     accumulator each, merged sequentially afterwards
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/opalg/canon"
//
//	tbl := canon.TableOf(x, y, z)        // total order x < y < z
//
//	// Exchange rule: a·b → b·a + i·(correction), for a < b.
//	rule := func(a, b ident.Unit, _ canon.Table) ([]algebra.Term, error) {
//		return []algebra.Term{
//			algebra.NewTerm(kindSpin, 1, ident.NewID(b, a)),
//			algebra.NewTerm(kindSpin, 1i, ident.NewID(commutator(a, b))),
//		}, nil
//	}
//
//	out, err := canon.PermuteTerm(algebra.NewTerm(kindSpin, 1, ident.NewID(x, y)), tbl, rule)
//	// out == 1·y·x + i·z  for the spin-algebra rule above
//
// ⚠️ Termination contract:
//
//	The engine performs no termination or confluence analysis. Both are the
//	exchange rule's contract: a genuine commutation relation strictly
//	decreases a well-founded measure (such as a weighted inversion count)
//	with every rewrite, so the fixpoint exists and is order-independent. An
//	ill-formed rule can loop forever — that is a programming error in the
//	collaborator, not a condition the engine detects. Use WithMaxRewrites
//	as a development guard when bringing up a new rule.
//
// Performance:
//
//   - per popped term: O(rank) table lookups + the rule invocation
//   - merging: O(1) amortized per canonical term
//
// See examples in example_test.go for a complete spin-½ walkthrough.
package canon
