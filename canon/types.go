// Package canon: consumed contracts (ordering table, exchange rule),
// sentinel errors, and engine options.
package canon

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/opalg/algebra"
	"github.com/katalvlaran/opalg/graded"
	"github.com/katalvlaran/opalg/ident"
)

// Sentinel errors for canonicalization.
var (
	// ErrNilTable indicates a nil ordering table.
	// Classification: validation error (missing collaborator).
	ErrNilTable = errors.New("canon: ordering table is nil")

	// ErrNilRule indicates a nil exchange rule.
	// Classification: validation error (missing collaborator).
	ErrNilRule = errors.New("canon: exchange rule is nil")

	// ErrUnitUnordered indicates a generator absent from the ordering
	// table: the engine cannot compare what the table cannot position.
	// Classification: lookup error (generator not in table).
	ErrUnitUnordered = errors.New("canon: generator not in ordering table")

	// ErrEqualAdjacent indicates equal adjacent generators selected for
	// exchange. The engine asserts inequality immediately before invoking
	// the rule; reaching this state means the ordering table is
	// inconsistent (equal generators must share one position).
	// Classification: invariant error (exchange precondition violated).
	ErrEqualAdjacent = errors.New("canon: equal adjacent generators offered to exchange rule")

	// ErrRewriteBudget indicates the opt-in rewrite budget ran out before
	// reaching a fixpoint — the usual symptom of an exchange rule that
	// does not strictly decrease its termination measure.
	ErrRewriteBudget = errors.New("canon: rewrite budget exhausted")

	// ErrBadWorkers indicates a non-positive worker count passed to
	// PermuteParallel.
	// Classification: validation error (invalid worker count).
	ErrBadWorkers = errors.New("canon: worker count must be positive")

	// ErrOptionViolation indicates an invalid Option value; recorded at
	// option application and surfaced when the engine is invoked.
	ErrOptionViolation = errors.New("canon: invalid option supplied")
)

// Table is the consumed ordering contract: a read-only total order over
// generators, opaque to the engine. Position returns the generator's ordinal
// and whether the table knows it; a miss surfaces as ErrUnitUnordered.
//
// A product is canonical when its generators' positions are non-increasing
// left to right. Ties (distinct generators sharing a position) are
// domain-defined and count as in order.
type Table interface {
	Position(u ident.Unit) (int, bool)
}

// MapTable is the obvious map-backed Table.
type MapTable map[ident.Unit]int

// Position implements Table.
// Complexity: O(1).
func (m MapTable) Position(u ident.Unit) (int, bool) {
	p, ok := m[u]

	return p, ok
}

// TableOf builds a MapTable from an explicit generator sequence: the first
// generator gets position 0, the next 1, and so on. A generator listed
// twice keeps its first position.
func TableOf(units ...ident.Unit) MapTable {
	m := make(MapTable, len(units))
	for i, u := range units {
		if _, seen := m[u]; seen {
			continue
		}
		m[u] = i
	}

	return m
}

// TableFromSpace builds a MapTable from an index space's base sequence, so
// an enumerated universe doubles as the canonical order over its
// generators.
func TableFromSpace(s *graded.Space) MapTable {
	return TableOf(s.Base()...)
}

// Rule is the consumed exchange contract: given two adjacent, out-of-order,
// unequal generators a and b (the table positions a strictly below b), the
// rule returns the finite combination replacing the product a·b — the
// encoded commutation or anticommutation relation. The table is passed
// through so the rule can position any generator it synthesizes.
//
// An empty replacement set encodes annihilation: the whole term containing
// the pair vanishes.
//
// Termination of the rewriting is the rule's contract: every rewrite must
// strictly decrease a well-founded measure, as genuine commutation
// relations do. The engine performs no check (see the package
// documentation).
type Rule func(a, b ident.Unit, tbl Table) ([]algebra.Term, error)

// Option configures the engine via functional arguments. Invalid values are
// recorded internally and surfaced as ErrOptionViolation when the engine is
// invoked.
type Option func(*Options)

// Options holds engine parameters and observation hooks.
type Options struct {
	// MaxRewrites, if > 0, caps the number of exchange-rule invocations
	// per Permute/PermuteTerm call; exceeding it fails with
	// ErrRewriteBudget. A value of 0 (the default) means unlimited: a
	// well-formed rule needs no budget.
	MaxRewrites int

	// OnExchange is called immediately before each exchange-rule
	// invocation with the out-of-order pair.
	OnExchange func(a, b ident.Unit)

	// OnCanonical is called when a term is found canonical and merged
	// into the result.
	OnCanonical func(t algebra.Term)

	// Promote resolves the kinds of products formed during rewriting.
	Promote algebra.PromoteFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no rewrite budget (MaxRewrites == 0, unlimited)
//   - no-op hooks (OnExchange, OnCanonical)
//   - algebra.Promote for kind resolution.
func DefaultOptions() Options {
	return Options{
		MaxRewrites: 0,
		OnExchange:  func(ident.Unit, ident.Unit) {},
		OnCanonical: func(algebra.Term) {},
		Promote:     algebra.Promote,
		err:         nil,
	}
}

// WithMaxRewrites caps exchange-rule invocations per engine call.
//
//	n > 0:  limit to n rewrites
//	n == 0: explicit "unlimited"
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxRewrites(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRewrites cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxRewrites = n
	}
}

// WithOnExchange registers a callback observing each exchange before the
// rule runs. Under PermuteParallel the callback must be safe for concurrent
// use.
func WithOnExchange(fn func(a, b ident.Unit)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExchange = fn
		}
	}
}

// WithOnCanonical registers a callback observing each term merged into the
// result. Under PermuteParallel the callback must be safe for concurrent
// use.
func WithOnCanonical(fn func(t algebra.Term)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCanonical = fn
		}
	}
}

// WithPromotion sets the kind-resolution rule for products formed during
// rewriting, e.g. (*algebra.Table).Resolve for mixed-family domains.
func WithPromotion(p algebra.PromoteFunc) Option {
	return func(o *Options) {
		if p != nil {
			o.Promote = p
		}
	}
}
