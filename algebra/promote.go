// Package algebra: explicit kind promotion.
//
// Wherever two terms of different kinds combine, the result kind is decided
// here — by the pure Promote function or by a caller-built Table of
// cross-family rules. There is no implicit coercion and no global state.
package algebra

import "fmt"

// PromoteFunc is the pluggable promotion signature: given the kinds of two
// operands, return the kind of their product, or fail when the combination
// is undefined. Promote is the default; (*Table).Resolve is the table-driven
// variant.
type PromoteFunc func(a, b Kind) (Kind, error)

// Promote resolves the result kind when two operands combine:
//   - equal kinds yield that kind,
//   - KindScalar absorbs into the other operand,
//   - any other pairing fails with ErrKindMismatch.
//
// Complexity: O(1).
func Promote(a, b Kind) (Kind, error) {
	if a == b {
		return a, nil
	}
	if a == KindScalar {
		return b, nil
	}
	if b == KindScalar {
		return a, nil
	}

	return KindScalar, fmt.Errorf("%w: %v × %v", ErrKindMismatch, a, b)
}

// Table maps ordered kind pairs to result kinds — promotion as ordinary
// data. Pairs not present in the table fall back to Promote, so a Table
// only needs the genuine cross-family products.
//
// Registration is directional: if a domain's (a, b) and (b, a) products
// share a kind, register both orders.
type Table struct {
	rules map[[2]Kind]Kind
}

// NewTable returns an empty promotion table.
func NewTable() *Table {
	return &Table{rules: make(map[[2]Kind]Kind)}
}

// Set registers the result kind of the ordered product a·b.
// Returns the table for chained registration.
func (t *Table) Set(a, b, result Kind) *Table {
	t.rules[[2]Kind{a, b}] = result

	return t
}

// Resolve returns the registered result kind for the ordered pair (a, b),
// falling back to Promote when no rule is registered.
// Resolve satisfies PromoteFunc.
// Complexity: O(1).
func (t *Table) Resolve(a, b Kind) (Kind, error) {
	if k, ok := t.rules[[2]Kind{a, b}]; ok {
		return k, nil
	}

	return Promote(a, b)
}
