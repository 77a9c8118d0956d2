// Package algebra: Elements — the sparse canonical linear combination.
//
// This file implements the container discipline the whole engine relies on:
// merge-on-insert keyed by identifier, exact zero-pruning, fail-before-mutate
// arithmetic, and deterministic sorted exposure of the stored terms.
package algebra

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/opalg/ident"
)

// Elements is a sparse linear combination of Terms keyed by their product
// identifiers. Two invariants hold after every operation:
//
//  1. key consistency — every entry is stored under its own ID's Key;
//  2. no zero entries — a combination that sums to exactly zero is deleted.
//
// An empty Elements is definitionally the zero element of the algebra and
// compares equal to the scalar zero. The zero value of the struct is ready
// to use; NewElements seeds one from initial terms.
//
// Elements exclusively owns its Terms: values are copied on insertion and on
// exposure, never aliased across containers. Not safe for concurrent
// mutation; an Elements is owned by one goroutine during a computation.
type Elements struct {
	terms map[ident.Key]Term
}

// NewElements builds a container holding the given terms, folded in through
// Add (so equal identifiers merge and zero sums vanish immediately).
// Returns ErrKindMismatch when merged terms' families have no promotion.
// Complexity: O(n) amortized.
func NewElements(terms ...Term) (*Elements, error) {
	e := &Elements{}
	for _, t := range terms {
		if err := e.Add(t); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// ensure lazily allocates the backing map, keeping the zero value usable.
func (e *Elements) ensure() {
	if e.terms == nil {
		e.terms = make(map[ident.Key]Term)
	}
}

// Add merges t into the container: absent identifiers insert, present ones
// accumulate coefficients, and a sum of exactly zero deletes the entry.
// Adding an exactly-zero term is a no-op. Kinds of merged terms resolve
// through Promote (the scalar kind absorbs); on ErrKindMismatch the
// container is left unchanged — the merged value is computed before any
// mutation.
// Complexity: O(1) amortized.
func (e *Elements) Add(t Term) error {
	if t.IsZero() {
		return nil
	}
	key := t.ID.Key()
	existing, ok := e.terms[key]
	if !ok {
		e.ensure()
		e.terms[key] = t

		return nil
	}
	// Resolve the merged kind and value first; mutate only on success.
	kind, err := Promote(existing.Kind, t.Kind)
	if err != nil {
		return err
	}
	if sum := existing.Value + t.Value; sum != 0 {
		e.terms[key] = Term{Kind: kind, Value: sum, ID: existing.ID}

		return nil
	}
	delete(e.terms, key)

	return nil
}

// AddScalar adds the embedded field scalar v — sugar for Add(Scalar(v)).
func (e *Elements) AddScalar(v complex128) error {
	return e.Add(Scalar(v))
}

// Sub subtracts t: equivalent to Add of the negated term.
func (e *Elements) Sub(t Term) error {
	return e.Add(t.Neg())
}

// AddElements folds every term of o into e. A nil or empty o is a no-op.
// The result is independent of iteration order: coefficient addition is
// commutative and associative, and merging is keyed by identical identifiers
// only.
// Complexity: O(|o|) amortized.
func (e *Elements) AddElements(o *Elements) error {
	if o == nil {
		return nil
	}
	for _, t := range o.terms {
		if err := e.Add(t); err != nil {
			return err
		}
	}

	return nil
}

// SubElements folds the negation of every term of o into e.
func (e *Elements) SubElements(o *Elements) error {
	if o == nil {
		return nil
	}
	for _, t := range o.terms {
		if err := e.Sub(t); err != nil {
			return err
		}
	}

	return nil
}

// MulScalar multiplies every entry's coefficient by f in place.
// A zero factor annihilates the whole combination, leaving the container
// empty; a non-zero factor can still underflow an individual coefficient to
// exactly zero, and such entries are pruned one by one (the zero-pruning
// invariant holds either way).
// Complexity: O(n).
func (e *Elements) MulScalar(f complex128) {
	if f == 0 {
		e.terms = nil

		return
	}
	for key, t := range e.terms {
		scaled := t.Scale(f)
		if scaled.Value == 0 {
			// Denormal coefficient times denormal factor reaches exact zero.
			delete(e.terms, key)

			continue
		}
		e.terms[key] = scaled
	}
}

// DivScalar divides every entry's coefficient by f in place.
// Returns ErrZeroDivisor (container untouched) when f is exactly zero.
// Complexity: O(n).
func (e *Elements) DivScalar(f complex128) error {
	if f == 0 {
		return ErrZeroDivisor
	}
	e.MulScalar(1 / f)

	return nil
}

// Mul returns the full distributive product e·o: the Cartesian product of
// term pairs, each pairwise product concatenating identifiers in order with
// no reordering, merged into a fresh container. This is the defining
// non-commutative product of the algebra; canonical ordering is the canon
// package's separate, explicit step.
// A nil or empty operand yields the zero element. Neither operand is
// mutated.
// Returns ErrKindMismatch when any pairwise product's families have no
// promotion.
// Complexity: O(|e|·|o|·rank).
func (e *Elements) Mul(o *Elements) (*Elements, error) {
	out := &Elements{}
	if o == nil {
		return out, nil
	}
	for _, a := range e.terms {
		for _, b := range o.terms {
			p, err := a.Mul(b)
			if err != nil {
				return nil, err
			}
			if err = out.Add(p); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// MulTerm returns the right multiplication e·t as a fresh container.
// Complexity: O(n·rank).
func (e *Elements) MulTerm(t Term) (*Elements, error) {
	out := &Elements{}
	for _, a := range e.terms {
		p, err := a.Mul(t)
		if err != nil {
			return nil, err
		}
		if err = out.Add(p); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MulTermLeft returns the left multiplication t·e as a fresh container.
// The product is non-commutative, so MulTerm and MulTermLeft differ.
// Complexity: O(n·rank).
func (e *Elements) MulTermLeft(t Term) (*Elements, error) {
	out := &Elements{}
	for _, a := range e.terms {
		p, err := t.Mul(a)
		if err != nil {
			return nil, err
		}
		if err = out.Add(p); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Pow returns eⁿ via repeated Mul.
// Returns ErrBadExponent when n ≤ 0.
// Complexity: O(n · cost(Mul)).
func (e *Elements) Pow(n int) (*Elements, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadExponent, n)
	}
	out := e.Clone()
	for i := 1; i < n; i++ {
		var err error
		if out, err = out.Mul(e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Equal reports exact structural equality: the same identifier set with
// exactly equal terms. A nil operand is the zero element, equal to an empty
// container.
// Complexity: O(n).
func (e *Elements) Equal(o *Elements) bool {
	if o == nil {
		return e.IsZero()
	}
	if len(e.terms) != len(o.terms) {
		return false
	}
	for key, t := range e.terms {
		ot, ok := o.terms[key]
		if !ok || !t.Equal(ot) {
			return false
		}
	}

	return true
}

// ApproxEqual reports equality with coefficients compared under tol; kinds
// and identifiers are still exact. An entry missing from one side counts as
// present with coefficient zero, so a tiny numerical residue on one side
// still compares equal to an exactly-pruned zero on the other.
// Complexity: O(n + m).
func (e *Elements) ApproxEqual(o *Elements, tol Tolerance) bool {
	if o == nil {
		o = &Elements{}
	}
	for key, t := range e.terms {
		ot, ok := o.terms[key]
		if !ok {
			if !tol.Close(t.Value, 0) {
				return false
			}

			continue
		}
		if t.Kind != ot.Kind || !tol.Close(t.Value, ot.Value) {
			return false
		}
	}
	for key, ot := range o.terms {
		if _, ok := e.terms[key]; !ok && !tol.Close(ot.Value, 0) {
			return false
		}
	}

	return true
}

// IsZero reports whether e is the zero element — no entries, equal to the
// scalar zero.
func (e *Elements) IsZero() bool { return len(e.terms) == 0 }

// Len returns the number of stored terms.
func (e *Elements) Len() int { return len(e.terms) }

// Term returns the stored term for id and whether one is present.
// Complexity: O(1) plus the O(rank) key packing.
func (e *Elements) Term(id ident.ID) (Term, bool) {
	t, ok := e.terms[id.Key()]

	return t, ok
}

// Scalar returns the rank-0 coefficient and whether a scalar entry is
// present.
func (e *Elements) Scalar() (complex128, bool) {
	t, ok := e.terms[ident.ScalarID().Key()]

	return t.Value, ok
}

// Terms returns the stored terms in ascending identifier order (rank first,
// then lexicographic) — the deterministic iteration surface.
// Complexity: O(n·log n).
func (e *Elements) Terms() []Term {
	out := make([]Term, 0, len(e.terms))
	for _, t := range e.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Less(out[j].ID) })

	return out
}

// Clone returns a deep copy sharing no mutable state with e.
// Complexity: O(n).
func (e *Elements) Clone() *Elements {
	if len(e.terms) == 0 {
		return &Elements{}
	}
	cp := make(map[ident.Key]Term, len(e.terms))
	for key, t := range e.terms {
		cp[key] = t
	}

	return &Elements{terms: cp}
}

// Validate sweeps the container invariants: every entry stored under its own
// identifier's key, and no exactly-zero values. A correctly used Elements
// never fails; Validate exists for tests and fuzz harnesses probing the
// container from outside.
// Complexity: O(n·rank).
func (e *Elements) Validate() error {
	for key, t := range e.terms {
		if t.ID.Key() != key {
			return fmt.Errorf("%w: stored %q for term %s", ErrKeyMismatch, string(key), t)
		}
		if t.Value == 0 {
			return fmt.Errorf("%w: %s", ErrZeroEntry, t.ID)
		}
	}

	return nil
}

// String renders the combination in ascending identifier order joined with
// " + ", or "0" for the zero element. Debug output only.
func (e *Elements) String() string {
	if e.IsZero() {
		return "0"
	}
	terms := e.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, " + ")
}
