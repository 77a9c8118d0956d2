// Package algebra: Term — one coefficient attached to one product identifier.
package algebra

import (
	"fmt"

	"github.com/katalvlaran/opalg/ident"
)

// Term is one summand of an algebra element: a complex coefficient attached
// to a product identifier, discriminated by the operator family it belongs
// to. A Term with a rank-0 identifier is a pure field scalar embedded in the
// algebra.
//
// Term is a value type: arithmetic returns fresh values and containers copy
// Terms on insertion, never alias them.
type Term struct {
	// Kind is the operator-family discriminant; KindScalar for embedded
	// field scalars.
	Kind Kind

	// Value is the coefficient. The algebra is over the complex field:
	// commutator corrections in the motivating domains are genuinely
	// complex, so narrower coefficient types do not suffice.
	Value complex128

	// ID names the operator product this coefficient multiplies.
	ID ident.ID
}

// NewTerm constructs a Term of the given family with coefficient value over
// the product id.
func NewTerm(kind Kind, value complex128, id ident.ID) Term {
	return Term{Kind: kind, Value: value, ID: id}
}

// Scalar returns the embedded field scalar v — a rank-0 Term of KindScalar.
func Scalar(v complex128) Term {
	return Term{Kind: KindScalar, Value: v, ID: ident.ScalarID()}
}

// One returns the multiplicative identity of the algebra: the scalar 1.
func One() Term { return Scalar(1) }

// IsScalar reports whether t carries the rank-0 scalar identifier.
func (t Term) IsScalar() bool { return t.ID.IsScalar() }

// IsZero reports whether t's coefficient is exactly zero.
func (t Term) IsZero() bool { return t.Value == 0 }

// Mul returns the non-commutative product t·o: coefficients multiply,
// identifiers concatenate in order, kinds resolve through Promote.
// Multiplying by a rank-0 scalar term degenerates to pure scaling because
// the scalar identifier is absorbed by concatenation.
// Returns ErrKindMismatch when the operand families have no promotion.
// Complexity: O(total rank).
func (t Term) Mul(o Term) (Term, error) {
	return t.MulWith(o, Promote)
}

// MulWith is Mul with a caller-supplied promotion rule, for domains whose
// cross-family products go beyond Promote (see Table).
func (t Term) MulWith(o Term, promote PromoteFunc) (Term, error) {
	kind, err := promote(t.Kind, o.Kind)
	if err != nil {
		return Term{}, err
	}

	return Term{Kind: kind, Value: t.Value * o.Value, ID: t.ID.Concat(o.ID)}, nil
}

// Scale returns t with its coefficient multiplied by f.
func (t Term) Scale(f complex128) Term {
	return Term{Kind: t.Kind, Value: t.Value * f, ID: t.ID}
}

// Div returns t with its coefficient divided by f.
// Returns ErrZeroDivisor when f is exactly zero.
func (t Term) Div(f complex128) (Term, error) {
	if f == 0 {
		return Term{}, ErrZeroDivisor
	}

	return t.Scale(1 / f), nil
}

// Neg returns t with its coefficient negated.
func (t Term) Neg() Term { return t.Scale(-1) }

// Pow returns tⁿ via repeated multiplication.
// Returns ErrBadExponent when n ≤ 0; the algebra defines no inverses, so
// negative and zero powers are outside the domain.
// Complexity: O(n·rank).
func (t Term) Pow(n int) (Term, error) {
	if n <= 0 {
		return Term{}, fmt.Errorf("%w: %d", ErrBadExponent, n)
	}
	out := t
	for i := 1; i < n; i++ {
		var err error
		if out, err = out.Mul(t); err != nil {
			return Term{}, err
		}
	}

	return out, nil
}

// Equal reports exact equality: same kind, same coefficient, same
// identifier. A spin-family term never equals a fermion-family term, even
// with matching coefficient and identifier.
func (t Term) Equal(o Term) bool {
	return t.Kind == o.Kind && t.Value == o.Value && t.ID.Equal(o.ID)
}

// ApproxEqual reports equality with the coefficient compared under tol;
// kind and identifier are still compared exactly.
func (t Term) ApproxEqual(o Term, tol Tolerance) bool {
	return t.Kind == o.Kind && t.ID.Equal(o.ID) && tol.Close(t.Value, o.Value)
}

// String renders a terse debug form "value·id", e.g. "(0+1i)·0.0.z".
func (t Term) String() string {
	return fmt.Sprintf("%v·%s", t.Value, t.ID)
}
