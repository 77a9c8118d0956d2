// Package canon: the stack-based fixpoint rewriting engine.
package canon

import (
	"fmt"

	"github.com/katalvlaran/opalg/algebra"
	"github.com/katalvlaran/opalg/ident"
)

// Permute rewrites every entry of e into canonical order under tbl and
// unions the results into a fresh Elements via merge. Entries are processed
// in ascending identifier order, so hook sequences are deterministic; the
// merged result is order-independent regardless.
// A nil or empty e yields the zero element. e is never mutated.
// Returns ErrNilTable / ErrNilRule / ErrOptionViolation for bad inputs,
// ErrUnitUnordered when a generator is absent from tbl, ErrEqualAdjacent on
// an inconsistent table, ErrRewriteBudget when the opt-in budget runs out,
// and any error the exchange rule itself reports.
// Complexity: O(R·rank) table work over R total rewrites, plus the rule
// invocations; R is finite only under the rule's termination contract.
func Permute(e *algebra.Elements, tbl Table, rule Rule, opts ...Option) (*algebra.Elements, error) {
	eng, err := newEngine(tbl, rule, opts)
	if err != nil {
		return nil, err
	}
	out := &algebra.Elements{}
	if e == nil {
		return out, nil
	}
	for _, t := range e.Terms() {
		if err = eng.rewrite(out, t); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// PermuteTerm rewrites a single term into canonical order under tbl.
// An exactly-zero term yields the zero element. Error surface matches
// Permute.
func PermuteTerm(t algebra.Term, tbl Table, rule Rule, opts ...Option) (*algebra.Elements, error) {
	eng, err := newEngine(tbl, rule, opts)
	if err != nil {
		return nil, err
	}
	out := &algebra.Elements{}
	if err = eng.rewrite(out, t); err != nil {
		return nil, err
	}

	return out, nil
}

// engine carries one canonicalization run: the collaborators, the parsed
// options, and the rewrite budget consumed so far.
type engine struct {
	tbl      Table
	rule     Rule
	cfg      Options
	rewrites int
}

// newEngine validates collaborators and parses options; fail-fast before
// any rewriting starts.
func newEngine(tbl Table, rule Rule, opts []Option) (*engine, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}
	if rule == nil {
		return nil, ErrNilRule
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &engine{tbl: tbl, rule: rule, cfg: cfg}, nil
}

// rewrite drives t to canonical fixpoint, merging canonical terms into out.
//
// The work-stack is explicit: replacements are pushed and re-examined, so
// arbitrarily deep rewrite chains consume heap, not call stack. Termination
// depends solely on the exchange rule strictly decreasing a well-founded
// measure with each rewrite.
func (eng *engine) rewrite(out *algebra.Elements, t algebra.Term) error {
	if t.IsZero() {
		return nil
	}
	stack := []algebra.Term{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 1) Position every generator under the table; any miss fails
		//    the run before the pair scan.
		pos, err := eng.positions(cur.ID)
		if err != nil {
			return err
		}

		// 2) First adjacent pair with strictly ascending positions.
		i := firstAscending(pos)
		if i < 0 {
			// 3) Non-increasing throughout: cur is canonical.
			eng.cfg.OnCanonical(cur)
			if err = out.Add(cur); err != nil {
				return err
			}

			continue
		}

		// 4) Equal generators can never be out of order under a
		//    consistent table; assert before invoking the rule.
		a, b := cur.ID.At(i), cur.ID.At(i+1)
		if a == b {
			return fmt.Errorf("%w: %s", ErrEqualAdjacent, a)
		}

		// 5) Opt-in budget: one unit per exchange-rule invocation.
		if eng.cfg.MaxRewrites > 0 {
			eng.rewrites++
			if eng.rewrites > eng.cfg.MaxRewrites {
				return fmt.Errorf("%w: %d", ErrRewriteBudget, eng.cfg.MaxRewrites)
			}
		}

		// 6) Split around the offending pair: left carries the
		//    coefficient and kind, middle and right carry coefficient 1.
		left := algebra.NewTerm(cur.Kind, cur.Value, cur.ID.Slice(0, i))
		right := algebra.NewTerm(algebra.KindScalar, 1, cur.ID.Slice(i+2, cur.ID.Rank()))

		// 7) Expand the pair through the rule and push each
		//    recombination left·m·right for re-examination.
		eng.cfg.OnExchange(a, b)
		repls, err := eng.rule(a, b, eng.tbl)
		if err != nil {
			return err
		}
		for _, m := range repls {
			lm, err := left.MulWith(m, eng.cfg.Promote)
			if err != nil {
				return err
			}
			full, err := lm.MulWith(right, eng.cfg.Promote)
			if err != nil {
				return err
			}
			if full.IsZero() {
				continue // annihilated: dropped, never pushed
			}
			stack = append(stack, full)
		}
	}

	return nil
}

// positions resolves each generator's ordinal under the table.
// Returns ErrUnitUnordered on the first miss.
func (eng *engine) positions(id ident.ID) ([]int, error) {
	pos := make([]int, id.Rank())
	for j := range pos {
		p, ok := eng.tbl.Position(id.At(j))
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnitUnordered, id.At(j))
		}
		pos[j] = p
	}

	return pos, nil
}

// firstAscending returns the first index i with pos[i] < pos[i+1], or -1
// when the sequence is non-increasing throughout (already canonical).
func firstAscending(pos []int) int {
	for i := 0; i+1 < len(pos); i++ {
		if pos[i] < pos[i+1] {
			return i
		}
	}

	return -1
}
