// Package canon: parallel canonicalization over entry shards.
package canon

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/opalg/algebra"
)

// PermuteParallel canonicalizes e's entries across workers goroutines and
// returns the merged result. Each worker owns a private accumulator — no
// shared mutable state exists while the group runs — and the accumulators
// are merged sequentially afterwards, so the result equals Permute's.
//
// Cancellation is honored between terms only: once a term's rewrite starts
// it runs to completion, and a non-terminating exchange rule inside one
// term remains the collaborator's programming error. The rewrite budget,
// when set, applies per worker. Hooks run concurrently and must be safe for
// concurrent use.
//
// Returns ErrBadWorkers for a non-positive worker count; the remaining
// error surface matches Permute, plus the context error on cancellation.
// Complexity: Permute's work divided across min(workers, entries)
// goroutines, plus the O(n) merge.
func PermuteParallel(ctx context.Context, e *algebra.Elements, tbl Table, rule Rule, workers int, opts ...Option) (*algebra.Elements, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, workers)
	}
	// Validate collaborators and options once, before spawning anything.
	if _, err := newEngine(tbl, rule, opts); err != nil {
		return nil, err
	}
	out := &algebra.Elements{}
	if e == nil || e.IsZero() {
		return out, nil
	}
	terms := e.Terms()
	if workers > len(terms) {
		workers = len(terms)
	}

	accs := make([]*algebra.Elements, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		acc := &algebra.Elements{}
		accs[w] = acc
		first := w
		g.Go(func() error {
			eng, err := newEngine(tbl, rule, opts)
			if err != nil {
				return err
			}
			// Strided shard: worker w takes entries w, w+workers, … .
			for i := first; i < len(terms); i += workers {
				if err = gctx.Err(); err != nil {
					return err
				}
				if err = eng.rewrite(acc, terms[i]); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Sequential merge: order-independent by the container's merge rules.
	for _, acc := range accs {
		if err := out.AddElements(acc); err != nil {
			return nil, err
		}
	}

	return out, nil
}
