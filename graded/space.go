// Package graded: the Space type — rank-bucketed ordered tuple tables with
// binary-search lookup.
package graded

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/opalg/ident"
)

// Space is the enumerated identifier universe: for every rank in the
// configured range, the ordered table of index tuples the rule emitted, plus
// the base generators the tuples select from.
//
// A Space is built once by NewSpace and read-only afterwards; concurrent
// readers need no synchronization.
type Space struct {
	base    []ident.Unit       // ordered base generators
	pos     map[ident.Unit]int // base generator → position in base
	minRank int
	maxRank int
	buckets [][][]int // per enumerated rank, ascending tuple table
	offsets []int     // global position of each bucket's first tuple
	total   int
}

// NewSpace builds the enumerated universe of products over base under the
// given combinatorial rule.
//
// Validation is fail-fast at build time: ErrEmptyBase, ErrDuplicateBase and
// ErrNilRule for the inputs, ErrRankBounds for a negative minimum or
// inverted range, and ErrTupleArity / ErrTupleRange / ErrTupleOrder when the
// rule's output breaks its contract. A Space that builds successfully
// answers every lookup without further validation.
// Complexity: O(Σ_r T(r)·r) over the rule's tuple counts.
func NewSpace(base []ident.Unit, rule Rule, opts ...Option) (*Space, error) {
	// 1) Validate collaborators before touching any option.
	if len(base) == 0 {
		return nil, ErrEmptyBase
	}
	if rule == nil {
		return nil, ErrNilRule
	}

	// 2) Apply functional options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinRank < 0 || cfg.MaxRank < cfg.MinRank {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrRankBounds, cfg.MinRank, cfg.MaxRank)
	}

	// 3) Index the base and reject duplicates (positions must be unique).
	s := &Space{
		base:    append([]ident.Unit(nil), base...),
		pos:     make(map[ident.Unit]int, len(base)),
		minRank: cfg.MinRank,
		maxRank: cfg.MaxRank,
	}
	for i, u := range s.base {
		if _, dup := s.pos[u]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBase, u)
		}
		s.pos[u] = i
	}

	// 4) Enumerate each rank and verify the rule's contract as we go.
	n := len(s.base)
	for rank := s.minRank; rank <= s.maxRank; rank++ {
		tuples := rule.Tuples(n, rank)
		for i, tuple := range tuples {
			if len(tuple) != rank {
				return nil, fmt.Errorf("%w: rank %d, tuple %v", ErrTupleArity, rank, tuple)
			}
			for _, idx := range tuple {
				if idx < 0 || idx >= n {
					return nil, fmt.Errorf("%w: rank %d, tuple %v", ErrTupleRange, rank, tuple)
				}
			}
			if i > 0 && lexCompare(tuples[i-1], tuple) >= 0 {
				return nil, fmt.Errorf("%w: rank %d, position %d", ErrTupleOrder, rank, i)
			}
		}
		s.buckets = append(s.buckets, tuples)
		s.offsets = append(s.offsets, s.total)
		s.total += len(tuples)
	}

	return s, nil
}

// Len returns the total number of enumerated identifiers across all ranks.
func (s *Space) Len() int { return s.total }

// Ranks returns the enumerated ranks in ascending order.
func (s *Space) Ranks() []int {
	ranks := make([]int, 0, s.maxRank-s.minRank+1)
	for r := s.minRank; r <= s.maxRank; r++ {
		ranks = append(ranks, r)
	}

	return ranks
}

// RankLen returns the number of identifiers enumerated at the given rank,
// zero for ranks outside the configured range.
func (s *Space) RankLen(rank int) int {
	if rank < s.minRank || rank > s.maxRank {
		return 0
	}

	return len(s.buckets[rank-s.minRank])
}

// Base returns a copy of the ordered base generators.
func (s *Space) Base() []ident.Unit {
	return append([]ident.Unit(nil), s.base...)
}

// At maps a global position to its product identifier: resolve the rank
// bucket, pick the tuple, substitute base generators.
// Returns ErrIndexRange outside [0, Len()).
// Complexity: O(log ranks + rank).
func (s *Space) At(i int) (ident.ID, error) {
	if i < 0 || i >= s.total {
		return ident.ID{}, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, s.total)
	}
	// Last bucket whose offset does not exceed i.
	b := sort.Search(len(s.offsets), func(k int) bool { return s.offsets[k] > i }) - 1
	tuple := s.buckets[b][i-s.offsets[b]]
	units := make([]ident.Unit, len(tuple))
	for j, idx := range tuple {
		units[j] = s.base[idx]
	}

	return ident.NewID(units...), nil
}

// IndexOf maps a product identifier back to its global position: resolve
// each atom's base position, then binary-search the rank bucket for the
// resulting tuple.
// Returns ErrNotFound when an atom is outside the base set, the rank is
// outside the configured bounds, or the rule never enumerates the tuple.
// Complexity: O(rank + log T(rank)).
func (s *Space) IndexOf(id ident.ID) (int, error) {
	rank := id.Rank()
	if rank < s.minRank || rank > s.maxRank {
		return 0, fmt.Errorf("%w: rank %d outside [%d, %d]", ErrNotFound, rank, s.minRank, s.maxRank)
	}
	tuple := make([]int, rank)
	for j := 0; j < rank; j++ {
		p, ok := s.pos[id.At(j)]
		if !ok {
			return 0, fmt.Errorf("%w: atom %s not in base", ErrNotFound, id.At(j))
		}
		tuple[j] = p
	}
	bucket := s.buckets[rank-s.minRank]
	// First tuple not lexicographically below the target.
	k := sort.Search(len(bucket), func(m int) bool { return lexCompare(bucket[m], tuple) >= 0 })
	if k == len(bucket) || lexCompare(bucket[k], tuple) != 0 {
		return 0, fmt.Errorf("%w: %s not enumerated by the rule", ErrNotFound, id)
	}

	return s.offsets[rank-s.minRank] + k, nil
}

// Contains reports whether the space enumerates id.
func (s *Space) Contains(id ident.ID) bool {
	_, err := s.IndexOf(id)

	return err == nil
}

// lexCompare orders two equal-arity tuples lexicographically.
// Returns -1, 0, or +1.
func lexCompare(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}
