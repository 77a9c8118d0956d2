package graded_test

import (
	"testing"

	"github.com/katalvlaran/opalg/graded"
	"github.com/katalvlaran/opalg/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseXYZ builds the three-generator fixture base {x, y, z}.
func baseXYZ(t *testing.T) []ident.Unit {
	t.Helper()
	units := make([]ident.Unit, 0, 3)
	for _, tag := range []rune{'x', 'y', 'z'} {
		u, err := ident.NewUnit(0, 0, tag, 0.5)
		require.NoError(t, err)
		units = append(units, u)
	}

	return units
}

// Contract-violating rule stubs for build validation tests.

type badArity struct{}

func (badArity) Tuples(_, rank int) [][]int {
	if rank == 0 {
		return [][]int{{}}
	}

	return [][]int{{0, 0}}
}

type badRange struct{}

func (badRange) Tuples(n, rank int) [][]int {
	if rank == 0 {
		return [][]int{{}}
	}

	return [][]int{{n}}
}

type badOrder struct{}

func (badOrder) Tuples(_, rank int) [][]int {
	if rank == 0 {
		return [][]int{{}}
	}

	return [][]int{{1}, {0}}
}

// TestNewSpace_InputValidation verifies the fail-fast input sentinels.
func TestNewSpace_InputValidation(t *testing.T) {
	base := baseXYZ(t)

	_, err := graded.NewSpace(nil, graded.Multisets{})
	assert.ErrorIs(t, err, graded.ErrEmptyBase)

	_, err = graded.NewSpace(base, nil)
	assert.ErrorIs(t, err, graded.ErrNilRule)

	dup := append(append([]ident.Unit(nil), base...), base[0])
	_, err = graded.NewSpace(dup, graded.Multisets{})
	assert.ErrorIs(t, err, graded.ErrDuplicateBase)

	_, err = graded.NewSpace(base, graded.Multisets{}, graded.WithMinRank(-1))
	assert.ErrorIs(t, err, graded.ErrRankBounds)

	_, err = graded.NewSpace(base, graded.Multisets{}, graded.WithMinRank(2), graded.WithMaxRank(1))
	assert.ErrorIs(t, err, graded.ErrRankBounds)
}

// TestNewSpace_RuleContract verifies out-of-contract rule output is caught
// at build time, tuple by tuple.
func TestNewSpace_RuleContract(t *testing.T) {
	base := baseXYZ(t)

	_, err := graded.NewSpace(base, badArity{})
	assert.ErrorIs(t, err, graded.ErrTupleArity)

	_, err = graded.NewSpace(base, badRange{})
	assert.ErrorIs(t, err, graded.ErrTupleRange)

	_, err = graded.NewSpace(base, badOrder{})
	assert.ErrorIs(t, err, graded.ErrTupleOrder)
}

// TestSpace_DefaultShape verifies the default rank range 0..1: the scalar
// grade plus the base generators themselves.
func TestSpace_DefaultShape(t *testing.T) {
	base := baseXYZ(t)
	sp, err := graded.NewSpace(base, graded.Multisets{})
	require.NoError(t, err)

	assert.Equal(t, 4, sp.Len(), "1 scalar + 3 generators")
	assert.Equal(t, []int{0, 1}, sp.Ranks())
	assert.Equal(t, 1, sp.RankLen(0))
	assert.Equal(t, 3, sp.RankLen(1))
	assert.Equal(t, 0, sp.RankLen(2), "unenumerated rank reports zero")

	id, err := sp.At(0)
	require.NoError(t, err)
	assert.True(t, id.IsScalar(), "position 0 is the scalar identifier")
}

// TestSpace_GradedLayout verifies rank buckets are laid out low rank first
// and each bucket keeps the rule's enumeration order.
func TestSpace_GradedLayout(t *testing.T) {
	base := baseXYZ(t)
	sp, err := graded.NewSpace(base, graded.Multisets{}, graded.WithMaxRank(2))
	require.NoError(t, err)

	require.Equal(t, 10, sp.Len(), "1 + 3 + 6 multiset products")

	// Rank-1 bucket follows base order.
	for i, u := range base {
		id, err := sp.At(1 + i)
		require.NoError(t, err)
		assert.True(t, id.Equal(ident.NewID(u)), "rank-1 position %d", i)
	}

	// First rank-2 identifier is x·x, per the multiset enumeration.
	id, err := sp.At(4)
	require.NoError(t, err)
	assert.True(t, id.Equal(ident.NewID(base[0], base[0])))
}

// TestSpace_RoundTrip verifies IndexOf(At(i)) == i across every valid
// position and all shipped rules.
func TestSpace_RoundTrip(t *testing.T) {
	base := baseXYZ(t)
	rules := []graded.Rule{
		graded.Combinations{},
		graded.Multisets{},
		graded.Permutations{},
		graded.Words{},
	}
	for _, rule := range rules {
		sp, err := graded.NewSpace(base, rule, graded.WithMaxRank(3))
		require.NoError(t, err)
		for i := 0; i < sp.Len(); i++ {
			id, err := sp.At(i)
			require.NoError(t, err, "%T At(%d)", rule, i)
			j, err := sp.IndexOf(id)
			require.NoError(t, err, "%T IndexOf(%s)", rule, id)
			assert.Equal(t, i, j, "%T round trip at %d", rule, i)
		}
	}
}

// gapped enumerates combinations everywhere except rank 2, leaving that
// interior bucket empty.
type gapped struct{}

func (gapped) Tuples(n, rank int) [][]int {
	if rank == 2 {
		return nil
	}

	return graded.Combinations{}.Tuples(n, rank)
}

// TestSpace_EmptyMiddleBucket verifies global positions stay contiguous and
// the At/IndexOf round trip holds when a rule yields nothing for an interior
// rank.
func TestSpace_EmptyMiddleBucket(t *testing.T) {
	base := baseXYZ(t)
	sp, err := graded.NewSpace(base, gapped{}, graded.WithMaxRank(3))
	require.NoError(t, err)

	require.Equal(t, 5, sp.Len(), "1 + 3 + 0 + 1 tuples")
	assert.Equal(t, 0, sp.RankLen(2), "interior bucket is empty")

	for i := 0; i < sp.Len(); i++ {
		id, err := sp.At(i)
		require.NoError(t, err, "At(%d)", i)
		j, err := sp.IndexOf(id)
		require.NoError(t, err, "IndexOf(%s)", id)
		assert.Equal(t, i, j, "round trip at %d", i)
	}

	// The position right after the gap carries rank 3, not rank 2.
	id, err := sp.At(4)
	require.NoError(t, err)
	assert.Equal(t, 3, id.Rank(), "positions skip the empty bucket")

	_, err = sp.IndexOf(ident.NewID(base[0], base[1]))
	assert.ErrorIs(t, err, graded.ErrNotFound, "gap-rank identifiers are not enumerated")
}

// TestSpace_AtOutOfRange verifies ErrIndexRange on both boundaries.
func TestSpace_AtOutOfRange(t *testing.T) {
	sp, err := graded.NewSpace(baseXYZ(t), graded.Multisets{})
	require.NoError(t, err)

	_, err = sp.At(-1)
	assert.ErrorIs(t, err, graded.ErrIndexRange)
	_, err = sp.At(sp.Len())
	assert.ErrorIs(t, err, graded.ErrIndexRange)
}

// TestSpace_IndexOfNotFound verifies the three not-found shapes: foreign
// atom, rank outside bounds, tuple the rule never emits.
func TestSpace_IndexOfNotFound(t *testing.T) {
	base := baseXYZ(t)
	sp, err := graded.NewSpace(base, graded.Multisets{}, graded.WithMaxRank(2))
	require.NoError(t, err)

	foreign, err := ident.NewUnit(9, 9, 'w', 0)
	require.NoError(t, err)
	_, err = sp.IndexOf(ident.NewID(foreign))
	assert.ErrorIs(t, err, graded.ErrNotFound, "atom outside the base set")

	_, err = sp.IndexOf(ident.NewID(base[0], base[0], base[0]))
	assert.ErrorIs(t, err, graded.ErrNotFound, "rank above the configured maximum")

	// y·x is a decreasing tuple; the multiset rule enumerates only x·y.
	_, err = sp.IndexOf(ident.NewID(base[1], base[0]))
	assert.ErrorIs(t, err, graded.ErrNotFound, "tuple not enumerated by the rule")

	assert.True(t, sp.Contains(ident.NewID(base[0], base[1])))
	assert.False(t, sp.Contains(ident.NewID(base[1], base[0])))
}

// TestSpace_MinRankOffset verifies a truncated lower bound: the scalar and
// rank-1 grades disappear and global positions start at the minimum rank.
func TestSpace_MinRankOffset(t *testing.T) {
	base := baseXYZ(t)
	sp, err := graded.NewSpace(base, graded.Multisets{},
		graded.WithMinRank(2), graded.WithMaxRank(2))
	require.NoError(t, err)

	assert.Equal(t, 6, sp.Len())
	assert.Equal(t, []int{2}, sp.Ranks())

	id, err := sp.At(0)
	require.NoError(t, err)
	assert.Equal(t, 2, id.Rank(), "first position carries the minimum rank")

	_, err = sp.IndexOf(ident.ScalarID())
	assert.ErrorIs(t, err, graded.ErrNotFound, "scalar grade not enumerated")
}

// TestSpace_BaseCopy verifies the exposed base shares no storage with the
// space.
func TestSpace_BaseCopy(t *testing.T) {
	base := baseXYZ(t)
	sp, err := graded.NewSpace(base, graded.Multisets{})
	require.NoError(t, err)

	exposed := sp.Base()
	w, err := ident.NewUnit(7, 7, 'w', 0)
	require.NoError(t, err)
	exposed[0] = w

	fresh := sp.Base()
	assert.Equal(t, base[0], fresh[0], "mutating the exposed copy must not affect the space")
}
