// Package ident: ID — the composite identifier naming one operator product.
//
// This file implements the ordered-tuple operations: rank, concatenation,
// rank-then-lexicographic comparison, sub-product slicing, per-field
// projection, and the packed order-preserving Key.
package ident

import (
	"encoding/binary"
	"strings"
)

// Key is the unique, hashable identity of an ID.
//
// Keys are packed byte strings: a 4-byte big-endian rank prefix followed by
// the fixed-width order-preserving encoding of each Unit. Plain byte/string
// comparison of Keys therefore equals ID.Compare — containers may use Keys
// both as map keys and as sort keys with no custom comparator.
type Key string

// ID is a composite identifier: an immutable ordered sequence of Units naming
// one basis product of the algebra. The zero value is the rank-0 scalar
// identifier, the multiplicative identity.
//
// IDs are constructed once and never mutated; Concat, Slice and Map return
// fresh values that share no storage with the receiver.
type ID struct {
	units []Unit
}

// NewID constructs an ID from the given Units, in order.
// Construction never fails structurally: Unit validity was already enforced
// by NewUnit at atom-construction time.
// Complexity: O(rank).
func NewID(units ...Unit) ID {
	if len(units) == 0 {
		return ID{}
	}
	cp := make([]Unit, len(units))
	copy(cp, units)

	return ID{units: cp}
}

// ScalarID returns the rank-0 identifier — the multiplicative identity that
// names the embedded scalar component of the algebra.
func ScalarID() ID { return ID{} }

// Rank returns the number of generators in the product.
// Complexity: O(1).
func (id ID) Rank() int { return len(id.units) }

// IsScalar reports whether id is the rank-0 scalar identifier.
func (id ID) IsScalar() bool { return len(id.units) == 0 }

// At returns the i-th Unit of the product.
// Panics with the usual slice bounds semantics when i is outside [0, Rank());
// indexing misuse is a programmer error, not a runtime condition.
// Complexity: O(1).
func (id ID) At(i int) Unit { return id.units[i] }

// Units returns a copy of the underlying Unit sequence.
// Complexity: O(rank).
func (id ID) Units() []Unit {
	if len(id.units) == 0 {
		return nil
	}
	cp := make([]Unit, len(id.units))
	copy(cp, id.units)

	return cp
}

// Slice returns the sub-product spanning positions [i, j).
// Panics with slice bounds semantics when 0 ≤ i ≤ j ≤ Rank() is violated.
// Complexity: O(j−i).
func (id ID) Slice(i, j int) ID {
	if i == j {
		return ID{}
	}
	cp := make([]Unit, j-i)
	copy(cp, id.units[i:j])

	return ID{units: cp}
}

// Concat returns the product identifier id ⧺ others[0] ⧺ others[1] ⧺ … .
// Concatenation is associative, never commutative; the result's rank is the
// sum of the operands' ranks. Rank-0 operands are absorbed.
// Complexity: O(total rank).
func (id ID) Concat(others ...ID) ID {
	total := len(id.units)
	for _, o := range others {
		total += len(o.units)
	}
	if total == 0 {
		return ID{}
	}
	joined := make([]Unit, 0, total)
	joined = append(joined, id.units...)
	for _, o := range others {
		joined = append(joined, o.units...)
	}

	return ID{units: joined}
}

// Compare orders two IDs: by rank first (lower rank sorts before higher),
// then lexicographically over the contained Units.
// Returns -1 if id < o, 0 if equal, +1 if id > o.
// Complexity: O(rank).
func (id ID) Compare(o ID) int {
	if len(id.units) != len(o.units) {
		return sign(len(id.units) < len(o.units))
	}
	for i := range id.units {
		if c := id.units[i].Compare(o.units[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Less reports whether id orders strictly before o.
func (id ID) Less(o ID) bool { return id.Compare(o) < 0 }

// Equal reports whether id and o name the same product.
func (id ID) Equal(o ID) bool { return id.Compare(o) == 0 }

// Key packs id into its unique order-preserving byte-string identity.
// Complexity: O(rank).
func (id ID) Key() Key {
	b := make([]byte, 0, 4+len(id.units)*unitKeyLen)
	b = binary.BigEndian.AppendUint32(b, uint32(len(id.units)))
	for _, u := range id.units {
		b = u.appendKey(b)
	}

	return Key(b)
}

// Map returns a new ID with fn applied to every contained Unit — the
// immutable form of "replace one field across all contained atoms".
// fn must return valid Units (route any Tag/Spin change through NewUnit).
// Complexity: O(rank).
func (id ID) Map(fn func(Unit) Unit) ID {
	if len(id.units) == 0 {
		return ID{}
	}
	mapped := make([]Unit, len(id.units))
	for i, u := range id.units {
		mapped[i] = fn(u)
	}

	return ID{units: mapped}
}

// Project extracts one field across all Units of id using the given
// field selector, preserving product order.
// Complexity: O(rank).
func Project[F any](id ID, field func(Unit) F) []F {
	out := make([]F, len(id.units))
	for i, u := range id.units {
		out[i] = field(u)
	}

	return out
}

// Sites projects the Site field across the product.
func (id ID) Sites() []int { return Project(id, func(u Unit) int { return u.Site }) }

// Orbitals projects the Orbital field across the product.
func (id ID) Orbitals() []int { return Project(id, func(u Unit) int { return u.Orbital }) }

// Tags projects the Tag field across the product.
func (id ID) Tags() []rune { return Project(id, func(u Unit) rune { return u.Tag }) }

// Spins projects the Spin field across the product.
func (id ID) Spins() []float64 { return Project(id, func(u Unit) float64 { return u.Spin }) }

// String renders a terse debug form: "I" for the scalar identifier, otherwise
// the contained Units joined with '·'. Debug output only.
func (id ID) String() string {
	if len(id.units) == 0 {
		return "I"
	}
	parts := make([]string, len(id.units))
	for i, u := range id.units {
		parts[i] = u.String()
	}

	return strings.Join(parts, "·")
}
