// Package ident defines the identifier primitives of the operator algebra:
// Unit, the atomic generator identifier, and ID, an ordered product of Units
// carrying a unique, totally-ordered, hashable Key.
//
// 🚀 What is ident?
//
//	Every operator product in the algebra is named by the ordered tuple of
//	generators it is built from.  ident gives that naming scheme a concrete,
//	immutable shape:
//	  • Unit   — one generator: site, orbital, component tag, spin magnitude
//	  • ID     — an ordered tuple of Units (rank = tuple length)
//	  • Key    — a packed byte string whose plain byte order equals the
//	    algebraic rank-then-lexicographic order of the ID it encodes
//
// ✨ Key features:
//   - construction-time validation: a Unit with an unsupported tag or a
//     non-finite spin is rejected immediately, never detected later
//   - rank-0 ID is the multiplicative identity (the scalar identifier)
//   - Concat is associative and never commutative; rank adds
//   - Compare orders by rank first, then field-wise lexicographically
//   - Key() lets containers use an ID as a map key and sort entries with
//     ordinary string comparison — no custom comparators at call sites
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/opalg/ident"
//
//	x, err := ident.NewUnit(0, 0, 'x', 0.5)
//	if err != nil { ... }
//	y, _ := ident.NewUnit(0, 0, 'y', 0.5)
//
//	xy := ident.NewID(x, y)       // the product x·y, rank 2
//	fmt.Println(xy.Rank())        // 2
//	fmt.Println(xy.Less(ident.NewID(x, y, x))) // true: lower rank sorts first
//
// Performance:
//
//   - Compare: O(rank); Key: O(rank); Concat/Slice: O(rank) copies
//   - Unit is a comparable value type and may be used directly as a map key
//
// IDs are immutable: every "modification" (Concat, Slice, Map) returns a new
// value and never aliases the receiver's storage.
package ident
