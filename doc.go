// Package opalg is an in-memory engine for computing in operator algebras —
// linear combinations of non-commuting generator products, kept in a sparse
// canonical form and reordered by exact term rewriting.
//
// 🚀 What is opalg?
//
//	A small, deterministic library that brings together:
//		• Identifier primitives: atomic generators & ordered generator products
//		  with a unique, totally-ordered, hashable key
//		• Graded index spaces: enumerable, binary-searchable product universes
//		  partitioned by rank, with pluggable combinatorics
//		• Sparse algebra: coefficient×product terms merged into canonical
//		  linear combinations with automatic cancellation
//		• Canonicalization: stack-based fixpoint rewriting that reorders any
//		  product via a domain-supplied pairwise exchange rule
//
// ✨ Why choose opalg?
//
//   - Exact semantics – merging and cancellation are exact, never tolerance-based
//   - Deterministic – every exposed collection iterates in a stable total order
//   - Pure Go – no cgo, no hidden state, no I/O
//   - Extensible – ordering tables, exchange rules, combinatorics rules and
//     kind-promotion tables are all caller-supplied hooks
//
// Under the hood, everything is organized under four subpackages:
//
//	ident/   — Unit (atomic generator) & ID (generator product) identifier types
//	algebra/ — Term, Elements (sparse linear combination) & kind promotion
//	graded/  — rank-graded index spaces over finite base sets
//	canon/   — the permute rewriting engine (ordering tables, exchange rules)
//
// Quick sketch:
//
//	    x·y   --[exchange rule: x·y → y·x + i·z]-->   y·x + i·z
//
//	one out-of-order product rewritten into its canonical combination.
//
// The physical layer — concrete spin/fermion/boson families, lattices,
// coupling DSLs, rendering — lives in downstream consumers; opalg is only the
// algebraic core they share.
//
//	go get github.com/katalvlaran/opalg
package opalg
