// Package ident_test provides runnable examples for building and ordering
// operator identifiers. Each example runs via "go test -run Example" and
// prints its expected output.
package ident_test

import (
	"fmt"

	"github.com/katalvlaran/opalg/ident"
)

// ExampleNewID demonstrates building a two-generator product identifier and
// inspecting its rank and rendering.
// Complexity: O(rank) for construction and rendering.
func ExampleNewID() {
	// 1) Build two validated atomic generators on neighboring sites.
	x, _ := ident.NewUnit(0, 0, 'x', 0.5)
	y, _ := ident.NewUnit(1, 0, 'y', 0.5)

	// 2) Name the ordered product x·y.
	id := ident.NewID(x, y)

	// 3) Rank counts the generators; String renders site.orbital.tag/spin.
	fmt.Println(id.Rank(), id)
	// Output: 2 0.0.x/0.5·1.0.y/0.5
}

// ExampleID_Compare demonstrates rank-then-lexicographic ordering: every
// rank-1 identifier sorts before every rank-2 identifier, and equal ranks
// fall back to lexicographic order over the generators.
// Complexity: O(rank) per comparison.
func ExampleID_Compare() {
	// 1) One lexicographically "large" single generator.
	z, _ := ident.NewUnit(9, 9, 'z', 0)
	// 2) One lexicographically "small" pair.
	a, _ := ident.NewUnit(0, 0, 'a', 0)

	single := ident.NewID(z)
	pair := ident.NewID(a, a)

	// 3) Lower rank wins regardless of content.
	fmt.Println(single.Compare(pair), pair.Compare(single), single.Compare(single))
	// Output: -1 1 0
}

// ExampleID_Concat demonstrates that concatenation is associative but never
// commutative, and that the scalar identifier is absorbed.
// Complexity: O(total rank).
func ExampleID_Concat() {
	x, _ := ident.NewUnit(0, 0, 'x', 0)
	y, _ := ident.NewUnit(0, 0, 'y', 0)
	a, b := ident.NewID(x), ident.NewID(y)

	// 1) a⧺b and b⧺a name different products.
	fmt.Println(a.Concat(b), b.Concat(a))
	// 2) The rank-0 scalar identifier is the concatenation identity.
	fmt.Println(a.Concat(ident.ScalarID()).Equal(a))
	// Output:
	// 0.0.x·0.0.y 0.0.y·0.0.x
	// true
}

// ExampleProject demonstrates extracting one field across all generators of
// a product, preserving order.
// Complexity: O(rank).
func ExampleProject() {
	up, _ := ident.NewUnit(0, 1, '+', 0.5)
	dn, _ := ident.NewUnit(2, 1, '-', 0.5)
	id := ident.NewID(up, dn)

	// 1) Field projections keep product order.
	fmt.Println(id.Sites())
	// 2) Any derived quantity works through the generic selector.
	fmt.Println(ident.Project(id, func(u ident.Unit) string { return string(u.Tag) }))
	// Output:
	// [0 2]
	// [+ -]
}
