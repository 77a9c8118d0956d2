// Package graded_test provides runnable examples for enumerating identifier
// universes. Each example runs via "go test -run Example" and prints its
// expected output.
package graded_test

import (
	"fmt"

	"github.com/katalvlaran/opalg/graded"
	"github.com/katalvlaran/opalg/ident"
)

// ExampleNewSpace demonstrates enumerating every multiset product of two
// generators up to rank 2, in graded order.
// Complexity: O(Σ_r T(r)·r) for the build, O(rank) per At.
func ExampleNewSpace() {
	// 1) A two-generator base {x, y}.
	x, _ := ident.NewUnit(0, 0, 'x', 0)
	y, _ := ident.NewUnit(0, 0, 'y', 0)

	// 2) Non-decreasing products up to rank 2.
	sp, _ := graded.NewSpace([]ident.Unit{x, y}, graded.Multisets{}, graded.WithMaxRank(2))

	// 3) Walk the graded layout: scalar, rank 1, rank 2.
	for i := 0; i < sp.Len(); i++ {
		id, _ := sp.At(i)
		fmt.Println(i, id)
	}
	// Output:
	// 0 I
	// 1 0.0.x
	// 2 0.0.y
	// 3 0.0.x·0.0.x
	// 4 0.0.x·0.0.y
	// 5 0.0.y·0.0.y
}

// ExampleSpace_IndexOf demonstrates the inverse lookup and its not-found
// behavior for identifiers outside the enumerated universe.
// Complexity: O(rank + log T(rank)).
func ExampleSpace_IndexOf() {
	x, _ := ident.NewUnit(0, 0, 'x', 0)
	y, _ := ident.NewUnit(0, 0, 'y', 0)
	sp, _ := graded.NewSpace([]ident.Unit{x, y}, graded.Multisets{}, graded.WithMaxRank(2))

	// 1) Enumerated product: found at its graded position.
	i, err := sp.IndexOf(ident.NewID(x, y))
	fmt.Println(i, err)

	// 2) y·x is a decreasing tuple the multiset rule never enumerates.
	_, err = sp.IndexOf(ident.NewID(y, x))
	fmt.Println(err != nil)
	// Output:
	// 4 <nil>
	// true
}
