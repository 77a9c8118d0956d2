// Package graded: the four shipped combinatorial enumerations.
//
// Every rule emits its tuples in strictly ascending lexicographic order and
// yields exactly one empty tuple at rank 0, as the Rule contract requires.
package graded

// Combinations enumerates strictly increasing tuples — selections without
// repetition where order does not matter. Yields C(n, rank) tuples; none
// when rank exceeds n.
//
// Natural fit for fermionic products, where a generator never repeats.
type Combinations struct{}

// Tuples implements Rule.
// Complexity: O(C(n, rank)·rank).
func (Combinations) Tuples(n, rank int) [][]int {
	if rank == 0 {
		return [][]int{{}}
	}
	if rank > n {
		return nil
	}
	// Start from the lexicographically least tuple [0, 1, …, rank-1].
	tuple := make([]int, rank)
	for i := range tuple {
		tuple[i] = i
	}
	var out [][]int
	for {
		out = append(out, append([]int(nil), tuple...))
		// Advance the rightmost position that still has headroom.
		i := rank - 1
		for i >= 0 && tuple[i] == n-rank+i {
			i--
		}
		if i < 0 {
			break
		}
		tuple[i]++
		for j := i + 1; j < rank; j++ {
			tuple[j] = tuple[j-1] + 1
		}
	}

	return out
}

// Multisets enumerates non-decreasing tuples — combinations with
// repetition. Yields C(n+rank−1, rank) tuples; none over an empty base.
//
// Natural fit for bosonic products, where a generator may repeat.
type Multisets struct{}

// Tuples implements Rule.
// Complexity: O(C(n+rank−1, rank)·rank).
func (Multisets) Tuples(n, rank int) [][]int {
	if rank == 0 {
		return [][]int{{}}
	}
	if n <= 0 {
		return nil
	}
	tuple := make([]int, rank)
	var out [][]int
	for {
		out = append(out, append([]int(nil), tuple...))
		// Advance the rightmost position below n-1, then level the tail.
		i := rank - 1
		for i >= 0 && tuple[i] == n-1 {
			i--
		}
		if i < 0 {
			break
		}
		tuple[i]++
		for j := i + 1; j < rank; j++ {
			tuple[j] = tuple[i]
		}
	}

	return out
}

// Permutations enumerates tuples of distinct indices in every order —
// selections without repetition where order matters. Yields
// n·(n−1)·…·(n−rank+1) tuples; none when rank exceeds n.
type Permutations struct{}

// Tuples implements Rule.
// Complexity: O(n!/(n−rank)!·rank).
func (Permutations) Tuples(n, rank int) [][]int {
	if rank == 0 {
		return [][]int{{}}
	}
	if rank > n {
		return nil
	}
	var out [][]int
	used := make([]bool, n)
	tuple := make([]int, 0, rank)
	// Depth-first extension in ascending index order keeps the emitted
	// sequence lexicographic.
	var extend func()
	extend = func() {
		if len(tuple) == rank {
			out = append(out, append([]int(nil), tuple...))

			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			tuple = append(tuple, i)
			extend()
			tuple = tuple[:len(tuple)-1]
			used[i] = false
		}
	}
	extend()

	return out
}

// Words enumerates every tuple over the base positions — selections with
// repetition where order matters. Yields n^rank tuples: the full product
// universe of the rank; none over an empty base.
type Words struct{}

// Tuples implements Rule.
// Complexity: O(n^rank·rank).
func (Words) Tuples(n, rank int) [][]int {
	if rank == 0 {
		return [][]int{{}}
	}
	if n <= 0 {
		return nil
	}
	tuple := make([]int, rank)
	var out [][]int
	for {
		out = append(out, append([]int(nil), tuple...))
		// Odometer step in base n.
		i := rank - 1
		for i >= 0 && tuple[i] == n-1 {
			i--
		}
		if i < 0 {
			break
		}
		tuple[i]++
		for j := i + 1; j < rank; j++ {
			tuple[j] = 0
		}
	}

	return out
}
