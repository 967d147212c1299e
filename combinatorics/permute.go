package combinatorics

import (
	"iter"
	"slices"
)

// Permutations lazily yields all n! arrangements of c using Heap's
// algorithm: each arrangement differs from the previous one by a single
// swap. The order is complete but not lexicographic; use
// UniquePermutations when order matters or c holds repeated values.
//
// Every arrangement keeps c's flavor. An empty collection yields one empty
// permutation. The collection is validated before the sequence is returned;
// an invalid one fails with ErrInvalidInput.
//
// Complexity: O(1) amortized swaps per permutation plus O(n) to copy it out.
func Permutations[T comparable](c Collection[T]) (iter.Seq[Collection[T]], error) {
	if _, _, err := Detect(c); err != nil {
		return nil, err
	}

	return func(yield func(Collection[T]) bool) {
		perm := c.Items()
		n := len(perm)
		if !yield(build(c.flavor, perm)) {
			return
		}

		// state[i] counts the swaps done at level i; it plays the role of the
		// loop counter of the recursive formulation.
		state := make([]int, n)
		for i := 0; i < n; {
			if state[i] < i {
				if i%2 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[state[i]], perm[i] = perm[i], perm[state[i]]
				}
				if !yield(build(c.flavor, perm)) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}, nil
}

// Permute returns all n! permutations of c eagerly, in Heap's order.
// It returns ErrInvalidInput for an invalid collection.
func Permute[T comparable](c Collection[T]) ([]Collection[T], error) {
	seq, err := Permutations(c)
	if err != nil {
		return nil, err
	}

	capacity := 1
	for i := 2; i <= min(c.Len(), 10); i++ {
		capacity *= i
	}
	out := make([]Collection[T], 0, capacity)

	return slices.AppendSeq(out, seq), nil
}
