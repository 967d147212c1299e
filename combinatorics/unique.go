package combinatorics

import (
	"cmp"
	"fmt"
	"iter"
	"math/big"
	"slices"

	"github.com/katalvlaran/combinat/numtheory"
)

// NextPermutation rearranges s into its immediate lexicographic successor
// and reports true, or leaves s untouched and reports false when s is
// already the greatest arrangement (sorted descending).
//
// Algorithm L:
//  1. Find the largest i with s[i] < s[i+1]; none means s is the last permutation.
//  2. Find the largest j > i with s[j] > s[i].
//  3. Swap s[i] and s[j], then reverse s[i+1:].
//
// Repeated values are handled naturally: starting from the ascending order,
// every distinct arrangement is visited exactly once.
func NextPermutation[T cmp.Ordered](s []T) bool {
	return NextPermutationFunc(s, cmp.Less[T])
}

// NextPermutationFunc is NextPermutation with a custom strict ordering.
func NextPermutationFunc[T any](s []T, less func(a, b T) bool) bool {
	i := len(s) - 2
	for i >= 0 && !less(s[i], s[i+1]) {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(s) - 1
	for !less(s[i], s[j]) {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])

	return true
}

// UniquePermutations lazily yields each distinct arrangement of c exactly
// once, in strictly ascending lexicographic order by value (not by source
// position). For a multiset with multiplicities r₁, r₂, ... it yields
// n! / (r₁!·r₂!·...) permutations.
//
// Errors: ErrInvalidInput for an invalid collection, reported before any
// permutation is produced.
func UniquePermutations[T cmp.Ordered](c Collection[T]) (iter.Seq[Collection[T]], error) {
	if _, _, err := Detect(c); err != nil {
		return nil, err
	}

	return func(yield func(Collection[T]) bool) {
		work := c.Items()
		slices.Sort(work)
		for {
			if !yield(build(c.flavor, work)) {
				return
			}
			if !NextPermutation(work) {
				return
			}
		}
	}, nil
}

// UniquePermutationsAll collects UniquePermutations eagerly.
// It returns ErrInvalidInput for an invalid collection.
func UniquePermutationsAll[T cmp.Ordered](c Collection[T]) ([]Collection[T], error) {
	seq, err := UniquePermutations(c)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

// NthPermutation returns the index-th (0-based) distinct permutation of c in
// ascending lexicographic order, without enumerating the ones before it.
// Repeated values are allowed; the index ranges over distinct arrangements.
//
// Each position is fixed by walking the remaining distinct values in order
// and skipping whole blocks of n'!/(r₁!·r₂!·...) arrangements.
//
// Errors: ErrInvalidInput for an invalid collection, ErrInvalidArgument when
// index is nil, negative or not below the number of distinct permutations.
func NthPermutation[T cmp.Ordered](c Collection[T], index *big.Int) (Collection[T], error) {
	if _, _, err := Detect(c); err != nil {
		return Collection[T]{}, err
	}

	if index == nil {
		return Collection[T]{}, fmt.Errorf("%w: nil index", ErrInvalidArgument)
	}

	values, counts := multiplicities(c.items)
	remaining := len(c.items)
	total := multinomial(counts, remaining)
	if index.Sign() < 0 || index.Cmp(total) >= 0 {
		return Collection[T]{}, fmt.Errorf("%w: index %s outside [0,%s)", ErrInvalidArgument, index, total)
	}

	rest := new(big.Int).Set(index)
	out := make([]T, 0, remaining)
	for remaining > 0 {
		for v := range values {
			if counts[v] == 0 {
				continue
			}
			// arrangements that start with values[v]
			counts[v]--
			block := multinomial(counts, remaining-1)
			if rest.Cmp(block) < 0 {
				out = append(out, values[v])
				break
			}
			counts[v]++
			rest.Sub(rest, block)
		}
		remaining--
	}

	return build(c.flavor, out), nil
}

// LehmerCode returns code[i] = |{j > i : s[j] < s[i]}|. For a sequence of
// distinct values it is the factorial-base digit string of its rank.
func LehmerCode[T cmp.Ordered](s []T) []int {
	code := make([]int, len(s))
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[i] {
				code[i]++
			}
		}
	}

	return code
}

// PermutationRank returns the 0-based lexicographic rank of s among the
// permutations of its (distinct) values: Σ code[i]·(n-1-i)!.
func PermutationRank[T cmp.Ordered](s []T) *big.Int {
	rank := new(big.Int)
	n := len(s)
	for i, d := range LehmerCode(s) {
		if d == 0 {
			continue
		}
		f, _ := numtheory.Factorial(n - 1 - i)
		rank.Add(rank, f.Mul(f, big.NewInt(int64(d))))
	}

	return rank
}

// multiplicities returns the distinct values of items in ascending order
// and how often each occurs.
func multiplicities[T cmp.Ordered](items []T) ([]T, []int) {
	sorted := slices.Clone(items)
	slices.Sort(sorted)

	var (
		values []T
		counts []int
	)
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			values = append(values, v)
			counts = append(counts, 0)
		}
		counts[len(counts)-1]++
	}

	return values, counts
}

// multinomial returns n! / Π counts[i]! where Σ counts == n.
func multinomial(counts []int, n int) *big.Int {
	out, _ := numtheory.Factorial(n)
	for _, r := range counts {
		f, _ := numtheory.Factorial(r)
		out.Quo(out, f)
	}

	return out
}
