package combinatorics_test

import (
	"iter"

	"github.com/katalvlaran/combinat/combinatorics"
)

// render turns emitted collections into their String forms for compact
// ordered assertions.
func render[T comparable](cs []combinatorics.Collection[T]) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}

	return out
}

// collect drains a lazy sequence of collections.
func collect[T comparable](seq iter.Seq[combinatorics.Collection[T]]) []combinatorics.Collection[T] {
	var out []combinatorics.Collection[T]
	for c := range seq {
		out = append(out, c)
	}

	return out
}

// ints returns the sequence 0..n-1 as a collection.
func ints(n int) combinatorics.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	return combinatorics.NewSequence(items...)
}

// toSlices unwraps collections into plain slices.
func toSlices[T comparable](cs []combinatorics.Collection[T]) [][]T {
	out := make([][]T, len(cs))
	for i, c := range cs {
		out[i] = c.Items()
	}

	return out
}
