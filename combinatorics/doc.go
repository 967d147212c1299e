// Package combinatorics is the combinatorial generation engine: it
// enumerates combinations, multicombinations, permutations, unique
// permutations and set partitions of a finite collection, and counts
// integer partitions.
//
// 🚀 What is inside?
//
//	Generation follows strict, documented ordering rules:
//	  • KCombinations : eager, lexicographic in source order, sizes interleaved
//	  • Combinations  : lazy, size-major, lexicographic within each size
//	  • Permute       : all n! permutations by Heap's algorithm (unordered)
//	  • UniquePermutations: distinct permutations of a multiset, ascending by value
//	  • SetPartitions : via restricted growth strings, optionally exactly k blocks
//	  • IntegerPartitionCount: coin-iteration dynamic program
//
// ✨ Collections and flavors:
//
//	Every generator takes a Collection[T], an ordered list of elements plus a
//	Flavor describing how emitted objects are shaped:
//	  • Sequence: ordered list, duplicates allowed
//	  • Set     : insertion-ordered, each value at most once
//	  • Text    : characters of a string, rendered back by concatenation
//
//	The iteration order of the input collection is the alphabet order: for
//	combinations "lexicographic" always means by position in the source, never
//	by value. Unique permutations are the one exception and order by value.
//
// ⚙️ Eager vs lazy:
//
//	Eager functions return a slice. Lazy functions return an iter.Seq that does
//	O(1) amortized work per element; abandoning the range loop stops
//	production. All parameter validation happens before the sequence is
//	returned, so errors never surface half-way through a loop.
//
// Usage:
//
//	import "github.com/katalvlaran/combinat/combinatorics"
//
//	abc := combinatorics.NewSequence(1, 2, 3, 4)
//	pairs, err := combinatorics.KCombinations(abc, combinatorics.K(2), false)
//	// [[1 2] [1 3] [1 4] [2 3] [2 4] [3 4]]
//
//	seq, err := combinatorics.SetPartitions(combinatorics.NewSet(1, 2, 3))
//	for p := range seq {
//	    fmt.Println(p) // {{1 2 3}} then {{1 2} {3}} ...
//	}
//
// Errors (sentinel):
//
//   - ErrInvalidInput           : collection of unknown flavor.
//   - ErrInvalidArgument        : missing, negative or out-of-range size parameter.
//   - ErrNegativeLength         : growth strings of negative length.
//   - ErrConflictingRestrictions: exact part count combined with a part set.
//
// Concurrency:
//
//	Generators hold no shared state except the growth-string memo, which is a
//	mutex-guarded GrowthCache. A single iter.Seq value must be consumed by one
//	goroutine at a time.
package combinatorics
