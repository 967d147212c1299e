package combinatorics

import (
	"fmt"
	"iter"
	"strings"
)

// AnyBlocks asks SetPartitionsWith for partitions with any number of blocks.
const AnyBlocks = -1

// Partition is one set partition: non-empty blocks that together hold every
// element of the source exactly once. Block i gathers the elements whose
// growth-string digit is i, in source order.
type Partition[T comparable] []Collection[T]

// String renders the blocks space-separated inside braces.
func (p Partition[T]) String() string {
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = b.String()
	}

	return "{" + strings.Join(parts, " ") + "}"
}

// SetPartitions lazily yields every partition of c, Bell(n) in total, in
// growth-string order. For {1 2 3}:
//
//	{{1 2 3}} {{1 2} {3}} {{1 3} {2}} {{1} {2 3}} {{1} {2} {3}}
//
// An empty collection yields nothing.
func SetPartitions[T comparable](c Collection[T]) (iter.Seq[Partition[T]], error) {
	return SetPartitionsWith(defaultGrowth, c, AnyBlocks)
}

// SetPartitionsK lazily yields the partitions of c into exactly k non-empty
// blocks, Stirling2(n, k) in total.
//
// Errors: ErrInvalidInput for an invalid collection, ErrInvalidArgument for k < 0.
func SetPartitionsK[T comparable](c Collection[T], k int) (iter.Seq[Partition[T]], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative block count %d", ErrInvalidArgument, k)
	}

	return SetPartitionsWith(defaultGrowth, c, k)
}

// SetPartitionsWith is SetPartitions (blocks == AnyBlocks) or SetPartitionsK
// backed by a caller-owned GrowthCache.
//
// k = 1, k = n and every k outside 1..n are answered directly; the results
// match what filtering the growth strings would produce.
func SetPartitionsWith[T comparable](cache *GrowthCache, c Collection[T], blocks int) (iter.Seq[Partition[T]], error) {
	_, n, err := Detect(c)
	if err != nil {
		return nil, err
	}
	if blocks < AnyBlocks {
		return nil, fmt.Errorf("%w: block count %d", ErrInvalidArgument, blocks)
	}

	switch {
	case n == 0, blocks == 0, blocks > n:
		return func(func(Partition[T]) bool) {}, nil
	case blocks == 1:
		return func(yield func(Partition[T]) bool) {
			yield(Partition[T]{build(c.flavor, c.items)})
		}, nil
	case blocks == n:
		return func(yield func(Partition[T]) bool) {
			p := make(Partition[T], n)
			for i, v := range c.items {
				p[i] = build(c.flavor, []T{v})
			}
			yield(p)
		}, nil
	}

	return func(yield func(Partition[T]) bool) {
		var rgs [][]int
		if blocks == AnyBlocks {
			rgs, _ = cache.Strings(n)
		} else {
			rgs, _ = cache.WithBlocks(n, blocks)
		}
		for _, s := range rgs {
			if !yield(fromGrowth(c, s)) {
				return
			}
		}
	}, nil
}

// fromGrowth distributes c's elements into the blocks named by s.
func fromGrowth[T comparable](c Collection[T], s []int) Partition[T] {
	count := 0
	for _, d := range s {
		count = max(count, d+1)
	}

	p := make(Partition[T], count)
	for i := range p {
		p[i] = empty[T](c.flavor, 0)
	}
	for i, d := range s {
		p[d].Append(c.items[i])
	}

	return p
}
