package combinatorics

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
)

// machineThreshold is the largest n whose unrestricted partition count,
// p(400) ≈ 6.7·10¹⁸, still fits in a uint64. Every restricted count and
// every intermediate table entry is bounded by p(n), so the whole dynamic
// program can run on machine words up to this size.
const machineThreshold = 400

// PartitionCountOptions restricts IntegerPartitionCount. At most one
// restriction may be set.
//
//   - ExactParts: count partitions into exactly this many parts.
//   - Parts     : count partitions whose parts all come from this set.
type PartitionCountOptions struct {
	ExactParts    int
	HasExactParts bool
	Parts         []int
	HasParts      bool
}

// PartitionOption mutates PartitionCountOptions.
type PartitionOption func(*PartitionCountOptions)

// WithExactParts restricts the count to partitions with exactly k parts.
func WithExactParts(k int) PartitionOption {
	return func(o *PartitionCountOptions) {
		o.ExactParts = k
		o.HasExactParts = true
	}
}

// WithParts restricts the count to partitions using only the given part
// sizes (each usable any number of times). Order and duplicates do not matter.
func WithParts(parts ...int) PartitionOption {
	return func(o *PartitionCountOptions) {
		o.Parts = slices.Clone(parts)
		o.HasParts = true
	}
}

// IntegerPartitionCount returns the number of ways to write n as an
// unordered sum of positive integers, optionally restricted by one option.
//
// Algorithm (coin iteration):
//
//	P[0] = 1, P[i>0] = 0
//	for each allowed part x, ascending, once:
//	    for i = x..target: P[i] += P[i-x]
//
// Processing each part exactly once, in ascending order, is what makes every
// multiset of parts count once.
//
// Exactly k parts: by conjugation, partitions of n into exactly k parts
// match partitions of n whose largest part is exactly k; removing one k
// leaves a partition of n-k into parts ≤ k. So the table runs over parts
// 1..k and the answer is P[n-k].
//
// Numeric domain: the table is uint64 while n ≤ 400 and *big.Int above.
//
// Errors:
//   - ErrInvalidArgument        : n < 0, k outside [0, n], or a part ≤ 0.
//   - ErrConflictingRestrictions: both WithExactParts and WithParts given.
func IntegerPartitionCount(n int, opts ...PartitionOption) (*big.Int, error) {
	var cfg PartitionCountOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: cannot partition %d", ErrInvalidArgument, n)
	}
	if cfg.HasExactParts && cfg.HasParts {
		return nil, ErrConflictingRestrictions
	}

	parts, target, err := partitionPlan(n, cfg)
	if err != nil {
		return nil, err
	}
	if n <= machineThreshold {
		return new(big.Int).SetUint64(countMachine(parts, target)), nil
	}

	return countBig(parts, target), nil
}

// partitionPlan returns the ascending part list and the table index to read.
func partitionPlan(n int, cfg PartitionCountOptions) ([]int, int, error) {
	switch {
	case cfg.HasExactParts:
		k := cfg.ExactParts
		if k < 0 || k > n {
			return nil, 0, fmt.Errorf("%w: part count %d outside [0,%d]", ErrInvalidArgument, k, n)
		}

		return seqFrom(1, k), n - k, nil
	case cfg.HasParts:
		parts := make([]int, 0, len(cfg.Parts))
		for _, x := range cfg.Parts {
			if x <= 0 {
				return nil, 0, fmt.Errorf("%w: part %d must be positive", ErrInvalidArgument, x)
			}
			if x <= n {
				parts = append(parts, x)
			}
		}
		slices.Sort(parts)

		return slices.Compact(parts), n, nil
	default:
		return seqFrom(1, n), n, nil
	}
}

func countMachine(parts []int, target int) uint64 {
	p := make([]uint64, target+1)
	p[0] = 1
	for _, x := range parts {
		for i := x; i <= target; i++ {
			p[i] += p[i-x]
		}
	}

	return p[target]
}

func countBig(parts []int, target int) *big.Int {
	p := make([]*big.Int, target+1)
	for i := range p {
		p[i] = new(big.Int)
	}
	p[0].SetInt64(1)
	for _, x := range parts {
		for i := x; i <= target; i++ {
			p[i].Add(p[i], p[i-x])
		}
	}

	return p[target]
}

// seqFrom returns [lo, lo+1, ..., hi], empty when hi < lo.
func seqFrom(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}

	return out
}

// IntegerPartitions lazily yields every partition of n as a non-increasing
// list of parts, in reverse lexicographic order: [n], [n-1 1], ..., [1 ... 1].
// n = 0 yields the single empty partition. The yielded slice is reused
// between steps; copy it to keep it.
//
// Errors: ErrInvalidArgument when n < 0.
func IntegerPartitions(n int) (iter.Seq[[]int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: cannot partition %d", ErrInvalidArgument, n)
	}

	return func(yield func([]int) bool) {
		a := make([]int, 0, n)
		if n > 0 {
			a = append(a, n)
		}
		for {
			if !yield(a) {
				return
			}
			// Strip the trailing ones; they are redistributed below.
			rest := 0
			for len(a) > 0 && a[len(a)-1] == 1 {
				a = a[:len(a)-1]
				rest++
			}
			if len(a) == 0 {
				return
			}
			// Lower the last part above one and refill behind it with
			// copies of the new value, largest first.
			a[len(a)-1]--
			rest++
			x := a[len(a)-1]
			for rest > x {
				a = append(a, x)
				rest -= x
			}
			a = append(a, rest)
		}
	}, nil
}
