package combinatorics_test

import (
	"iter"
	"sync"
	"testing"

	"github.com/katalvlaran/combinat/combinatorics"
	"github.com/katalvlaran/combinat/numtheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T comparable](seq iter.Seq[combinatorics.Partition[T]]) []combinatorics.Partition[T] {
	var out []combinatorics.Partition[T]
	for p := range seq {
		out = append(out, p)
	}

	return out
}

func renderPartitions[T comparable](ps []combinatorics.Partition[T]) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

// TestSetPartitions_ThreeElements is the reference scenario: Bell(3) = 5
// partitions in growth-string order.
func TestSetPartitions_ThreeElements(t *testing.T) {
	seq, err := combinatorics.SetPartitions(combinatorics.NewSet(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"{{1 2 3}}", "{{1 2} {3}}", "{{1 3} {2}}", "{{1} {2 3}}", "{{1} {2} {3}}"},
		renderPartitions(drain(seq)))
}

// TestSetPartitions_Counts checks Bell and Stirling numbers and that every
// partition covers the source exactly with non-empty disjoint blocks.
func TestSetPartitions_Counts(t *testing.T) {
	for n := 1; n <= 8; n++ {
		src := ints(n)
		seq, err := combinatorics.SetPartitions(src)
		require.NoError(t, err)
		all := drain(seq)
		assert.Equal(t, numtheory.Bell(n).Int64(), int64(len(all)), "Bell(%d)", n)

		for _, p := range all {
			seen := make(map[int]int)
			for _, block := range p {
				assert.NotZero(t, block.Len(), "empty block in %v", p)
				for v := range block.All() {
					seen[v]++
				}
			}
			assert.Len(t, seen, n, "cover of %v", p)
			for v, c := range seen {
				assert.Equal(t, 1, c, "element %d appears %d times in %v", v, c, p)
			}
		}

		total := 0
		for k := 0; k <= n+1; k++ {
			seq, err := combinatorics.SetPartitionsK(src, k)
			require.NoError(t, err)
			parts := drain(seq)
			assert.Equal(t, numtheory.Stirling2(n, k).Int64(), int64(len(parts)), "S(%d,%d)", n, k)
			for _, p := range parts {
				assert.Len(t, p, k)
			}
			total += len(parts)
		}
		assert.Equal(t, len(all), total, "Σ S(n,k) == Bell(n)")
	}
}

// TestSetPartitionsK_ShortcutsMatchFiltering checks that the k = 1 and k = n
// shortcuts agree with filtering the full list.
func TestSetPartitionsK_ShortcutsMatchFiltering(t *testing.T) {
	src := combinatorics.NewText("wxyz")
	seq, err := combinatorics.SetPartitions(src)
	require.NoError(t, err)
	all := drain(seq)

	for _, k := range []int{1, 2, 4} {
		var want []string
		for _, p := range all {
			if len(p) == k {
				want = append(want, p.String())
			}
		}
		seq, err := combinatorics.SetPartitionsK(src, k)
		require.NoError(t, err)
		assert.Equal(t, want, renderPartitions(drain(seq)), "k=%d", k)
	}
}

// TestSetPartitions_Degenerate covers empty inputs and bad k.
func TestSetPartitions_Degenerate(t *testing.T) {
	seq, err := combinatorics.SetPartitions(combinatorics.NewSet[int]())
	require.NoError(t, err)
	assert.Empty(t, drain(seq))

	seq, err = combinatorics.SetPartitionsK(combinatorics.NewSet(1, 2), 0)
	require.NoError(t, err)
	assert.Empty(t, drain(seq))

	seq, err = combinatorics.SetPartitionsK(combinatorics.NewSet(1, 2), 3)
	require.NoError(t, err)
	assert.Empty(t, drain(seq))

	_, err = combinatorics.SetPartitionsK(combinatorics.NewSet(1, 2), -1)
	assert.ErrorIs(t, err, combinatorics.ErrInvalidArgument)

	_, err = combinatorics.SetPartitions(combinatorics.Collection[int]{})
	assert.ErrorIs(t, err, combinatorics.ErrInvalidInput)

	_, err = combinatorics.SetPartitionsWith(combinatorics.NewGrowthCache(), combinatorics.NewSet(1), -2)
	assert.ErrorIs(t, err, combinatorics.ErrInvalidArgument)
}

// TestGrowthCache_Strings checks the generated strings and their invariant.
func TestGrowthCache_Strings(t *testing.T) {
	g := combinatorics.NewGrowthCache()

	got, err := g.Strings(3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1}, {0, 1, 2}}, got)

	got, err = g.Strings(6)
	require.NoError(t, err)
	assert.Len(t, got, 203)
	for _, s := range got {
		require.Equal(t, 0, s[0])
		high := 0
		for _, d := range s[1:] {
			require.LessOrEqual(t, d, high+1, "%v", s)
			high = max(high, d)
		}
	}

	blocks, err := g.WithBlocks(4, 2)
	require.NoError(t, err)
	assert.Len(t, blocks, 7)

	got, err = g.Strings(0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = g.Strings(-1)
	assert.ErrorIs(t, err, combinatorics.ErrNegativeLength)
	_, err = g.WithBlocks(-1, 1)
	assert.ErrorIs(t, err, combinatorics.ErrNegativeLength)
	_, err = g.WithBlocks(3, -1)
	assert.ErrorIs(t, err, combinatorics.ErrInvalidArgument)
}

// TestGrowthCache_Concurrent shares one cache between goroutines.
func TestGrowthCache_Concurrent(t *testing.T) {
	g := combinatorics.NewGrowthCache()
	var wg sync.WaitGroup
	counts := make([]int, 8)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seq, err := combinatorics.SetPartitionsWith(g, ints(7), 1+i%7)
			if err != nil {
				return
			}
			for range seq {
				counts[i]++
			}
		}(i)
	}
	wg.Wait()

	for i, c := range counts {
		assert.Equal(t, numtheory.Stirling2(7, 1+i%7).Int64(), int64(c), "k=%d", 1+i%7)
	}
}
