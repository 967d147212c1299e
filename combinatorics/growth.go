package combinatorics

import (
	"fmt"
	"sync"
)

// GrowthCache memoizes restricted growth strings by length and by
// (length, block count).
//
// A restricted growth string of length n is a₀..aₙ₋₁ with a₀ = 0 and
// aᵢ ≤ 1 + max(a₀..aᵢ₋₁). It encodes a set partition by putting element i
// into block aᵢ, so there are Bell(n) of them and exactly Stirling2(n, k)
// have maximum digit k-1.
//
// Strings returned by the cache are shared with it: treat them as
// read-only. All methods are safe for concurrent use.
type GrowthCache struct {
	mu       sync.Mutex
	byLength map[int]growthLevel
	byBlocks map[[2]int][][]int
}

// growthLevel is every growth string of one length plus each string's
// maximum digit, which is what the next level's extension step needs.
type growthLevel struct {
	strings [][]int
	maxes   []int
}

// NewGrowthCache returns an empty cache.
func NewGrowthCache() *GrowthCache {
	return &GrowthCache{
		byLength: make(map[int]growthLevel),
		byBlocks: make(map[[2]int][][]int),
	}
}

// defaultGrowth backs the package-level set partition functions.
var defaultGrowth = NewGrowthCache()

// Strings returns every restricted growth string of length n, ordered so
// that the strings derived from the same (n-1)-prefix are adjacent and
// ascending in their last digit. Length 0 yields no strings.
//
// Errors: ErrNegativeLength when n < 0.
//
// Complexity: O(Bell(n)·n) time and memory on first request, O(1) after.
func (g *GrowthCache) Strings(n int) ([][]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: growth strings of length %d", ErrNegativeLength, n)
	}
	if n == 0 {
		return nil, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.level(n).strings, nil
}

// level returns the cached level n ≥ 1, building every missing level from
// the longest cached one below it. Callers hold g.mu.
func (g *GrowthCache) level(n int) growthLevel {
	if lv, ok := g.byLength[n]; ok {
		return lv
	}

	from := n - 1
	for from >= 1 {
		if _, ok := g.byLength[from]; ok {
			break
		}
		from--
	}
	if from == 0 {
		g.byLength[1] = growthLevel{strings: [][]int{{0}}, maxes: []int{0}}
		from = 1
	}

	for length := from + 1; length <= n; length++ {
		g.byLength[length] = extend(g.byLength[length-1], length)
	}

	return g.byLength[n]
}

// extend appends every admissible digit 0..max+1 to each string of prev.
func extend(prev growthLevel, length int) growthLevel {
	var next growthLevel
	for i, s := range prev.strings {
		m := prev.maxes[i]
		for d := 0; d <= m+1; d++ {
			child := make([]int, length)
			copy(child, s)
			child[length-1] = d
			next.strings = append(next.strings, child)
			next.maxes = append(next.maxes, max(m, d))
		}
	}

	return next
}

// WithBlocks returns the growth strings of length n whose digits are
// exactly {0, ..., k-1}, i.e. whose maximum digit is k-1. The filtered list
// is cached per (n, k).
//
// Errors: ErrNegativeLength when n < 0, ErrInvalidArgument when k < 0.
func (g *GrowthCache) WithBlocks(n, k int) ([][]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: growth strings of length %d", ErrNegativeLength, n)
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: negative block count %d", ErrInvalidArgument, k)
	}
	if n == 0 || k == 0 || k > n {
		return nil, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := [2]int{n, k}
	if cached, ok := g.byBlocks[key]; ok {
		return cached, nil
	}
	lv := g.level(n)
	var out [][]int
	for i, s := range lv.strings {
		if lv.maxes[i] == k-1 {
			out = append(out, s)
		}
	}
	g.byBlocks[key] = out

	return out, nil
}
