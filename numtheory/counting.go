package numtheory

import (
	"fmt"
	"math/big"
	"math/bits"
	"sync"

	"gonum.org/v1/gonum/stat/combin"
)

// smallBinomialLimit is the largest n for which every intermediate product
// of the multiplicative binomial formula fits into a 64-bit int.
const smallBinomialLimit = 60

// FactorialCache memoizes n! for every n requested so far.
// The zero value is not usable; construct with NewFactorialCache.
// All methods are safe for concurrent use.
type FactorialCache struct {
	mu    sync.Mutex
	table []*big.Int // table[i] == i!
}

// NewFactorialCache returns a cache seeded with 0! = 1.
func NewFactorialCache() *FactorialCache {
	return &FactorialCache{table: []*big.Int{big.NewInt(1)}}
}

// Get returns n! as a fresh *big.Int the caller may mutate.
//
// Complexity: O(n) multiplications on the first call for a new maximum,
// O(1) lookups afterwards.
func (c *FactorialCache) Get(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial of %d", ErrNegative, n)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.table); i <= n; i++ {
		next := new(big.Int).Mul(c.table[i-1], big.NewInt(int64(i)))
		c.table = append(c.table, next)
	}

	return new(big.Int).Set(c.table[n]), nil
}

// Len reports how many factorials are currently memoized.
func (c *FactorialCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.table)
}

var defaultFactorials = NewFactorialCache()

// Factorial returns n! using the package-level cache.
// Returns ErrNegative when n < 0.
func Factorial(n int) (*big.Int, error) {
	return defaultFactorials.Get(n)
}

// Binomial returns C(n, k), the number of k-subsets of an n-set.
// Outside 0 ≤ k ≤ n the count is 0 (no such subsets), never an error.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}

// BinomialInt returns C(n, k) as an int together with ok == true when the
// value is representable. For small n it delegates to gonum's
// multiplicative formula; otherwise it computes exactly and checks the fit.
func BinomialInt(n, k int) (int, bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}
	if n <= smallBinomialLimit && bits.UintSize == 64 {
		return combin.Binomial(n, k), true
	}

	b := Binomial(n, k)
	if !b.IsInt64() || b.Int64() > int64(maxInt) {
		return 0, false
	}

	return int(b.Int64()), true
}

const maxInt = int(^uint(0) >> 1)

// Multichoose returns the number of k-multisets drawn from n kinds,
// C(n+k-1, k). By convention Multichoose(0, 0) == 1 and Multichoose(0, k>0) == 0.
func Multichoose(n, k int) *big.Int {
	if n < 0 || k < 0 {
		return new(big.Int)
	}
	if n == 0 {
		if k == 0 {
			return big.NewInt(1)
		}

		return new(big.Int)
	}

	return Binomial(n+k-1, k)
}

// Stirling2 returns S(n, k), the number of ways to partition an n-set into
// exactly k non-empty blocks. It fills one row of the triangle at a time:
//
//	S(i, j) = j·S(i-1, j) + S(i-1, j-1),  S(0, 0) = 1.
//
// Complexity: O(n·k) big-integer operations, O(k) memory.
func Stirling2(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	if n == 0 {
		return big.NewInt(1) // k == 0 here
	}

	row := make([]*big.Int, k+1)
	for j := range row {
		row[j] = new(big.Int)
	}
	row[0].SetInt64(1)
	tmp := new(big.Int)
	for i := 1; i <= n; i++ {
		// walk right to left so row[j-1] still holds S(i-1, j-1)
		top := min(i, k)
		for j := top; j >= 1; j-- {
			tmp.Mul(row[j], big.NewInt(int64(j)))
			row[j].Add(tmp, row[j-1])
		}
		row[0].SetInt64(0)
	}

	return row[k]
}

// Bell returns B(n), the number of partitions of an n-set, via the Bell
// triangle. Bell(0) == 1 and Bell of a negative n is 0.
func Bell(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}

	row := []*big.Int{big.NewInt(1)}
	for i := 0; i < n; i++ {
		next := make([]*big.Int, len(row)+1)
		next[0] = new(big.Int).Set(row[len(row)-1])
		for j := 1; j < len(next); j++ {
			next[j] = new(big.Int).Add(next[j-1], row[j-1])
		}
		row = next
	}

	return row[0]
}
