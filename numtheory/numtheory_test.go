package numtheory_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/katalvlaran/combinat/numtheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

// TestGCD_LCM covers signs, zeros and mixed integer kinds.
func TestGCD_LCM(t *testing.T) {
	assert.Equal(t, 12, numtheory.GCD(84, 36))
	assert.Equal(t, 12, numtheory.GCD(-84, 36), "result is non-negative")
	assert.Equal(t, 7, numtheory.GCD(0, -7))
	assert.Equal(t, 0, numtheory.GCD(0, 0))
	assert.Equal(t, uint8(6), numtheory.GCD(uint8(18), uint8(24)))

	assert.Equal(t, int64(252), numtheory.LCM(int64(84), int64(36)))
	assert.Equal(t, 0, numtheory.LCM(0, 5))
	assert.Equal(t, 15, numtheory.LCM(-3, 5))
}

// TestExtendedGCD verifies Bézout's identity on a few pairs.
func TestExtendedGCD(t *testing.T) {
	pairs := [][2]int{{240, 46}, {46, 240}, {17, 5}, {-12, 18}, {0, 9}}
	for _, p := range pairs {
		g, x, y := numtheory.ExtendedGCD(p[0], p[1])
		assert.Equal(t, numtheory.GCD(p[0], p[1]), g, "gcd of %v", p)
		assert.Equal(t, g, p[0]*x+p[1]*y, "bezout for %v", p)
	}
}

// TestFactorial checks small values, the big range and the negative error.
func TestFactorial(t *testing.T) {
	f, err := numtheory.Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.Int64())

	f, err = numtheory.Factorial(10)
	require.NoError(t, err)
	assert.Equal(t, int64(3628800), f.Int64())

	f, err = numtheory.Factorial(25)
	require.NoError(t, err)
	assert.Equal(t, "15511210043330985984000000", f.String())

	_, err = numtheory.Factorial(-1)
	assert.ErrorIs(t, err, numtheory.ErrNegative)
}

// TestFactorialCache_ReturnsCopies ensures callers cannot corrupt the memo.
func TestFactorialCache_ReturnsCopies(t *testing.T) {
	c := numtheory.NewFactorialCache()
	f, err := c.Get(5)
	require.NoError(t, err)
	f.SetInt64(0)

	again, err := c.Get(5)
	require.NoError(t, err)
	assert.Equal(t, int64(120), again.Int64())
	assert.Equal(t, 6, c.Len())
}

// TestFactorialCache_Concurrent hammers the cache from several goroutines.
func TestFactorialCache_Concurrent(t *testing.T) {
	c := numtheory.NewFactorialCache()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := 0; n < 40; n++ {
				_, _ = c.Get((n * (g + 1)) % 40)
			}
		}(g)
	}
	wg.Wait()

	f, err := c.Get(20)
	require.NoError(t, err)
	assert.Equal(t, "2432902008176640000", f.String())
}

// TestBinomial compares against gonum for the machine range and checks
// out-of-domain values are zero.
func TestBinomial(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for k := 0; k <= n; k++ {
			want := int64(combin.Binomial(n, k))
			assert.Equal(t, want, numtheory.Binomial(n, k).Int64(), "C(%d,%d)", n, k)
			got, ok := numtheory.BinomialInt(n, k)
			assert.True(t, ok)
			assert.Equal(t, int(want), got)
		}
	}
	assert.Zero(t, numtheory.Binomial(3, 4).Sign())
	assert.Zero(t, numtheory.Binomial(3, -1).Sign())

	want, _ := new(big.Int).SetString("100891344545564193334812497256", 10)
	assert.Equal(t, 0, want.Cmp(numtheory.Binomial(100, 50)))
	_, ok := numtheory.BinomialInt(100, 50)
	assert.False(t, ok, "C(100,50) does not fit into int")
	got, ok := numtheory.BinomialInt(66, 33)
	assert.True(t, ok)
	assert.Equal(t, 7219428434016265740, got)
}

// TestMultichoose checks the stars-and-bars identity and its conventions.
func TestMultichoose(t *testing.T) {
	assert.Equal(t, int64(10), numtheory.Multichoose(3, 3).Int64())
	assert.Equal(t, int64(1), numtheory.Multichoose(0, 0).Int64())
	assert.Equal(t, int64(0), numtheory.Multichoose(0, 2).Int64())
	assert.Equal(t, int64(1), numtheory.Multichoose(4, 0).Int64())
}

// TestStirling2_Bell checks the known rows and that each row sums to Bell(n).
func TestStirling2_Bell(t *testing.T) {
	bell := []int64{1, 1, 2, 5, 15, 52, 203, 877, 4140, 21147, 115975}
	for n, want := range bell {
		assert.Equal(t, want, numtheory.Bell(n).Int64(), "Bell(%d)", n)

		sum := new(big.Int)
		for k := 0; k <= n; k++ {
			sum.Add(sum, numtheory.Stirling2(n, k))
		}
		assert.Equal(t, want, sum.Int64(), "row sum %d", n)
	}
	assert.Equal(t, int64(25), numtheory.Stirling2(5, 3).Int64())
	assert.Equal(t, int64(0), numtheory.Stirling2(4, 0).Int64())
	assert.Equal(t, int64(0), numtheory.Stirling2(3, 4).Int64())
	assert.Equal(t, int64(0), numtheory.Bell(-1).Int64())
}

// TestPrimes covers the sieve, trial division and factorization.
func TestPrimes(t *testing.T) {
	assert.Nil(t, numtheory.Sieve(1))
	assert.Equal(t, []int{2}, numtheory.Sieve(2))
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, numtheory.Sieve(30))
	assert.Len(t, numtheory.Sieve(10000), 1229)

	for _, p := range numtheory.Sieve(2000) {
		assert.True(t, numtheory.IsPrime(p), "%d", p)
	}
	for _, c := range []int{-7, 0, 1, 4, 9, 25, 49, 7919 * 7907} {
		assert.False(t, numtheory.IsPrime(c), "%d", c)
	}

	fs, err := numtheory.PrimeFactors(360)
	require.NoError(t, err)
	assert.Equal(t, []numtheory.Factor{{Prime: 2, Exponent: 3}, {Prime: 3, Exponent: 2}, {Prime: 5, Exponent: 1}}, fs)

	fs, err = numtheory.PrimeFactors(1)
	require.NoError(t, err)
	assert.Empty(t, fs)

	_, err = numtheory.PrimeFactors(0)
	assert.ErrorIs(t, err, numtheory.ErrNegative)
}

// TestDivisorFunctions checks divisors, σ and φ on known values.
func TestDivisorFunctions(t *testing.T) {
	ds, err := numtheory.Divisors(28)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 7, 14, 28}, ds)

	ds, err = numtheory.Divisors(36)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 9, 12, 18, 36}, ds)

	sigma, err := numtheory.SumOfDivisors(220)
	require.NoError(t, err)
	assert.Equal(t, 504, sigma, "220 and 284 are amicable: σ(220)-220 == 284")

	phi, err := numtheory.Totient(87109)
	require.NoError(t, err)
	assert.Equal(t, 79180, phi)

	table := numtheory.TotientSieve(100)
	for n := 1; n <= 100; n++ {
		want, err := numtheory.Totient(n)
		require.NoError(t, err)
		assert.Equal(t, want, table[n], "φ(%d)", n)
	}

	_, err = numtheory.Divisors(-4)
	assert.ErrorIs(t, err, numtheory.ErrNegative)
}
