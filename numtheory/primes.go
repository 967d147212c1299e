package numtheory

import "fmt"

// Sieve returns every prime p ≤ limit in ascending order using the sieve of
// Eratosthenes over odd numbers only.
//
// Complexity: O(limit·log log limit) time, O(limit) memory.
func Sieve(limit int) []int {
	if limit < 2 {
		return nil
	}

	// composite[i] describes the odd number 2i+1
	composite := make([]bool, limit/2+1)
	primes := []int{2}
	for i := 1; 2*i+1 <= limit; i++ {
		if composite[i] {
			continue
		}
		p := 2*i + 1
		primes = append(primes, p)
		for m := p * p; m <= limit; m += 2 * p {
			composite[m/2] = true
		}
	}

	return primes
}

// IsPrime reports whether n is prime by 6k±1 trial division.
func IsPrime(n int) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for d := 5; d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}

	return true
}

// Factor is one prime power p^k of a factorization.
type Factor struct {
	Prime    int
	Exponent int
}

// PrimeFactors returns the factorization of n ≥ 1 as ascending prime powers.
// PrimeFactors(1) is empty.
func PrimeFactors(n int) ([]Factor, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: cannot factor %d", ErrNegative, n)
	}

	var out []Factor
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		f := Factor{Prime: p}
		for n%p == 0 {
			n /= p
			f.Exponent++
		}
		out = append(out, f)
	}
	if n > 1 {
		out = append(out, Factor{Prime: n, Exponent: 1})
	}

	return out, nil
}
