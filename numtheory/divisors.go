package numtheory

import (
	"fmt"
	"slices"
)

// Divisors returns all positive divisors of n ≥ 1 in ascending order.
func Divisors(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: divisors of %d", ErrNegative, n)
	}

	var low, high []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if d*d != n {
			high = append(high, n/d)
		}
	}
	slices.Reverse(high)

	return append(low, high...), nil
}

// SumOfDivisors returns σ(n), the sum of all positive divisors of n ≥ 1,
// from the prime factorization: σ(p^k) = (p^(k+1) - 1) / (p - 1).
func SumOfDivisors(n int) (int, error) {
	factors, err := PrimeFactors(n)
	if err != nil {
		return 0, err
	}

	sum := 1
	for _, f := range factors {
		term, pk := 1, 1
		for i := 0; i < f.Exponent; i++ {
			pk *= f.Prime
			term += pk
		}
		sum *= term
	}

	return sum, nil
}

// Totient returns Euler's φ(n) for n ≥ 1: the count of 1 ≤ m ≤ n coprime to n.
func Totient(n int) (int, error) {
	factors, err := PrimeFactors(n)
	if err != nil {
		return 0, err
	}

	phi := n
	for _, f := range factors {
		phi -= phi / f.Prime
	}

	return phi, nil
}

// TotientSieve returns φ(i) for every 0 ≤ i ≤ limit (φ(0) is reported as 0).
//
// Complexity: O(limit·log log limit).
func TotientSieve(limit int) []int {
	if limit < 0 {
		return nil
	}

	phi := make([]int, limit+1)
	for i := range phi {
		phi[i] = i
	}
	for p := 2; p <= limit; p++ {
		if phi[p] != p {
			continue // not prime: already reduced by a smaller prime
		}
		for m := p; m <= limit; m += p {
			phi[m] -= phi[m] / p
		}
	}

	return phi
}
