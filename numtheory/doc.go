// Package numtheory collects the number-theoretic building blocks used by the
// combinatorics engine and by callers that count things directly.
//
// What is inside?
//
//   - Divisibility: GCD, LCM, ExtendedGCD (generic over every integer kind).
//   - Counting:     Factorial, Binomial, Multichoose, Stirling2, Bell.
//   - Primes:       Sieve, IsPrime, PrimeFactors.
//   - Arithmetic functions: Divisors, SumOfDivisors, Totient, TotientSieve.
//
// Exact counts are returned as *big.Int because they outgrow 64 bits
// quickly (21! and Bell(26) already do). BinomialInt offers a machine-int
// fast path that reports whether the value fit.
//
// Memoization:
//
//	Factorials are memoized in a FactorialCache guarded by a mutex. The
//	package-level helpers share one default cache; callers that want
//	isolated state construct their own with NewFactorialCache.
//
// Errors (sentinel):
//
//   - ErrNegative: a function defined on non-negative integers received n < 0.
//
// Usage:
//
//	import "github.com/katalvlaran/combinat/numtheory"
//
//	g := numtheory.GCD(84, 36)            // 12
//	c := numtheory.Binomial(52, 5)        // 2598960
//	b := numtheory.Bell(5)                // 52
//	phi := numtheory.Totient(87109)       // 79180
package numtheory
