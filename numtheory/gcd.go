package numtheory

import "golang.org/x/exp/constraints"

// Abs returns |x|. For the minimum value of a signed type the result
// overflows back to x, exactly like the built-in negation.
func Abs[I constraints.Integer](x I) I {
	if x < 0 {
		return -x
	}

	return x
}

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. The result is always non-negative and GCD(0, 0) == 0.
//
// Complexity: O(log min(|a|, |b|)).
func GCD[I constraints.Integer](a, b I) I {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
// The division happens before the multiplication to delay overflow.
func LCM[I constraints.Integer](a, b I) I {
	if a == 0 || b == 0 {
		return 0
	}

	return Abs(a / GCD(a, b) * b)
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y == g == GCD(a, b).
func ExtendedGCD[I constraints.Signed](a, b I) (g, x, y I) {
	oldR, r := a, b
	oldS, s := I(1), I(0)
	oldT, t := I(0), I(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		oldR, oldS, oldT = -oldR, -oldS, -oldT
	}

	return oldR, oldS, oldT
}
