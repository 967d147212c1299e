package combinatorics

import (
	"fmt"
	"slices"
)

// Sizes is the k parameter of a combination request: one size, a union of
// sizes, or every size 0..n. The zero value requests nothing and is rejected
// with ErrInvalidArgument.
type Sizes struct {
	ks     []int
	all    bool
	scalar bool
}

// K requests combinations of exactly k elements.
func K(k int) Sizes {
	return Sizes{ks: []int{k}, scalar: true}
}

// Ks requests the union of combinations of each listed size.
func Ks(ks ...int) Sizes {
	return Sizes{ks: slices.Clone(ks)}
}

// AllSizes requests combinations of every size 0..n.
func AllSizes() Sizes {
	return Sizes{all: true}
}

// String renders the request for logs and errors.
func (s Sizes) String() string {
	if s.all {
		return "k=*"
	}
	if s.scalar {
		return fmt.Sprintf("k=%d", s.ks[0])
	}

	return fmt.Sprintf("k=%v", s.ks)
}

// resolve turns the request into the ascending, de-duplicated list of sizes
// to generate for an n-element alphabet.
//
// Without repetition sizes above n are dropped. When that empties a scalar
// request the result is simply empty (nil, nil); when it empties a union the
// request is rejected, as is any negative size or an empty request.
func (s Sizes) resolve(n int, multi bool) ([]int, error) {
	if s.all {
		out := make([]int, n+1)
		for i := range out {
			out[i] = i
		}

		return out, nil
	}
	if len(s.ks) == 0 {
		return nil, fmt.Errorf("%w: no size requested", ErrInvalidArgument)
	}

	out := make([]int, 0, len(s.ks))
	for _, k := range s.ks {
		if k < 0 {
			return nil, fmt.Errorf("%w: negative size %d", ErrInvalidArgument, k)
		}
		if !multi && k > n {
			continue
		}
		out = append(out, k)
	}
	slices.Sort(out)
	out = slices.Compact(out)

	if len(out) == 0 {
		if s.scalar {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: every size in %v exceeds n=%d", ErrInvalidArgument, s.ks, n)
	}

	return out, nil
}
