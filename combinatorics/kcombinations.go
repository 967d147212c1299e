package combinatorics

// KCombinations returns every combination of c whose size is in k, eagerly.
//
// Ordering:
//
//	Output is lexicographic with respect to source position, and sizes are
//	interleaved rather than grouped: a combination is immediately followed by
//	its own extensions. For c = [1 2 3] and k = {1, 2}:
//	  [1] [1 2] [1 3] [2] [2 3] [3]
//	Use Combinations for size-major order.
//
// With multi == true the same element may be chosen repeatedly (index tuples
// are non-decreasing instead of strictly increasing) and k may exceed n.
//
// Edge cases:
//   - n = 0: one empty combination when 0 ∈ k, otherwise none.
//   - scalar k > n without repetition: empty result, not an error.
//   - k = n without repetition: the whole collection, without recursion.
//
// Errors: ErrInvalidInput for an invalid collection; ErrInvalidArgument for a
// negative size, an empty request, or a union whose sizes all exceed n.
//
// Complexity: O(|output|·k) time. The search never enters a branch that
// cannot reach a requested size.
func KCombinations[T comparable](c Collection[T], k Sizes, multi bool) ([]Collection[T], error) {
	_, n, err := Detect(c)
	if err != nil {
		return nil, err
	}
	sizes, err := k.resolve(n, multi)
	if err != nil {
		return nil, err
	}
	out := []Collection[T]{}
	if len(sizes) == 0 {
		return out, nil
	}

	if n == 0 {
		if sizes[0] == 0 {
			out = append(out, empty[T](c.flavor, 0))
		}

		return out, nil
	}
	if !multi && len(sizes) == 1 && sizes[0] == n {
		return append(out, c.pick(seq(n))), nil
	}

	e := newExpansion(c, sizes, multi)
	e.expand(0, 0)

	return e.out, nil
}

// expansion is the state of one depth-first KCombinations run. Depth d of
// the recursion owns idx[d]; reaching depth d means a combination of size d
// is in idx[:d].
type expansion[T comparable] struct {
	src   Collection[T]
	n     int
	multi bool
	idx   []int
	out   []Collection[T]

	// Precomputed once per call instead of being tested per node:
	emit     []bool // emit[d]: size d was requested
	maxDepth int    // deepest requested size; expansion stops here
	nextEmit []int  // nextEmit[d]: smallest requested size ≥ d
}

func newExpansion[T comparable](c Collection[T], sizes []int, multi bool) *expansion[T] {
	maxDepth := sizes[len(sizes)-1]
	e := &expansion[T]{
		src:      c,
		n:        c.Len(),
		multi:    multi,
		idx:      make([]int, maxDepth),
		emit:     make([]bool, maxDepth+1),
		maxDepth: maxDepth,
		nextEmit: make([]int, maxDepth+2),
	}
	for _, s := range sizes {
		e.emit[s] = true
	}
	e.nextEmit[maxDepth+1] = maxDepth + 1
	for d := maxDepth; d >= 0; d-- {
		if e.emit[d] {
			e.nextEmit[d] = d
		} else {
			e.nextEmit[d] = e.nextEmit[d+1]
		}
	}

	return e
}

// expand emits idx[:depth] if requested, then tries every admissible next
// index from start upwards.
func (e *expansion[T]) expand(depth, start int) {
	if e.emit[depth] {
		e.out = append(e.out, e.src.pick(e.idx[:depth]))
	}
	if depth == e.maxDepth {
		return
	}

	// Without repetition a child at index i can still grow by n-1-i elements,
	// so it must stop at the last index from which the next requested size is
	// reachable.
	last := e.n - 1
	if !e.multi {
		last = e.n - e.nextEmit[depth+1] + depth
	}
	for i := start; i <= last; i++ {
		e.idx[depth] = i
		if e.multi {
			e.expand(depth+1, i)
		} else {
			e.expand(depth+1, i+1)
		}
	}
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
