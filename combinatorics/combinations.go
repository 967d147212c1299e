package combinatorics

import "iter"

// CombinationWalker steps through index combinations of an n-element
// alphabet in size-major order: every combination of the smallest requested
// size in lexicographic order, then the next size, and so on.
//
// It is the explicit state machine behind Combinations and can be used
// directly when only indices are needed:
//
//	w, _ := NewCombinationWalker(5, K(3), false)
//	for w.Next() {
//	    use(w.Indices())
//	}
//
// A walker is single-use and not safe for concurrent use.
type CombinationWalker struct {
	n     int
	multi bool
	sizes []int // ascending, validated
	pos   int   // index into sizes of the size being walked
	idx   []int // current combination
	state walkerState
}

type walkerState int

const (
	walkerFresh walkerState = iota
	walkerActive
	walkerDone
)

// NewCombinationWalker validates the request and returns a walker positioned
// before the first combination.
func NewCombinationWalker(n int, k Sizes, multi bool) (*CombinationWalker, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	sizes, err := k.resolve(n, multi)
	if err != nil {
		return nil, err
	}

	return newWalker(n, sizes, multi), nil
}

func newWalker(n int, sizes []int, multi bool) *CombinationWalker {
	return &CombinationWalker{n: n, multi: multi, sizes: sizes}
}

// Next advances to the next combination and reports whether there is one.
// Each call does O(1) amortized work.
func (w *CombinationWalker) Next() bool {
	switch w.state {
	case walkerDone:
		return false
	case walkerFresh:
		w.state = walkerActive
		w.pos = 0

		return w.seekSize()
	}

	if w.successor() {
		return true
	}
	w.pos++

	return w.seekSize()
}

// Indices returns the current combination as positions into the alphabet.
// The slice is reused by Next; copy it to keep it.
func (w *CombinationWalker) Indices() []int {
	return w.idx
}

// Size returns the size of the current combination.
func (w *CombinationWalker) Size() int {
	return len(w.idx)
}

// seekSize positions the walker on the first combination of sizes[pos],
// skipping sizes that have no combination at all.
func (w *CombinationWalker) seekSize() bool {
	for ; w.pos < len(w.sizes); w.pos++ {
		k := w.sizes[w.pos]
		if k > 0 && w.n == 0 {
			continue // only the empty combination exists over an empty alphabet
		}
		if cap(w.idx) < k {
			w.idx = make([]int, k)
		}
		w.idx = w.idx[:k]
		for i := range w.idx {
			if w.multi {
				w.idx[i] = 0
			} else {
				w.idx[i] = i
			}
		}

		return true
	}
	w.state = walkerDone
	w.idx = nil

	return false
}

// successor replaces idx with its lexicographic successor of the same size.
// It finds the rightmost position that can still grow, increments it and
// resets everything to its right to the smallest admissible values.
func (w *CombinationWalker) successor() bool {
	k := len(w.idx)
	for i := k - 1; i >= 0; i-- {
		limit := w.n - 1
		if !w.multi {
			limit = w.n - k + i
		}
		if w.idx[i] >= limit {
			continue
		}
		w.idx[i]++
		for j := i + 1; j < k; j++ {
			if w.multi {
				w.idx[j] = w.idx[i]
			} else {
				w.idx[j] = w.idx[j-1] + 1
			}
		}

		return true
	}

	return false
}

// Combinations returns a lazy sequence of every combination of c whose size
// is in k, ordered by ascending size and lexicographically (by source
// position) within each size. Pass WithRepetition() for multicombinations.
//
// The request is validated before returning, with the same rules and
// errors as KCombinations. Each range over the returned sequence starts a
// fresh walk; stopping the loop early simply abandons it.
func Combinations[T comparable](c Collection[T], k Sizes, opts ...Option) (iter.Seq[Collection[T]], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	_, n, err := Detect(c)
	if err != nil {
		return nil, err
	}
	sizes, err := k.resolve(n, cfg.Repetition)
	if err != nil {
		return nil, err
	}

	return func(yield func(Collection[T]) bool) {
		w := newWalker(n, sizes, cfg.Repetition)
		for w.Next() {
			if !yield(c.pick(w.Indices())) {
				return
			}
		}
	}, nil
}
