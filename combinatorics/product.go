package combinatorics

import "iter"

// Product lazily yields the cartesian product of cs in odometer order: the
// last collection varies fastest, which is lexicographic by source position.
// No collections yield one empty tuple; any empty collection yields none.
// The yielded slice is reused between steps; copy it to keep it.
func Product[T comparable](cs ...Collection[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, c := range cs {
			if c.Len() == 0 {
				return
			}
		}

		idx := make([]int, len(cs))
		tuple := make([]T, len(cs))
		for i, c := range cs {
			tuple[i] = c.items[0]
		}
		for {
			if !yield(tuple) {
				return
			}
			// Advance the odometer from the right.
			i := len(cs) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < cs[i].Len() {
					tuple[i] = cs[i].items[idx[i]]
					break
				}
				idx[i] = 0
				tuple[i] = cs[i].items[0]
			}
			if i < 0 {
				return
			}
		}
	}
}
