// Package disjointset provides a union-find (disjoint-set forest) over any
// comparable element type, with path compression and union by rank.
//
// Complexity: every operation runs in O(α(n)) amortized time, where α is the
// inverse Ackermann function. Memory: O(n).
//
// A DisjointSet is not safe for concurrent mutation.
package disjointset

// DisjointSet partitions the elements added to it into disjoint sets.
// The zero value is not usable; construct with New.
type DisjointSet[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	size   map[T]int // valid only for roots
	count  int       // number of disjoint sets
}

// New returns a DisjointSet holding each of elems as its own singleton set.
func New[T comparable](elems ...T) *DisjointSet[T] {
	d := &DisjointSet[T]{
		parent: make(map[T]T, len(elems)),
		rank:   make(map[T]int, len(elems)),
		size:   make(map[T]int, len(elems)),
	}
	for _, e := range elems {
		d.Add(e)
	}

	return d
}

// Add inserts x as a singleton set. It reports false when x was already present.
func (d *DisjointSet[T]) Add(x T) bool {
	if _, ok := d.parent[x]; ok {
		return false
	}
	d.parent[x] = x
	d.rank[x] = 0
	d.size[x] = 1
	d.count++

	return true
}

// Has reports whether x was added.
func (d *DisjointSet[T]) Has(x T) bool {
	_, ok := d.parent[x]
	return ok
}

// Find returns the representative of x's set. Unknown elements are added
// as singletons first, so Find never fails.
func (d *DisjointSet[T]) Find(x T) T {
	d.Add(x)
	// Iterative find with path halving: point every other node at its grandparent.
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y. It reports false when they were
// already in the same set.
func (d *DisjointSet[T]) Union(x, y T) bool {
	rootX, rootY := d.Find(x), d.Find(y)
	if rootX == rootY {
		return false
	}
	// Attach the shallower tree under the deeper root.
	if d.rank[rootX] < d.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootY] = rootX
	d.size[rootX] += d.size[rootY]
	delete(d.size, rootY)
	if d.rank[rootX] == d.rank[rootY] {
		d.rank[rootX]++
	}
	d.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet[T]) Connected(x, y T) bool {
	return d.Find(x) == d.Find(y)
}

// Size returns the number of elements in x's set.
func (d *DisjointSet[T]) Size(x T) int {
	return d.size[d.Find(x)]
}

// Count returns the number of disjoint sets.
func (d *DisjointSet[T]) Count() int {
	return d.count
}

// Sets groups every element by representative. Order inside a group and
// between groups is unspecified.
func (d *DisjointSet[T]) Sets() map[T][]T {
	out := make(map[T][]T, d.count)
	for x := range d.parent {
		r := d.Find(x)
		out[r] = append(out[r], x)
	}

	return out
}
