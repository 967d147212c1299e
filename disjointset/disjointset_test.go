package disjointset_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/combinat/disjointset"
	"github.com/stretchr/testify/assert"
)

// TestDisjointSet_Basic walks through a small sequence of unions.
func TestDisjointSet_Basic(t *testing.T) {
	d := disjointset.New(1, 2, 3, 4, 5)
	assert.Equal(t, 5, d.Count())
	assert.False(t, d.Add(3), "duplicate add is a no-op")

	assert.True(t, d.Union(1, 2))
	assert.True(t, d.Union(3, 4))
	assert.False(t, d.Union(2, 1), "already merged")
	assert.Equal(t, 3, d.Count())

	assert.True(t, d.Connected(1, 2))
	assert.False(t, d.Connected(1, 3))

	assert.True(t, d.Union(2, 4))
	assert.True(t, d.Connected(1, 3))
	assert.Equal(t, 4, d.Size(3))
	assert.Equal(t, 1, d.Size(5))
	assert.Equal(t, 2, d.Count())
}

// TestDisjointSet_FindAddsUnknown confirms Find lazily registers elements.
func TestDisjointSet_FindAddsUnknown(t *testing.T) {
	d := disjointset.New[string]()
	assert.False(t, d.Has("a"))
	assert.Equal(t, "a", d.Find("a"))
	assert.True(t, d.Has("a"))
	assert.Equal(t, 1, d.Count())
}

// TestDisjointSet_Sets checks the grouping view.
func TestDisjointSet_Sets(t *testing.T) {
	d := disjointset.New("a", "b", "c", "d")
	d.Union("a", "c")
	d.Union("b", "d")

	var groups [][]string
	for _, g := range d.Sets() {
		sort.Strings(g)
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	assert.Equal(t, [][]string{{"a", "c"}, {"b", "d"}}, groups)
}

// TestDisjointSet_LongChain keeps ranks and sizes consistent on a long chain.
func TestDisjointSet_LongChain(t *testing.T) {
	d := disjointset.New[int]()
	for i := 1; i < 1000; i++ {
		d.Union(i-1, i)
	}
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 1000, d.Size(500))
	assert.True(t, d.Connected(0, 999))
}
