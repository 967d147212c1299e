package graph

import (
	"sort"

	"github.com/katalvlaran/combinat/disjointset"
)

// Kruskal computes a minimum spanning tree of an undirected graph.
//
// Steps:
//  1. Reject directed graphs; an empty or single-vertex graph has an empty tree.
//  2. Stable-sort the edges by weight (ties keep insertion order), skipping self-loops.
//  3. Take each edge whose endpoints lie in different disjointset components
//     until |V|-1 edges are chosen.
//  4. Fewer than |V|-1 edges means the graph is disconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V+E) memory.
func Kruskal(g *Graph) ([]Edge, int64, error) {
	if g.directed {
		return nil, 0, ErrDirected
	}
	n := g.Order()
	if n <= 1 {
		return []Edge{}, 0, nil
	}

	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	components := disjointset.New[int]()
	for v := 0; v < n; v++ {
		components.Add(v)
	}

	var (
		tree  = make([]Edge, 0, n-1)
		total int64
	)
	for _, e := range edges {
		if !components.Union(e.From, e.To) {
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
