package graph

import (
	"container/heap"
	"fmt"
	"slices"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum total weight source → v, Unreachable if none.
//   - prev: prev[v] is v's predecessor on a shortest path, -1 for the source
//     and for unreachable vertices.
//
// Steps:
//  1. Validate source and pre-scan every edge for negative weights (fail fast).
//  2. Seed dist[source] = 0 and push it on a min-heap.
//  3. Pop the closest unvisited vertex, mark it final, relax its edges.
//     Improved neighbors are pushed again (lazy decrease-key); stale heap
//     entries are skipped when popped.
//
// Complexity: O((V+E) log V) time, O(V+E) memory.
func Dijkstra(g *Graph, source int) ([]int64, []int, error) {
	// 1) Validation.
	if err := g.check(source); err != nil {
		return nil, nil, err
	}
	for _, e := range g.edges {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 2) Initialization.
	n := g.Order()
	dist := make([]int64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for v := range dist {
		dist[v] = Unreachable
		prev[v] = -1
	}
	dist[source] = 0
	pq := &nodePQ{{id: source, dist: 0}}

	// 3) Main loop.
	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		u := item.id
		if visited[u] {
			continue // stale entry
		}
		visited[u] = true

		for _, e := range g.adj[u] {
			nd := dist[u] + e.Weight
			if nd >= dist[e.To] {
				continue
			}
			dist[e.To] = nd
			prev[e.To] = u
			heap.Push(pq, nodeItem{id: e.To, dist: nd})
		}
	}

	return dist, prev, nil
}

// Path rebuilds the vertex sequence source → target from a predecessor
// table returned by Dijkstra. It returns nil when target is out of range.
// An unreachable target yields just [target]; check dist for Unreachable first.
func Path(prev []int, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}

	var path []int
	for v := target; v != -1; v = prev[v] {
		path = append(path, v)
		if len(path) > len(prev) {
			return nil // corrupted table: cycle
		}
	}
	slices.Reverse(path)

	return path
}

// nodeItem is one heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	item := old[len(old)-1]
	*pq = old[:len(old)-1]

	return item
}
