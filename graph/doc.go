// Package graph is a compact weighted graph over integer vertices 0..n-1,
// with the two textbook algorithms the puzzle library leans on:
// Dijkstra's single-source shortest paths and Kruskal's minimum spanning tree.
//
// Unlike a general-purpose graph library, vertices are dense indices. That
// matches the way grids and adjacency matrices read from puzzle data are
// laid out, and keeps every per-vertex table a plain slice.
//
// Algorithms:
//
//   - Dijkstra(g, source): lazy decrease-key over container/heap.
//     Time O((V+E) log V), memory O(V+E).
//   - Kruskal(g)         : stable sort by weight + disjointset.
//     Time O(E log E), memory O(V+E).
//   - Path(prev, target) : rebuild a source→target path from predecessors.
//
// Errors (sentinel):
//
//   - ErrVertexOutOfRange: a vertex index outside 0..n-1.
//   - ErrNegativeWeight  : Dijkstra found an edge with weight < 0.
//   - ErrDirected        : Kruskal requires an undirected graph.
//   - ErrDisconnected    : no spanning tree exists.
//
// Example:
//
//	g := graph.New(4, false)
//	_ = g.AddEdge(0, 1, 5)
//	_ = g.AddEdge(1, 2, 3)
//	dist, prev, err := graph.Dijkstra(g, 0)
//	path := graph.Path(prev, 2) // [0 1 2]
package graph
