package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the graph algorithms.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates Dijkstra encountered a negative edge weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrDirected indicates an algorithm that requires an undirected graph got a directed one.
	ErrDirected = errors.New("graph: graph must be undirected")

	// ErrDisconnected indicates that no spanning tree covers every vertex.
	ErrDisconnected = errors.New("graph: graph is disconnected")
)

// Unreachable is the distance Dijkstra reports for vertices it cannot reach.
const Unreachable = int64(1<<63 - 1)

// Edge is a weighted connection From → To. For undirected graphs the
// direction only records insertion order.
type Edge struct {
	From, To int
	Weight   int64
}

// Graph is an adjacency-list graph over vertices 0..n-1.
// Parallel edges and self-loops are allowed.
type Graph struct {
	directed bool
	adj      [][]Edge // adj[u] holds every edge leaving u
	edges    []Edge   // insertion order, one entry per AddEdge call
}

// New returns an empty graph with n vertices.
func New(n int, directed bool) *Graph {
	return &Graph{
		directed: directed,
		adj:      make([][]Edge, max(n, 0)),
	}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Neighbors returns the edges leaving u. The slice is shared; do not modify it.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.check(u); err != nil {
		return nil, err
	}

	return g.adj[u], nil
}

// AddEdge adds an edge u → v with weight w (and v → u when undirected).
func (g *Graph) AddEdge(u, v int, w int64) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}

	e := Edge{From: u, To: v, Weight: w}
	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], e)
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w})
	}

	return nil
}

func (g *Graph) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(g.adj))
	}

	return nil
}
