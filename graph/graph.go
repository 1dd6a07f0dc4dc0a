package graph

import (
	"fmt"
	"strings"
)

// Graph is an undirected graph over the dense vertex set 0..V-1,
// stored as an array of adjacency lists.
//
// Self-loops and parallel edges are permitted. The vertex count is fixed at
// construction; the edge count grows with AddEdge.
//
// Complexity: AddEdge O(1), Adj O(1) (slice view), memory O(V + E).
type Graph struct {
	v   int     // number of vertices, immutable
	e   int     // running number of edges
	adj [][]int // adj[v] = neighbors of v in insertion order
}

// NewGraph creates an empty undirected graph with v vertices and no edges.
// Returns ErrNegativeVertices if v < 0.
func NewGraph(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Graph{v: v, adj: make([][]int, v)}, nil
}

// V returns the number of vertices.
func (g *Graph) V() int { return g.v }

// E returns the number of edges.
func (g *Graph) E() int { return g.e }

// AddEdge adds an undirected edge between v and w.
// Both endpoints are validated before any mutation, so a failed call leaves
// the graph unchanged. Returns ErrVertexOutOfRange on a bad endpoint.
func (g *Graph) AddEdge(v, w int) error {
	if err := g.validateVertex(v); err != nil {
		return err
	}
	if err := g.validateVertex(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	g.adj[w] = append(g.adj[w], v)
	g.e++

	return nil
}

// Adj returns the vertices adjacent to v, in edge-insertion order.
// The returned slice is a read-only view into the graph's own storage;
// callers must not modify it.
func (g *Graph) Adj(v int) ([]int, error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// Degree returns the number of edges incident to v
// (a self-loop contributes two).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// String renders the graph as "V vertices, E edges" followed by one
// adjacency line per vertex.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", g.v, g.e)
	for v := 0; v < g.v; v++ {
		fmt.Fprintf(&sb, "%d:", v)
		for _, w := range g.adj[v] {
			fmt.Fprintf(&sb, " %d", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (g *Graph) validateVertex(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, g.v-1)
	}

	return nil
}
