package graph

import (
	"fmt"
	"strings"
)

// Digraph is a directed graph over the dense vertex set 0..V-1.
// AddEdge(v, w) creates the one-way edge v→w only.
//
// Per-vertex indegrees are maintained incrementally so InDegree is O(1).
type Digraph struct {
	v        int
	e        int
	adj      [][]int // adj[v] = heads of edges leaving v
	indegree []int   // indegree[w] = number of edges entering w
}

// NewDigraph creates an empty digraph with v vertices and no edges.
// Returns ErrNegativeVertices if v < 0.
func NewDigraph(v int) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Digraph{v: v, adj: make([][]int, v), indegree: make([]int, v)}, nil
}

// V returns the number of vertices.
func (g *Digraph) V() int { return g.v }

// E returns the number of edges.
func (g *Digraph) E() int { return g.e }

// AddEdge adds the directed edge v→w. Both endpoints are validated before
// any mutation. Returns ErrVertexOutOfRange on a bad endpoint.
func (g *Digraph) AddEdge(v, w int) error {
	if err := g.validateVertex(v); err != nil {
		return err
	}
	if err := g.validateVertex(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	g.indegree[w]++
	g.e++

	return nil
}

// Adj returns the heads of the edges leaving v, in insertion order.
// The returned slice is a read-only view; callers must not modify it.
func (g *Digraph) Adj(v int) ([]int, error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// OutDegree returns the number of edges leaving v.
func (g *Digraph) OutDegree(v int) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// InDegree returns the number of edges entering v.
func (g *Digraph) InDegree(v int) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, err
	}

	return g.indegree[v], nil
}

// Reverse returns a new Digraph with every edge v→w replaced by w→v.
// Useful for strongly-connected-component style analyses.
func (g *Digraph) Reverse() *Digraph {
	r := &Digraph{v: g.v, adj: make([][]int, g.v), indegree: make([]int, g.v)}
	for v := 0; v < g.v; v++ {
		for _, w := range g.adj[v] {
			r.adj[w] = append(r.adj[w], v)
			r.indegree[v]++
			r.e++
		}
	}

	return r
}

// String renders the digraph as "V vertices, E edges" followed by one
// adjacency line per vertex.
func (g *Digraph) String() string {
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

func (g *Digraph) validateVertex(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, g.v-1)
	}

	return nil
}
