package graph

import "fmt"

// DirectedEdge is an immutable weighted edge from one vertex to another.
// Unlike Edge there is no Other ambiguity: direction is fixed.
type DirectedEdge struct {
	from, to int
	weight   float64
}

// NewDirectedEdge creates the directed edge from→to with the given weight.
func NewDirectedEdge(from, to int, weight float64) *DirectedEdge {
	return &DirectedEdge{from: from, to: to, weight: weight}
}

// From returns the tail vertex of this edge.
func (e *DirectedEdge) From() int { return e.from }

// To returns the head vertex of this edge.
func (e *DirectedEdge) To() int { return e.to }

// Weight returns the weight of this edge.
func (e *DirectedEdge) Weight() float64 { return e.weight }

// String renders the edge as "from->to weight".
func (e *DirectedEdge) String() string {
	return fmt.Sprintf("%d->%d %.2f", e.from, e.to, e.weight)
}

// EdgeWeightedDigraph is a directed graph whose edges carry weights.
// Used by the shortestpath package (Dijkstra, BellmanFord).
type EdgeWeightedDigraph struct {
	v   int
	e   int
	adj [][]*DirectedEdge // adj[v] = edges leaving v
}

// NewEdgeWeightedDigraph creates an empty edge-weighted digraph with v
// vertices. Returns ErrNegativeVertices if v < 0.
func NewEdgeWeightedDigraph(v int) (*EdgeWeightedDigraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &EdgeWeightedDigraph{v: v, adj: make([][]*DirectedEdge, v)}, nil
}

// V returns the number of vertices.
func (g *EdgeWeightedDigraph) V() int { return g.v }

// E returns the number of edges.
func (g *EdgeWeightedDigraph) E() int { return g.e }

// AddEdge adds e to the digraph. Both endpoints are validated before any
// mutation.
func (g *EdgeWeightedDigraph) AddEdge(e *DirectedEdge) error {
	if e == nil {
		return ErrNilEdge
	}
	if err := g.validateVertex(e.From()); err != nil {
		return err
	}
	if err := g.validateVertex(e.To()); err != nil {
		return err
	}
	g.adj[e.From()] = append(g.adj[e.From()], e)
	g.e++

	return nil
}

// Adj returns the edges leaving v, in insertion order. Read-only view.
func (g *EdgeWeightedDigraph) Adj(v int) ([]*DirectedEdge, error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// Edges returns every edge in the digraph, grouped by tail vertex.
func (g *EdgeWeightedDigraph) Edges() []*DirectedEdge {
	edges := make([]*DirectedEdge, 0, g.e)
	for v := 0; v < g.v; v++ {
		edges = append(edges, g.adj[v]...)
	}

	return edges
}

func (g *EdgeWeightedDigraph) validateVertex(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, g.v-1)
	}

	return nil
}
