package graph

import "fmt"

// Edge is an immutable weighted undirected edge between two vertices.
// It is ordered by weight (Less), which is what Kruskal sorts on.
type Edge struct {
	v, w   int
	weight float64
}

// NewEdge creates the undirected edge v–w with the given weight.
// Endpoint bounds are checked by EdgeWeightedGraph.AddEdge, not here,
// because an Edge is independent of any particular graph's vertex count.
func NewEdge(v, w int, weight float64) *Edge {
	return &Edge{v: v, w: w, weight: weight}
}

// Weight returns the weight of this edge.
func (e *Edge) Weight() float64 { return e.weight }

// Either returns one endpoint of this edge.
func (e *Edge) Either() int { return e.v }

// Other returns the endpoint of this edge that is not vertex.
// Returns ErrIllegalEndpoint if vertex is neither endpoint.
func (e *Edge) Other(vertex int) (int, error) {
	switch vertex {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, fmt.Errorf("%w: vertex %d is not an endpoint of %s", ErrIllegalEndpoint, vertex, e)
	}
}

// Less reports whether this edge weighs strictly less than other.
func (e *Edge) Less(other *Edge) bool { return e.weight < other.weight }

// String renders the edge as "v-w weight".
func (e *Edge) String() string {
	return fmt.Sprintf("%d-%d %.2f", e.v, e.w, e.weight)
}

// EdgeWeightedGraph is an undirected graph whose edges carry weights.
// Each *Edge is appended to both endpoints' adjacency lists, so the two
// lists share one logical edge object rather than duplicating it.
//
// Used by the mst package (Kruskal, LazyPrim).
type EdgeWeightedGraph struct {
	v   int
	e   int
	adj [][]*Edge
}

// NewEdgeWeightedGraph creates an empty edge-weighted graph with v vertices.
// Returns ErrNegativeVertices if v < 0.
func NewEdgeWeightedGraph(v int) (*EdgeWeightedGraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &EdgeWeightedGraph{v: v, adj: make([][]*Edge, v)}, nil
}

// V returns the number of vertices.
func (g *EdgeWeightedGraph) V() int { return g.v }

// E returns the number of edges.
func (g *EdgeWeightedGraph) E() int { return g.e }

// AddEdge adds e to the graph, referencing it from both endpoints.
// Both endpoints are validated before any mutation.
func (g *EdgeWeightedGraph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	v := e.Either()
	w, err := e.Other(v)
	if err != nil {
		return err
	}
	if err = g.validateVertex(v); err != nil {
		return err
	}
	if err = g.validateVertex(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], e)
	if w != v {
		g.adj[w] = append(g.adj[w], e)
	} else {
		// A self-loop appears twice in its own list, keeping Degree == 2.
		g.adj[v] = append(g.adj[v], e)
	}
	g.e++

	return nil
}

// Adj returns the edges incident to v. Read-only view.
func (g *EdgeWeightedGraph) Adj(v int) ([]*Edge, error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// Edges returns every edge exactly once, in per-vertex insertion order.
// An edge v–w with v < w is reported from v; self-loops are reported once
// by skipping every second copy in the loop vertex's own list.
func (g *EdgeWeightedGraph) Edges() []*Edge {
	edges := make([]*Edge, 0, g.e)
	for v := 0; v < g.v; v++ {
		selfLoops := 0
		for _, e := range g.adj[v] {
			w, _ := e.Other(v) // v is an endpoint by construction
			if w > v {
				edges = append(edges, e)
			} else if w == v {
				if selfLoops%2 == 0 {
					edges = append(edges, e)
				}
				selfLoops++
			}
		}
	}

	return edges
}

func (g *EdgeWeightedGraph) validateVertex(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, g.v-1)
	}

	return nil
}
