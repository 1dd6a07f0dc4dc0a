package graph

import "fmt"

// FlowEdge is a capacitated edge v→w with a mutable amount of flow.
// The invariant 0 ≤ flow ≤ capacity holds after every successful operation.
//
// Residual semantics: looking toward the head w, the forward residual is
// capacity-flow (room to push more); looking back toward the tail v, the
// backward residual is flow (amount that can be canceled).
type FlowEdge struct {
	v, w     int     // tail, head
	capacity float64 // immutable
	flow     float64 // 0 ≤ flow ≤ capacity
}

// NewFlowEdge creates the edge v→w with the given capacity and zero flow.
// Returns ErrNegativeCapacity if capacity < 0.
func NewFlowEdge(v, w int, capacity float64) (*FlowEdge, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %g on edge %d->%d", ErrNegativeCapacity, capacity, v, w)
	}

	return &FlowEdge{v: v, w: w, capacity: capacity}, nil
}

// From returns the tail vertex of this edge.
func (e *FlowEdge) From() int { return e.v }

// To returns the head vertex of this edge.
func (e *FlowEdge) To() int { return e.w }

// Capacity returns the capacity of this edge.
func (e *FlowEdge) Capacity() float64 { return e.capacity }

// Flow returns the current flow on this edge.
func (e *FlowEdge) Flow() float64 { return e.flow }

// Other returns the endpoint of this edge that is not vertex.
// Returns ErrIllegalEndpoint if vertex is neither endpoint.
func (e *FlowEdge) Other(vertex int) (int, error) {
	switch vertex {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, fmt.Errorf("%w: vertex %d is not an endpoint of %s", ErrIllegalEndpoint, vertex, e)
	}
}

// ResidualCapacityTo returns the residual capacity toward vertex:
// capacity-flow toward the head, flow back toward the tail.
func (e *FlowEdge) ResidualCapacityTo(vertex int) (float64, error) {
	switch vertex {
	case e.w:
		return e.capacity - e.flow, nil
	case e.v:
		return e.flow, nil
	default:
		return 0, fmt.Errorf("%w: vertex %d is not an endpoint of %s", ErrIllegalEndpoint, vertex, e)
	}
}

// AddResidualFlowTo pushes delta units of flow toward vertex: forward
// pushes (toward the head) increase flow, backward pushes (toward the
// tail) cancel it. The update is rejected with ErrFlowBounds if it would
// leave flow outside [0, capacity], leaving the edge unchanged.
func (e *FlowEdge) AddResidualFlowTo(vertex int, delta float64) error {
	var next float64
	switch vertex {
	case e.w:
		next = e.flow + delta
	case e.v:
		next = e.flow - delta
	default:
		return fmt.Errorf("%w: vertex %d is not an endpoint of %s", ErrIllegalEndpoint, vertex, e)
	}
	if next < 0 || next > e.capacity {
		return fmt.Errorf("%w: flow %g outside [0, %g] on %s", ErrFlowBounds, next, e.capacity, e)
	}
	e.flow = next

	return nil
}

// String renders the edge as "v->w flow/capacity".
func (e *FlowEdge) String() string {
	return fmt.Sprintf("%d->%d %.2f/%.2f", e.v, e.w, e.flow, e.capacity)
}

// FlowNetwork is a capacitated graph for max-flow computation.
// Every *FlowEdge is referenced from both endpoints' adjacency lists, so
// the flow package can walk residual edges in either direction and a push
// made through one endpoint is visible from the other.
type FlowNetwork struct {
	v   int
	e   int
	adj [][]*FlowEdge
}

// NewFlowNetwork creates an empty flow network with v vertices.
// Returns ErrNegativeVertices if v < 0.
func NewFlowNetwork(v int) (*FlowNetwork, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &FlowNetwork{v: v, adj: make([][]*FlowEdge, v)}, nil
}

// V returns the number of vertices.
func (n *FlowNetwork) V() int { return n.v }

// E returns the number of edges.
func (n *FlowNetwork) E() int { return n.e }

// AddEdge adds e to the network, referencing it from both endpoints.
// Both endpoints are validated before any mutation.
func (n *FlowNetwork) AddEdge(e *FlowEdge) error {
	if e == nil {
		return ErrNilEdge
	}
	if err := n.validateVertex(e.From()); err != nil {
		return err
	}
	if err := n.validateVertex(e.To()); err != nil {
		return err
	}
	n.adj[e.From()] = append(n.adj[e.From()], e)
	if e.To() != e.From() {
		n.adj[e.To()] = append(n.adj[e.To()], e)
	}
	n.e++

	return nil
}

// Adj returns the edges incident to v, both those leaving it and those
// entering it (the latter are needed for backward residual walks).
// Read-only view.
func (n *FlowNetwork) Adj(v int) ([]*FlowEdge, error) {
	if err := n.validateVertex(v); err != nil {
		return nil, err
	}

	return n.adj[v], nil
}

// Edges returns every edge in the network exactly once.
func (n *FlowNetwork) Edges() []*FlowEdge {
	edges := make([]*FlowEdge, 0, n.e)
	for v := 0; v < n.v; v++ {
		for _, e := range n.adj[v] {
			// Each edge sits in two lists; report it from its tail only.
			if e.From() == v {
				edges = append(edges, e)
			}
		}
	}

	return edges
}

func (n *FlowNetwork) validateVertex(v int) error {
	if v < 0 || v >= n.v {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, n.v-1)
	}

	return nil
}
