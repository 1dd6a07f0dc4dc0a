// This file declares the sentinel errors shared by every container in the
// package. All errors carry the "graph:" prefix and are wrapped with
// fmt.Errorf("%w: ...") where extra detail (an offending index) is useful,
// so callers can always match with errors.Is.

package graph

import "errors"

var (
	// ErrNegativeVertices indicates a constructor received a negative vertex count.
	ErrNegativeVertices = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, V).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrIllegalEndpoint indicates Edge.Other or FlowEdge operations were given
	// a vertex that is neither endpoint of the edge.
	ErrIllegalEndpoint = errors.New("graph: illegal endpoint")

	// ErrNegativeCapacity indicates a FlowEdge was constructed with capacity < 0.
	ErrNegativeCapacity = errors.New("graph: edge capacity must be non-negative")

	// ErrFlowBounds indicates a flow update would leave flow outside [0, capacity].
	ErrFlowBounds = errors.New("graph: flow out of bounds")

	// ErrNilEdge indicates a nil edge pointer was passed to AddEdge.
	ErrNilEdge = errors.New("graph: edge is nil")
)
