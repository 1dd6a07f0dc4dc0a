// Package graph provides the core in-memory graph containers used by every
// algorithm package in this module:
//
//   - Graph               - undirected, unweighted adjacency lists
//   - Digraph             - directed, unweighted adjacency lists
//   - EdgeWeightedGraph   - undirected with weighted Edge objects
//   - EdgeWeightedDigraph - directed with weighted DirectedEdge objects
//   - FlowNetwork         - capacitated FlowEdge objects with mutable flow
//
// All containers identify vertices by a dense integer index 0..V-1, fixed at
// construction. Adjacency is stored as a slice of per-vertex lists, giving
// O(1) edge insertion and O(degree(v)) neighbor iteration with O(V+E) memory.
// Self-loops and parallel edges are permitted everywhere.
//
// In the undirected weighted containers (EdgeWeightedGraph, FlowNetwork) the
// same edge pointer is appended to both endpoints' adjacency lists, so a
// mutation made through one endpoint (a flow push) is visible from the other.
//
// Constructors and AddEdge validate eagerly: a negative vertex count fails
// with ErrNegativeVertices, an endpoint outside [0, V) fails with
// ErrVertexOutOfRange before any state is mutated, and a negative capacity
// fails with ErrNegativeCapacity.
package graph
