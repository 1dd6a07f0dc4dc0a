// Package flow solves the max-flow/min-cut problem on a graph.FlowNetwork
// and builds maximum bipartite matching on top of it by reduction.
//
// FordFulkerson uses the shortest-augmenting-path rule (the Edmonds-Karp
// variant): each augmenting path is found by BFS over the residual graph,
// which bounds the number of augmentations polynomially at O(V·E) rather
// than letting pathological capacity choices force exponentially many.
// Each augmentation pushes the path's bottleneck capacity, increasing flow
// on forward edges and canceling it on backward ones. When no augmenting
// path remains, the vertices still reachable from the source in the
// residual graph form the source side of a minimum cut (InCut), whose
// crossing capacities sum to the flow value by max-flow/min-cut duality.
//
// BipartiteMatching reduces maximum matching to max-flow: a synthetic
// source feeds every left vertex, every right vertex drains to a synthetic
// sink, all capacities one. The integrality theorem guarantees the
// resulting max flow is a whole number equal to the matching size.
//
// A FordFulkerson run mutates the flow on the network's shared FlowEdges,
// so concurrent runs over one FlowNetwork must be serialized or given
// independent copies.
//
// Complexity:
//
//   - FordFulkerson:      O(V · E²) time, O(V + E) memory
//   - BipartiteMatching:  O(V · E) on the unit-capacity reduction (each
//     augmentation raises the flow by one, and the flow is at most V)
package flow
