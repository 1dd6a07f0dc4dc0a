// Package algos is a reference library of classical graph and optimization
// algorithms for teaching and benchmarking, built around dense
// integer-indexed, in-memory graph containers.
//
// Everything is organized into small focused subpackages:
//
//	graph/        - Graph, Digraph, EdgeWeightedGraph, EdgeWeightedDigraph,
//	                FlowNetwork and their Edge/DirectedEdge/FlowEdge types
//	dsu/          - disjoint set (weighted quick-union with path compression)
//	dfs/          - depth-first paths and topological sort with cycle detection
//	bfs/          - breadth-first shortest paths by edge count
//	mst/          - minimum spanning trees: Kruskal and LazyPrim
//	shortestpath/ - Dijkstra and BellmanFord with negative-cycle detection
//	flow/         - Ford-Fulkerson (Edmonds-Karp) max-flow/min-cut and
//	                bipartite matching by reduction
//	simplex/      - tableau LP solver with Bland's anti-cycling rule
//
// Algorithms follow the construct-then-query pattern: a constructor runs the
// computation to completion and returns a result object whose query methods
// (DistTo, PathTo, Edges, Weight, Value, InCut, Primal, ...) are pure and
// side-effect free. Every algorithm is single-threaded and synchronous; the
// long-running loops accept an optional cancellation context.
//
// Validation is eager and local: constructors reject negative vertex counts,
// AddEdge rejects out-of-range endpoints before mutating anything, and each
// algorithm validates its inputs before touching the graph. Failures are
// package-prefixed sentinel errors compatible with errors.Is.
package algos
