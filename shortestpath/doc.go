// Package shortestpath computes single-source shortest paths on an
// edge-weighted digraph.
//
// Dijkstra handles non-negative weights only (a negative edge is rejected
// eagerly, before any relaxation) and processes vertices in increasing
// distance order using a min-heap with the lazy decrease-key strategy:
// improvements push duplicate heap entries, and stale entries are skipped
// when popped instead of being removed eagerly.
//
// BellmanFord supports negative weights using queue-based (SPFA-style)
// relaxation, and detects negative cycles reachable from the source: after
// every V edge relaxations it searches the shortest-path tree defined by
// the parent links for a cycle. When one is found, relaxation stops, the
// cycle is exposed via NegativeCycle, and distance queries fail with
// ErrNegativeCycle because no finite shortest distances exist.
//
// Complexity:
//
//   - Dijkstra:    O((V + E) log V) time, O(V + E) memory
//   - BellmanFord: O(V · E) worst-case time, O(V) memory
package shortestpath
