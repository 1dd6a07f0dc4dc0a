// Package dfs provides depth-first traversal over the graph containers:
// source-rooted path finding on undirected graphs and topological ordering
// of directed acyclic graphs.
//
// Paths answers connectivity questions ("is v reachable from s, and along
// which edges?"); the paths it finds are not guaranteed shortest; use the
// bfs package for fewest-edge paths.
//
// TopologicalSort orders the vertices of a Digraph so every edge u→v has u
// before v. A cycle makes such an order impossible; the sort detects cycles
// with three-color marking and fails with ErrCycleDetected instead of
// returning an invalid sequence.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (marks, parent links, recursion/stack state)
package dfs
