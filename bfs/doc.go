// Package bfs provides breadth-first search over an undirected graph,
// returning shortest-path distances (by edge count) and parent links from a
// single source.
//
// BFS explores vertices level by level, so the first time a vertex is
// reached is along a fewest-edges path, so the distances and paths it reports
// are provably shortest, unlike the dfs package's.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
