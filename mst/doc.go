// Package mst computes minimum spanning trees of an undirected
// edge-weighted graph, with two classic algorithms that trade differently:
//
//   - Kruskal - sorts every edge ascending by weight and accepts an edge iff
//     its endpoints are not already connected, tracked by a dsu.DisjointSet.
//     On a disconnected graph it yields a minimum spanning forest, one tree
//     per component. O(E log E) time.
//
//   - LazyPrim - grows a single tree outward from vertex 0 using a min-heap
//     of candidate edges. "Lazy" means obsolete edges (both endpoints
//     already in the tree) stay in the heap and are discarded when popped
//     rather than removed eagerly. On a disconnected graph it covers only
//     the component containing vertex 0 - a deliberate divergence from
//     Kruskal's forest semantics, documented on the function.
//
// For a connected graph both algorithms produce the same total weight,
// though the edge sets may differ when duplicate weights exist.
package mst
