// This file defines the sentinel errors shared by Dijkstra and BellmanFord.

package shortestpath

import "errors"

var (
	// ErrGraphNil is returned when a nil digraph is passed in.
	ErrGraphNil = errors.New("shortestpath: graph is nil")

	// ErrNegativeWeight is returned by Dijkstra when the digraph contains a
	// negative-weight edge; the wrapped message names the offending edge.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight")

	// ErrNegativeCycle is returned by BellmanFord distance and path queries
	// once a negative cycle reachable from the source has been found:
	// shortest distances are undefined in that case.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle reachable from source")
)
