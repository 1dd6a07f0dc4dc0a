package flow

import (
	"fmt"

	"github.com/arprax/algos/graph"
)

// Matching holds the result of a maximum bipartite matching computation.
type Matching struct {
	size int
}

// BipartiteMatching computes a maximum matching between a left set of n
// vertices (0..n-1) and a right set of m vertices (0..m-1), where adj[i]
// lists the right vertices that left vertex i may match with.
//
// The problem reduces to max-flow on a network of n+m+2 vertices: a
// synthetic source (index n+m) with a unit-capacity edge to every left
// vertex, a unit-capacity edge from every right vertex to a synthetic sink
// (index n+m+1), and a unit-capacity edge i→n+j for every allowed pair.
// All capacities are integral, so by the integrality theorem the max-flow
// value is a whole number: the matching size.
//
// Returns ErrNegativeSets when n or m is negative and
// graph.ErrVertexOutOfRange when adj references a right vertex outside
// [0, m) or has more than n rows.
func BipartiteMatching(adj [][]int, n, m int) (*Matching, error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: n=%d, m=%d", ErrNegativeSets, n, m)
	}
	if len(adj) > n {
		return nil, fmt.Errorf("%w: adjacency has %d rows for %d left vertices",
			graph.ErrVertexOutOfRange, len(adj), n)
	}

	source, sink := n+m, n+m+1
	network, err := graph.NewFlowNetwork(n + m + 2)
	if err != nil {
		return nil, err
	}

	// Source feeds every left vertex.
	for i := 0; i < n; i++ {
		e, eerr := graph.NewFlowEdge(source, i, 1)
		if eerr != nil {
			return nil, eerr
		}
		if err = network.AddEdge(e); err != nil {
			return nil, err
		}
	}
	// One unit edge per allowed pair.
	for i, row := range adj {
		for _, j := range row {
			if j < 0 || j >= m {
				return nil, fmt.Errorf("%w: right vertex %d is not between 0 and %d",
					graph.ErrVertexOutOfRange, j, m-1)
			}
			e, eerr := graph.NewFlowEdge(i, n+j, 1)
			if eerr != nil {
				return nil, eerr
			}
			if err = network.AddEdge(e); err != nil {
				return nil, err
			}
		}
	}
	// Every right vertex drains to the sink.
	for j := 0; j < m; j++ {
		e, eerr := graph.NewFlowEdge(n+j, sink, 1)
		if eerr != nil {
			return nil, eerr
		}
		if err = network.AddEdge(e); err != nil {
			return nil, err
		}
	}

	mf, err := FordFulkerson(network, source, sink)
	if err != nil {
		return nil, err
	}

	return &Matching{size: int(mf.Value())}, nil
}

// Size returns the number of pairs in the maximum matching,
// always a non-negative integer at most min(n, m).
func (m *Matching) Size() int { return m.size }
