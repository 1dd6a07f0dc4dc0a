package mst

import (
	"sort"

	"github.com/arprax/algos/dsu"
	"github.com/arprax/algos/graph"
)

// Kruskal computes a minimum spanning tree of g.
//
// Steps:
//  1. Collect every edge and sort ascending by weight (sort.SliceStable, so
//     ties keep their construction order and the result is deterministic).
//  2. Initialize a DisjointSet over the V vertices.
//  3. Scan edges in order: accept an edge iff its endpoints are in
//     different components, then union them; skip otherwise.
//  4. Stop early once V-1 edges are collected.
//
// On a disconnected graph the scan simply runs out of acceptable edges and
// the result is a minimum spanning forest with fewer than V-1 edges, one
// tree per component. This is intentional, not an error.
//
// Complexity: O(E log E + α(V)·E) time, O(E + V) memory.
func Kruskal(g *graph.EdgeWeightedGraph) (*MST, error) {
	// 1. Validate and sort.
	if g == nil {
		return nil, ErrGraphNil
	}
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})

	// 2. One singleton set per vertex.
	uf, err := dsu.New(g.V())
	if err != nil {
		return nil, err
	}

	// 3. Greedy scan with union-find cycle rejection.
	m := &MST{edges: make([]*graph.Edge, 0, max(g.V()-1, 0))}
	for _, e := range edges {
		v := e.Either()
		w, werr := e.Other(v)
		if werr != nil {
			return nil, werr
		}
		connected, cerr := uf.Connected(v, w)
		if cerr != nil {
			return nil, cerr
		}
		if connected {
			// Accepting this edge would close a cycle.
			continue
		}
		if err = uf.Union(v, w); err != nil {
			return nil, err
		}
		m.edges = append(m.edges, e)
		m.weight += e.Weight()

		// 4. A spanning tree has exactly V-1 edges.
		if len(m.edges) == g.V()-1 {
			break
		}
	}

	return m, nil
}
