package dfs

import "github.com/arprax/algos/graph"

// topoSorter encapsulates the state of one topological sort run.
type topoSorter struct {
	graph *graph.Digraph
	opts  topoOptions
	state []int // White/Gray/Black per vertex
	order []int // post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g:
// for every edge u→v, u appears before v in the returned slice.
//
// The traversal restarts from every unvisited vertex, so disconnected
// digraphs are fully covered. A back-edge (a Gray vertex revisited) proves
// a directed cycle, in which case ErrCycleDetected is returned and no order
// is produced. Returns ErrGraphNil for a nil graph.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *graph.Digraph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings.
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state; all vertices start White.
	s := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, g.V()),
		order: make([]int, 0, g.V()),
	}
	// 4. Drive DFS from every unvisited vertex.
	for v := 0; v < g.V(); v++ {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse the post-order to obtain the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs a DFS from v, marking states and detecting back-edges.
func (s *topoSorter) visit(v int) error {
	// Cancellation check at entry.
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// A Gray vertex on the current stack means a back-edge: cycle.
	if s.state[v] == Gray {
		return ErrCycleDetected
	}
	if s.state[v] == Black {
		return nil
	}
	s.state[v] = Gray

	adj, err := s.graph.Adj(v)
	if err != nil {
		return err
	}
	for _, w := range adj {
		if err = s.visit(w); err != nil {
			return err
		}
	}

	s.state[v] = Black
	s.order = append(s.order, v)

	return nil
}
