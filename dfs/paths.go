package dfs

import "github.com/arprax/algos/graph"

// DepthFirstPaths holds the result of a depth-first traversal from a single
// source: which vertices were reached and via which tree edge. Query methods
// are pure; repeated calls return identical results.
type DepthFirstPaths struct {
	source int
	marked []bool // marked[v] == true iff v is reachable from source
	edgeTo []int  // edgeTo[v] = previous vertex on the discovered path to v
}

// Paths runs a depth-first search over g from source s and returns the
// resulting path finder. Returns ErrGraphNil for a nil graph and
// graph.ErrVertexOutOfRange for an invalid source.
//
// The search uses an explicit stack rather than recursion, so arbitrarily
// deep graphs cannot exhaust the goroutine stack.
func Paths(g *graph.Graph, s int) (*DepthFirstPaths, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Validating s through Adj also covers the V() == 0 case.
	if _, err := g.Adj(s); err != nil {
		return nil, err
	}

	p := &DepthFirstPaths{
		source: s,
		marked: make([]bool, g.V()),
		edgeTo: make([]int, g.V()),
	}
	if err := p.dfs(g, s); err != nil {
		return nil, err
	}

	return p, nil
}

// dfs performs the stack-based traversal, recording a tree edge for each
// vertex the first time it is marked.
func (p *DepthFirstPaths) dfs(g *graph.Graph, s int) error {
	type frame struct{ v, parent int }
	stack := []frame{{v: s, parent: s}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.marked[f.v] {
			continue
		}
		p.marked[f.v] = true
		p.edgeTo[f.v] = f.parent

		adj, err := g.Adj(f.v)
		if err != nil {
			return err
		}
		// Push in reverse so neighbors are explored in adjacency order,
		// matching the recursive formulation.
		for i := len(adj) - 1; i >= 0; i-- {
			if !p.marked[adj[i]] {
				stack = append(stack, frame{v: adj[i], parent: f.v})
			}
		}
	}

	return nil
}

// HasPathTo reports whether v is reachable from the source.
func (p *DepthFirstPaths) HasPathTo(v int) (bool, error) {
	if err := p.validate(v); err != nil {
		return false, err
	}

	return p.marked[v], nil
}

// PathTo returns the vertices of a path from the source to v, source first.
// Returns nil (with nil error) when v is unreachable. The path is a valid
// walk through g but not necessarily a shortest one.
func (p *DepthFirstPaths) PathTo(v int) ([]int, error) {
	if err := p.validate(v); err != nil {
		return nil, err
	}
	if !p.marked[v] {
		return nil, nil
	}

	// Walk parent links back to the source, then reverse.
	var path []int
	for x := v; x != p.source; x = p.edgeTo[x] {
		path = append(path, x)
	}
	path = append(path, p.source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func (p *DepthFirstPaths) validate(v int) error {
	if v < 0 || v >= len(p.marked) {
		return graph.ErrVertexOutOfRange
	}

	return nil
}
