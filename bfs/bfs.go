package bfs

import (
	"errors"

	"github.com/arprax/algos/graph"
)

// ErrGraphNil is returned when a nil graph is passed to Paths.
var ErrGraphNil = errors.New("bfs: graph is nil")

// unreached marks a vertex not yet assigned a distance.
const unreached = -1

// BreadthFirstPaths holds the result of a breadth-first traversal from a
// single source: shortest distances by edge count and the tree edge used to
// first reach each vertex. Query methods are pure; repeated calls return
// identical results.
type BreadthFirstPaths struct {
	source int
	marked []bool
	edgeTo []int
	distTo []int // edges on the shortest path from source; -1 when unreachable
}

// Paths runs a breadth-first search over g from source s.
// Returns ErrGraphNil for a nil graph and graph.ErrVertexOutOfRange for an
// invalid source.
func Paths(g *graph.Graph, s int) (*BreadthFirstPaths, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := g.Adj(s); err != nil {
		return nil, err
	}

	p := &BreadthFirstPaths{
		source: s,
		marked: make([]bool, g.V()),
		edgeTo: make([]int, g.V()),
		distTo: make([]int, g.V()),
	}
	for v := range p.distTo {
		p.distTo[v] = unreached
	}
	if err := p.bfs(g, s); err != nil {
		return nil, err
	}

	return p, nil
}

// bfs performs the level-order traversal. Each vertex receives its distance
// and tree edge exactly once, on first visit, which is what guarantees the
// distances are minimal.
func (p *BreadthFirstPaths) bfs(g *graph.Graph, s int) error {
	p.marked[s] = true
	p.distTo[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		adj, err := g.Adj(v)
		if err != nil {
			return err
		}
		for _, w := range adj {
			if !p.marked[w] {
				p.marked[w] = true
				p.edgeTo[w] = v
				p.distTo[w] = p.distTo[v] + 1
				queue = append(queue, w)
			}
		}
	}

	return nil
}

// HasPathTo reports whether v is reachable from the source.
func (p *BreadthFirstPaths) HasPathTo(v int) (bool, error) {
	if err := p.validate(v); err != nil {
		return false, err
	}

	return p.marked[v], nil
}

// DistTo returns the number of edges on the shortest path from the source
// to v, or -1 when v is unreachable.
func (p *BreadthFirstPaths) DistTo(v int) (int, error) {
	if err := p.validate(v); err != nil {
		return 0, err
	}

	return p.distTo[v], nil
}

// PathTo returns the vertices of a shortest path from the source to v,
// source first. Returns nil (with nil error) when v is unreachable.
func (p *BreadthFirstPaths) PathTo(v int) ([]int, error) {
	if err := p.validate(v); err != nil {
		return nil, err
	}
	if !p.marked[v] {
		return nil, nil
	}

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

func (p *BreadthFirstPaths) validate(v int) error {
	if v < 0 || v >= len(p.marked) {
		return graph.ErrVertexOutOfRange
	}

	return nil
}
