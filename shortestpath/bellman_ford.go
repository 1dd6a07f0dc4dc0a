package shortestpath

import (
	"math"

	"github.com/arprax/algos/graph"
)

// BellmanFordPaths holds the result of a BellmanFord run. Unlike Dijkstra
// it tolerates negative edge weights; if a negative cycle is reachable from
// the source, HasNegativeCycle reports true, NegativeCycle returns its
// edges, and the per-vertex queries (DistTo, HasPathTo, PathTo) all fail
// with ErrNegativeCycle.
type BellmanFordPaths struct {
	distTo  []float64
	edgeTo  []*graph.DirectedEdge
	onQueue []bool
	queue   []int
	cost    int // relaxations performed; triggers a cycle check every V
	cycle   []*graph.DirectedEdge
}

// BellmanFord computes shortest paths from source s over g using
// queue-based relaxation: only vertices whose distance just improved are
// kept on a FIFO, and each dequeue relaxes that vertex's outgoing edges.
//
// After every V edge relaxations (one full pass worth of work) the
// shortest-path tree defined by the parent links is searched for a cycle.
// A cycle in that tree can only exist if it has negative total weight
// (otherwise relaxation would never have closed it), so finding one both
// proves a reachable negative cycle and stops further processing.
//
// Returns ErrGraphNil for a nil digraph and graph.ErrVertexOutOfRange for
// an invalid source.
func BellmanFord(g *graph.EdgeWeightedDigraph, s int) (*BellmanFordPaths, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := g.Adj(s); err != nil {
		return nil, err
	}

	p := &BellmanFordPaths{
		distTo:  make([]float64, g.V()),
		edgeTo:  make([]*graph.DirectedEdge, g.V()),
		onQueue: make([]bool, g.V()),
	}
	for v := range p.distTo {
		p.distTo[v] = math.Inf(1)
	}
	p.distTo[s] = 0
	p.queue = append(p.queue, s)
	p.onQueue[s] = true

	for len(p.queue) > 0 && p.cycle == nil {
		v := p.queue[0]
		p.queue = p.queue[1:]
		p.onQueue[v] = false
		if err := p.relax(g, v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// relax relaxes every edge leaving v, enqueueing endpoints whose distance
// improved, and runs the negative-cycle check every V relaxations.
func (p *BellmanFordPaths) relax(g *graph.EdgeWeightedDigraph, v int) error {
	adj, err := g.Adj(v)
	if err != nil {
		return err
	}
	for _, e := range adj {
		w := e.To()
		if p.distTo[w] > p.distTo[v]+e.Weight() {
			p.distTo[w] = p.distTo[v] + e.Weight()
			p.edgeTo[w] = e
			if !p.onQueue[w] {
				p.queue = append(p.queue, w)
				p.onQueue[w] = true
			}
		}
		p.cost++
		if p.cost%g.V() == 0 {
			p.findNegativeCycle()
			if p.cycle != nil {
				return nil
			}
		}
	}

	return nil
}

// findNegativeCycle searches the current shortest-path tree (the edgeTo
// parent links) for a cycle. From each unvisited vertex it walks parent
// links backward, stamping every vertex with the walk that first touched
// it: re-entering a vertex stamped by the same walk means the walk is its
// own ancestor, i.e. the parent links close a cycle. Such a cycle is
// necessarily negative, because relaxation only rewires parent links on a
// strict improvement.
func (p *BellmanFordPaths) findNegativeCycle() {
	n := len(p.distTo)
	// visitedBy[v] = 1+index of the walk that first reached v; 0 = untouched.
	visitedBy := make([]int, n)
	for v := 0; v < n; v++ {
		if visitedBy[v] != 0 {
			continue
		}
		walk := v + 1
		for x := v; ; {
			if visitedBy[x] == walk {
				// x is its own ancestor in this walk: collect the cycle.
				p.cycle = collectCycle(p.edgeTo, x)

				return
			}
			if visitedBy[x] != 0 {
				// Merged into a previously cleared walk; no cycle here.
				break
			}
			visitedBy[x] = walk
			e := p.edgeTo[x]
			if e == nil {
				break
			}
			x = e.From()
		}
	}
}

// collectCycle gathers the parent-link cycle through x, returned in
// forward (travel) order.
func collectCycle(edgeTo []*graph.DirectedEdge, x int) []*graph.DirectedEdge {
	var cycle []*graph.DirectedEdge
	for y := x; ; {
		e := edgeTo[y]
		cycle = append(cycle, e)
		y = e.From()
		if y == x {
			break
		}
	}
	// Backward walk collected the edges tail-first; reverse them.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle
}

// HasNegativeCycle reports whether a negative cycle reachable from the
// source was detected.
func (p *BellmanFordPaths) HasNegativeCycle() bool { return p.cycle != nil }

// NegativeCycle returns the edges of a detected negative cycle in travel
// order, or nil when none was found.
func (p *BellmanFordPaths) NegativeCycle() []*graph.DirectedEdge { return p.cycle }

// DistTo returns the length of the shortest path from the source to v, or
// +Inf when v is unreachable. Fails with ErrNegativeCycle once a negative
// cycle has been detected, since no finite shortest distances exist.
func (p *BellmanFordPaths) DistTo(v int) (float64, error) {
	if err := p.validate(v); err != nil {
		return 0, err
	}
	if p.cycle != nil {
		return 0, ErrNegativeCycle
	}

	return p.distTo[v], nil
}

// HasPathTo reports whether v is reachable from the source. Like DistTo
// and PathTo it fails with ErrNegativeCycle once a negative cycle has been
// detected: the relaxation stopped early, so reachability recorded up to
// that point is not trustworthy.
func (p *BellmanFordPaths) HasPathTo(v int) (bool, error) {
	if err := p.validate(v); err != nil {
		return false, err
	}
	if p.cycle != nil {
		return false, ErrNegativeCycle
	}

	return !math.IsInf(p.distTo[v], 1), nil
}

// PathTo returns the edges of a shortest path from the source to v in
// travel order. Returns nil (with nil error) when v is unreachable, and
// ErrNegativeCycle once a negative cycle has been detected.
func (p *BellmanFordPaths) PathTo(v int) ([]*graph.DirectedEdge, error) {
	if err := p.validate(v); err != nil {
		return nil, err
	}
	if p.cycle != nil {
		return nil, ErrNegativeCycle
	}
	if math.IsInf(p.distTo[v], 1) {
		return nil, nil
	}

	var path []*graph.DirectedEdge
	for e := p.edgeTo[v]; e != nil; e = p.edgeTo[e.From()] {
		path = append(path, e)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func (p *BellmanFordPaths) validate(v int) error {
	if v < 0 || v >= len(p.distTo) {
		return graph.ErrVertexOutOfRange
	}

	return nil
}
