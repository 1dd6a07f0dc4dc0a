package shortestpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/arprax/algos/graph"
)

// ShortestPaths holds the result of a Dijkstra run: the minimum distance
// from the source to every vertex and the last edge on each shortest path.
// Query methods are pure; repeated calls return identical results.
type ShortestPaths struct {
	distTo []float64
	edgeTo []*graph.DirectedEdge
}

// Dijkstra computes shortest paths from source s over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. s must be in [0, V) (graph.ErrVertexOutOfRange).
//  3. No edge may have negative weight (ErrNegativeWeight, naming the
//     offending edge); checked eagerly before any relaxation.
//
// The main loop pops the closest unsettled vertex from a min-heap and
// relaxes its outgoing edges. Improvements push duplicate entries rather
// than re-keying existing ones; a popped entry whose recorded distance
// exceeds the current best is stale and skipped. Each vertex's best
// distance only decreases and the heap holds at most one entry per
// relaxation, so the loop terminates after O(E) pops.
func Dijkstra(g *graph.EdgeWeightedDigraph, s int) (*ShortestPaths, error) {
	// 1-2. Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := g.Adj(s); err != nil {
		return nil, err
	}
	// 3. Fail fast on any negative weight.
	for _, e := range g.Edges() {
		if e.Weight() < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeWeight, e)
		}
	}

	sp := &ShortestPaths{
		distTo: make([]float64, g.V()),
		edgeTo: make([]*graph.DirectedEdge, g.V()),
	}
	for v := range sp.distTo {
		sp.distTo[v] = math.Inf(1)
	}
	sp.distTo[s] = 0

	pq := &distPQ{{dist: 0, v: s}}
	heap.Init(pq)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		// Lazy deletion: skip entries superseded by a later improvement.
		if item.dist > sp.distTo[item.v] {
			continue
		}
		adj, err := g.Adj(item.v)
		if err != nil {
			return nil, err
		}
		for _, e := range adj {
			sp.relax(e, pq)
		}
	}

	return sp, nil
}

// relax updates the tentative distance to e.To() if the path through e is
// an improvement, and pushes the new distance onto the heap.
func (sp *ShortestPaths) relax(e *graph.DirectedEdge, pq *distPQ) {
	v, w := e.From(), e.To()
	if sp.distTo[w] > sp.distTo[v]+e.Weight() {
		sp.distTo[w] = sp.distTo[v] + e.Weight()
		sp.edgeTo[w] = e
		heap.Push(pq, distItem{dist: sp.distTo[w], v: w})
	}
}

// DistTo returns the length of the shortest path from the source to v,
// or +Inf when v is unreachable.
func (sp *ShortestPaths) DistTo(v int) (float64, error) {
	if err := sp.validate(v); err != nil {
		return 0, err
	}

	return sp.distTo[v], nil
}

// HasPathTo reports whether v is reachable from the source.
func (sp *ShortestPaths) HasPathTo(v int) (bool, error) {
	if err := sp.validate(v); err != nil {
		return false, err
	}

	return !math.IsInf(sp.distTo[v], 1), nil
}

// PathTo returns the edges of a shortest path from the source to v in
// travel order. Returns nil (with nil error) when v is unreachable.
func (sp *ShortestPaths) PathTo(v int) ([]*graph.DirectedEdge, error) {
	if err := sp.validate(v); err != nil {
		return nil, err
	}
	if math.IsInf(sp.distTo[v], 1) {
		return nil, nil
	}

	var path []*graph.DirectedEdge
	for e := sp.edgeTo[v]; e != nil; e = sp.edgeTo[e.From()] {
		path = append(path, e)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func (sp *ShortestPaths) validate(v int) error {
	if v < 0 || v >= len(sp.distTo) {
		return graph.ErrVertexOutOfRange
	}

	return nil
}

// distItem pairs a vertex with the distance recorded when it was pushed.
type distItem struct {
	dist float64
	v    int
}

// distPQ implements heap.Interface for a min-heap of distItems by distance.
type distPQ []distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }

func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
