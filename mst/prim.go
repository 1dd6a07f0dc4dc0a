package mst

import (
	"container/heap"

	"github.com/arprax/algos/graph"
)

// LazyPrim computes a minimum spanning tree of g by growing a single tree
// outward from vertex 0.
//
// Steps:
//  1. Visit vertex 0: mark it and push every edge toward an unmarked
//     neighbor onto a min-heap keyed by weight.
//  2. Pop the lightest edge. If both endpoints are already marked the edge
//     is obsolete and is discarded (the lazy deferred-cleanup policy; obsolete
//     entries are left in the heap rather than removed on invalidation).
//  3. Otherwise accept the edge and visit its unmarked endpoint.
//  4. Repeat until the heap drains.
//
// Disconnected graphs: only the component containing vertex 0 is explored,
// and the result is that component's MST rather than a spanning forest.
// Callers needing forest semantics must rerun from each unvisited vertex,
// or use Kruskal, which covers every component.
//
// Complexity: O(E log E) time, O(E) memory.
func LazyPrim(g *graph.EdgeWeightedGraph) (*MST, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	p := &lazyPrim{
		graph:  g,
		marked: make([]bool, g.V()),
		result: &MST{},
	}
	heap.Init(&p.pq)

	// 1. Seed the heap from vertex 0 (empty graphs have nothing to grow).
	if g.V() > 0 {
		if err := p.visit(0); err != nil {
			return nil, err
		}
	}

	// 2-4. Drain the heap, discarding obsolete edges.
	for p.pq.Len() > 0 {
		e := heap.Pop(&p.pq).(*graph.Edge)
		v := e.Either()
		w, err := e.Other(v)
		if err != nil {
			return nil, err
		}
		if p.marked[v] && p.marked[w] {
			continue
		}
		p.result.edges = append(p.result.edges, e)
		p.result.weight += e.Weight()
		if !p.marked[v] {
			if err = p.visit(v); err != nil {
				return nil, err
			}
		}
		if !p.marked[w] {
			if err = p.visit(w); err != nil {
				return nil, err
			}
		}
	}

	return p.result, nil
}

// lazyPrim bundles the mutable state of one LazyPrim run.
type lazyPrim struct {
	graph  *graph.EdgeWeightedGraph
	marked []bool
	pq     edgePQ
	result *MST
}

// visit marks v and pushes every edge from v to a still-unmarked neighbor.
func (p *lazyPrim) visit(v int) error {
	p.marked[v] = true
	adj, err := p.graph.Adj(v)
	if err != nil {
		return err
	}
	for _, e := range adj {
		w, werr := e.Other(v)
		if werr != nil {
			return werr
		}
		if !p.marked[w] {
			heap.Push(&p.pq, e)
		}
	}

	return nil
}

// edgePQ implements heap.Interface for a min-heap of *graph.Edge by weight.
type edgePQ []*graph.Edge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].Less(pq[j]) }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*graph.Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
