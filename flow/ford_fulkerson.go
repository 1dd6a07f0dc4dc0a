package flow

import (
	"math"

	"github.com/arprax/algos/graph"
)

// MaxFlow holds the result of a FordFulkerson run: the total flow value and
// the residual-graph reachability that defines the minimum cut. The flow
// itself lives on the network's FlowEdges, mutated in place during the run.
type MaxFlow struct {
	value  float64
	marked []bool // marked[v] == true iff v is residual-reachable from source
	edgeTo []*graph.FlowEdge
}

// FordFulkerson computes the maximum flow from s to t in n, using BFS to
// select each shortest augmenting path (the Edmonds-Karp variant).
//
// Validation: ErrNetworkNil for a nil network, graph.ErrVertexOutOfRange
// for s or t outside [0, V), ErrSameSourceSink when s == t.
//
// Each iteration finds an augmenting path in the residual graph, computes
// its bottleneck (the minimum residual capacity along it), then pushes that
// amount across every path edge, increasing flow on forward edges and
// canceling it on backward ones. The loop ends when no augmenting path
// remains; the last BFS's marked set doubles as the min-cut source
// partition.
//
// Pass WithCancelContext(ctx) to abort between augmentations; the partial
// flow pushed so far stays on the network's edges.
func FordFulkerson(n *graph.FlowNetwork, s, t int, options ...Option) (*MaxFlow, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	if _, err := n.Adj(s); err != nil {
		return nil, err
	}
	if _, err := n.Adj(t); err != nil {
		return nil, err
	}
	if s == t {
		return nil, ErrSameSourceSink
	}
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	mf := &MaxFlow{}
	for {
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}

		found, err := mf.hasAugmentingPath(n, s, t)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}

		// Bottleneck: the minimum residual capacity along the path.
		bottle := math.Inf(1)
		for v := t; v != s; {
			e := mf.edgeTo[v]
			rc, rerr := e.ResidualCapacityTo(v)
			if rerr != nil {
				return nil, rerr
			}
			bottle = math.Min(bottle, rc)
			if v, err = e.Other(v); err != nil {
				return nil, err
			}
		}

		// Push the bottleneck across every edge of the path.
		for v := t; v != s; {
			e := mf.edgeTo[v]
			if err = e.AddResidualFlowTo(v, bottle); err != nil {
				return nil, err
			}
			if v, err = e.Other(v); err != nil {
				return nil, err
			}
		}

		mf.value += bottle
	}

	return mf, nil
}

// hasAugmentingPath runs a BFS over residual capacities, rebuilding the
// marked and edgeTo arrays, and reports whether t was reached. Using BFS
// here is what makes every augmenting path a shortest one.
func (mf *MaxFlow) hasAugmentingPath(n *graph.FlowNetwork, s, t int) (bool, error) {
	mf.marked = make([]bool, n.V())
	mf.edgeTo = make([]*graph.FlowEdge, n.V())

	queue := []int{s}
	mf.marked[s] = true
	for len(queue) > 0 && !mf.marked[t] {
		v := queue[0]
		queue = queue[1:]
		adj, err := n.Adj(v)
		if err != nil {
			return false, err
		}
		for _, e := range adj {
			w, werr := e.Other(v)
			if werr != nil {
				return false, werr
			}
			rc, rerr := e.ResidualCapacityTo(w)
			if rerr != nil {
				return false, rerr
			}
			if rc > 0 && !mf.marked[w] {
				mf.edgeTo[w] = e
				mf.marked[w] = true
				queue = append(queue, w)
			}
		}
	}

	return mf.marked[t], nil
}

// Value returns the value of the maximum flow.
func (mf *MaxFlow) Value() float64 { return mf.value }

// InCut reports whether v lies on the source side of the minimum cut,
// i.e. whether v is reachable from the source in the final residual graph.
// The capacities of edges crossing from in-cut to out-of-cut vertices sum
// to Value.
func (mf *MaxFlow) InCut(v int) (bool, error) {
	if v < 0 || v >= len(mf.marked) {
		return false, graph.ErrVertexOutOfRange
	}

	return mf.marked[v], nil
}
