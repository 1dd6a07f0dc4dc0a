package dsu

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates New was called with a negative element count.
var ErrNegativeSize = errors.New("dsu: element count must be non-negative")

// ErrIndexOutOfRange indicates an element index outside [0, n).
var ErrIndexOutOfRange = errors.New("dsu: index out of range")

// DisjointSet maintains a partition of the elements 0..n-1 into disjoint
// sets. The parent forest is flattened on every Find (path compression) and
// merged by subtree size on Union.
//
// Invariant: parent chains always terminate at a root (parent[r] == r), and
// size[r] is the subtree size for every root r.
type DisjointSet struct {
	parent []int // parent[i] = parent of i; roots point at themselves
	size   []int // size[r] = elements in the tree rooted at r (valid at roots only)
	count  int   // number of distinct sets
}

// New creates a disjoint-set structure over n singleton sets {0}..{n-1}.
// Returns ErrNegativeSize if n < 0.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the canonical root of the set containing p.
// Every node on the walked path is re-pointed directly at the root.
// Returns ErrIndexOutOfRange if p is not in [0, n).
func (d *DisjointSet) Find(p int) (int, error) {
	if err := d.validate(p); err != nil {
		return 0, err
	}

	// 1. Walk to the root.
	root := p
	for root != d.parent[root] {
		root = d.parent[root]
	}
	// 2. Compress: point every visited node at the root.
	for p != root {
		next := d.parent[p]
		d.parent[p] = root
		p = next
	}

	return root, nil
}

// Connected reports whether p and q belong to the same set.
func (d *DisjointSet) Connected(p, q int) (bool, error) {
	rootP, err := d.Find(p)
	if err != nil {
		return false, err
	}
	rootQ, err := d.Find(q)
	if err != nil {
		return false, err
	}

	return rootP == rootQ, nil
}

// Union merges the sets containing p and q. A no-op when they already share
// a root; otherwise the smaller tree is attached under the larger (ties
// attach q's root under p's) and Count decreases by one.
func (d *DisjointSet) Union(p, q int) error {
	rootP, err := d.Find(p)
	if err != nil {
		return err
	}
	rootQ, err := d.Find(q)
	if err != nil {
		return err
	}
	if rootP == rootQ {
		return nil
	}

	// Attach the smaller tree under the larger to bound tree height.
	if d.size[rootP] < d.size[rootQ] {
		d.parent[rootP] = rootQ
		d.size[rootQ] += d.size[rootP]
	} else {
		d.parent[rootQ] = rootP
		d.size[rootP] += d.size[rootQ]
	}
	d.count--

	return nil
}

func (d *DisjointSet) validate(p int) error {
	if p < 0 || p >= len(d.parent) {
		return fmt.Errorf("%w: index %d is not between 0 and %d", ErrIndexOutOfRange, p, len(d.parent)-1)
	}

	return nil
}
