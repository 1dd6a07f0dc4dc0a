// This file defines the shared result type and sentinel errors for the
// two spanning-tree algorithms.

package mst

import (
	"errors"

	"github.com/arprax/algos/graph"
)

// ErrGraphNil is returned when a nil graph is passed to Kruskal or LazyPrim.
var ErrGraphNil = errors.New("mst: graph is nil")

// MST is the result of a spanning-tree computation: the selected edges and
// their total weight. Query methods are pure.
type MST struct {
	edges  []*graph.Edge
	weight float64
}

// Edges returns the selected edges in the order they were added.
// The returned slice is a read-only view; callers must not modify it.
func (m *MST) Edges() []*graph.Edge { return m.edges }

// Weight returns the sum of the selected edges' weights.
func (m *MST) Weight() float64 { return m.weight }
