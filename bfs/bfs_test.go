package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arprax/algos/bfs"
	"github.com/arprax/algos/graph"
)

// buildLadder constructs a 6-vertex graph:
//
//	0-1-2-3 in a chain, chord 0-3, isolated pair 4-5.
//
// The chord makes the shortest 0→3 distance 1, while DFS could find 3 hops.
func buildLadder(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(6)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(4, 5))

	return g
}

// TestPaths_ShortestDistances verifies level-order distances, including the
// chord shortcut and the unreachable component.
func TestPaths_ShortestDistances(t *testing.T) {
	p, err := bfs.Paths(buildLadder(t), 0)
	require.NoError(t, err)

	want := map[int]int{0: 0, 1: 1, 2: 2, 3: 1, 4: -1, 5: -1}
	for v, d := range want {
		got, derr := p.DistTo(v)
		require.NoError(t, derr)
		assert.Equal(t, d, got, "dist to %d", v)
	}
}

// TestPaths_ShortestPath verifies the reconstructed path takes the chord.
func TestPaths_ShortestPath(t *testing.T) {
	p, err := bfs.Paths(buildLadder(t), 0)
	require.NoError(t, err)

	path, err := p.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, path)

	path, err = p.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	// Unreachable target yields nil without error.
	none, err := p.PathTo(4)
	require.NoError(t, err)
	assert.Nil(t, none)

	ok, err := p.HasPathTo(5)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestPaths_Validation verifies nil-graph and out-of-range failures.
func TestPaths_Validation(t *testing.T) {
	_, err := bfs.Paths(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g, err := graph.NewGraph(1)
	require.NoError(t, err)
	_, err = bfs.Paths(g, 1)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	p, err := bfs.Paths(g, 0)
	require.NoError(t, err)
	_, err = p.DistTo(7)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

// TestPaths_SourceOnly covers the single-vertex case.
func TestPaths_SourceOnly(t *testing.T) {
	g, err := graph.NewGraph(1)
	require.NoError(t, err)
	p, err := bfs.Paths(g, 0)
	require.NoError(t, err)

	d, err := p.DistTo(0)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	path, err := p.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}
