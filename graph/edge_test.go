package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arprax/algos/graph"
)

// TestEdge_Endpoints verifies Either/Other round-trips and the illegal
// endpoint failure.
func TestEdge_Endpoints(t *testing.T) {
	e := graph.NewEdge(2, 5, 0.75)

	v := e.Either()
	assert.Equal(t, 2, v)

	w, err := e.Other(v)
	require.NoError(t, err)
	assert.Equal(t, 5, w)

	back, err := e.Other(w)
	require.NoError(t, err)
	assert.Equal(t, 2, back)

	_, err = e.Other(7)
	require.ErrorIs(t, err, graph.ErrIllegalEndpoint)

	assert.Equal(t, 0.75, e.Weight())
	assert.Equal(t, "2-5 0.75", e.String())
}

// TestEdge_Less verifies weight ordering used by Kruskal's sort.
func TestEdge_Less(t *testing.T) {
	light := graph.NewEdge(0, 1, 0.3)
	heavy := graph.NewEdge(1, 2, 0.9)

	assert.True(t, light.Less(heavy))
	assert.False(t, heavy.Less(light))
	assert.False(t, light.Less(light))
}

// TestEdgeWeightedGraph_SharedEdges verifies that both endpoints' adjacency
// lists reference the same *Edge object.
func TestEdgeWeightedGraph_SharedEdges(t *testing.T) {
	g, err := graph.NewEdgeWeightedGraph(3)
	require.NoError(t, err)

	e := graph.NewEdge(0, 1, 1.5)
	require.NoError(t, g.AddEdge(e))

	adj0, err := g.Adj(0)
	require.NoError(t, err)
	adj1, err := g.Adj(1)
	require.NoError(t, err)
	require.Len(t, adj0, 1)
	require.Len(t, adj1, 1)
	assert.Same(t, adj0[0], adj1[0])
}

// TestEdgeWeightedGraph_Edges verifies each edge is enumerated exactly once,
// including self-loops and parallel edges.
func TestEdgeWeightedGraph_Edges(t *testing.T) {
	g, err := graph.NewEdgeWeightedGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(graph.NewEdge(0, 1, 1)))
	require.NoError(t, g.AddEdge(graph.NewEdge(0, 1, 2))) // parallel
	require.NoError(t, g.AddEdge(graph.NewEdge(1, 2, 3)))
	require.NoError(t, g.AddEdge(graph.NewEdge(2, 2, 4))) // self-loop

	assert.Equal(t, 4, g.E())
	assert.Len(t, g.Edges(), 4)
}

// TestEdgeWeightedGraph_Validation verifies endpoint bounds and nil edges.
func TestEdgeWeightedGraph_Validation(t *testing.T) {
	g, err := graph.NewEdgeWeightedGraph(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(nil), graph.ErrNilEdge)
	require.ErrorIs(t, g.AddEdge(graph.NewEdge(0, 2, 1)), graph.ErrVertexOutOfRange)
	assert.Equal(t, 0, g.E())

	_, err = graph.NewEdgeWeightedGraph(-1)
	require.ErrorIs(t, err, graph.ErrNegativeVertices)
}

// TestEdgeWeightedDigraph verifies directed adjacency and edge enumeration.
func TestEdgeWeightedDigraph(t *testing.T) {
	g, err := graph.NewEdgeWeightedDigraph(3)
	require.NoError(t, err)

	e := graph.NewDirectedEdge(0, 1, 2.5)
	assert.Equal(t, 0, e.From())
	assert.Equal(t, 1, e.To())
	assert.Equal(t, "0->1 2.50", e.String())

	require.NoError(t, g.AddEdge(e))
	require.NoError(t, g.AddEdge(graph.NewDirectedEdge(1, 2, 1)))

	adj0, err := g.Adj(0)
	require.NoError(t, err)
	require.Len(t, adj0, 1)
	assert.Same(t, e, adj0[0])

	// Head vertex carries no adjacency for a directed edge.
	adj1, err := g.Adj(1)
	require.NoError(t, err)
	require.Len(t, adj1, 1)
	assert.Equal(t, 2, adj1[0].To())

	assert.Len(t, g.Edges(), 2)
	require.ErrorIs(t, g.AddEdge(graph.NewDirectedEdge(0, 9, 1)), graph.ErrVertexOutOfRange)
}
