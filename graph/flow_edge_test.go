package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arprax/algos/graph"
)

// TestFlowEdge_Residuals verifies forward residual = capacity-flow and
// backward residual = flow, through a push/cancel sequence.
func TestFlowEdge_Residuals(t *testing.T) {
	e, err := graph.NewFlowEdge(0, 1, 10)
	require.NoError(t, err)

	fwd, err := e.ResidualCapacityTo(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, fwd)

	back, err := e.ResidualCapacityTo(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, back)

	// Push 4 forward.
	require.NoError(t, e.AddResidualFlowTo(1, 4))
	assert.Equal(t, 4.0, e.Flow())
	fwd, _ = e.ResidualCapacityTo(1)
	back, _ = e.ResidualCapacityTo(0)
	assert.Equal(t, 6.0, fwd)
	assert.Equal(t, 4.0, back)

	// Cancel 3 backward.
	require.NoError(t, e.AddResidualFlowTo(0, 3))
	assert.Equal(t, 1.0, e.Flow())
}

// TestFlowEdge_Bounds verifies flow can never leave [0, capacity] and that
// a rejected update leaves the edge unchanged.
func TestFlowEdge_Bounds(t *testing.T) {
	e, err := graph.NewFlowEdge(0, 1, 5)
	require.NoError(t, err)
	require.NoError(t, e.AddResidualFlowTo(1, 5))

	// Overflow forward.
	err = e.AddResidualFlowTo(1, 1)
	require.ErrorIs(t, err, graph.ErrFlowBounds)
	assert.Equal(t, 5.0, e.Flow())

	// Underflow backward.
	err = e.AddResidualFlowTo(0, 6)
	require.ErrorIs(t, err, graph.ErrFlowBounds)
	assert.Equal(t, 5.0, e.Flow())
}

// TestFlowEdge_Validation covers negative capacity and illegal endpoints.
func TestFlowEdge_Validation(t *testing.T) {
	_, err := graph.NewFlowEdge(0, 1, -1)
	require.ErrorIs(t, err, graph.ErrNegativeCapacity)

	e, err := graph.NewFlowEdge(0, 1, 3)
	require.NoError(t, err)

	_, err = e.ResidualCapacityTo(9)
	require.ErrorIs(t, err, graph.ErrIllegalEndpoint)
	require.ErrorIs(t, e.AddResidualFlowTo(9, 1), graph.ErrIllegalEndpoint)

	w, err := e.Other(0)
	require.NoError(t, err)
	assert.Equal(t, 1, w)
}

// TestFlowNetwork_SharedEdges verifies a FlowEdge is visible from both
// endpoints and a flow push through one side is seen from the other.
func TestFlowNetwork_SharedEdges(t *testing.T) {
	n, err := graph.NewFlowNetwork(2)
	require.NoError(t, err)

	e, err := graph.NewFlowEdge(0, 1, 8)
	require.NoError(t, err)
	require.NoError(t, n.AddEdge(e))

	adj0, err := n.Adj(0)
	require.NoError(t, err)
	adj1, err := n.Adj(1)
	require.NoError(t, err)
	require.Len(t, adj0, 1)
	require.Len(t, adj1, 1)
	assert.Same(t, adj0[0], adj1[0])

	require.NoError(t, adj0[0].AddResidualFlowTo(1, 8))
	back, err := adj1[0].ResidualCapacityTo(0)
	require.NoError(t, err)
	assert.Equal(t, 8.0, back)

	assert.Len(t, n.Edges(), 1)
}
