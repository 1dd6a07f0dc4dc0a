package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arprax/algos/simplex"
)

// TestBrewersProblem solves the classic textbook LP
//
//	max 13x + 23y
//	s.t. 5x + 15y ≤ 480, 4x + 4y ≤ 160, 35x + 20y ≤ 1190
//
// whose optimum is 800 at (12, 28).
func TestBrewersProblem(t *testing.T) {
	a := [][]float64{
		{5, 15},
		{4, 4},
		{35, 20},
	}
	b := []float64{480, 160, 1190}
	c := []float64{13, 23}

	s, err := simplex.New(a, b, c)
	require.NoError(t, err)

	assert.InDelta(t, 800.0, s.Value(), 1e-5)
	x := s.Primal()
	require.Len(t, x, 2)
	assert.InDelta(t, 12.0, x[0], 1e-5)
	assert.InDelta(t, 28.0, x[1], 1e-5)
}

// TestPrimalSatisfiesConstraints verifies the returned point is feasible
// and achieves the reported objective value.
func TestPrimalSatisfiesConstraints(t *testing.T) {
	a := [][]float64{
		{1, 1, 0},
		{0, 1, 2},
		{3, 0, 1},
	}
	b := []float64{10, 8, 15}
	c := []float64{2, 3, 1}

	s, err := simplex.New(a, b, c)
	require.NoError(t, err)

	x := s.Primal()
	require.Len(t, x, 3)
	var objective float64
	for j, xj := range x {
		assert.GreaterOrEqual(t, xj, -1e-10)
		objective += c[j] * xj
	}
	for i, row := range a {
		var lhs float64
		for j, aij := range row {
			lhs += aij * x[j]
		}
		assert.LessOrEqual(t, lhs, b[i]+1e-9, "constraint %d violated", i)
	}
	assert.InDelta(t, s.Value(), objective, 1e-9)
}

// TestUnbounded verifies an objective with no finite maximum is rejected.
func TestUnbounded(t *testing.T) {
	// Single constraint -x ≤ 1 leaves x free to grow forever.
	a := [][]float64{{-1}}
	b := []float64{1}
	c := []float64{1}

	_, err := simplex.New(a, b, c)
	require.ErrorIs(t, err, simplex.ErrUnbounded)
}

// TestInfeasibleStart verifies negative right-hand sides are rejected
// (single-phase method only).
func TestInfeasibleStart(t *testing.T) {
	a := [][]float64{{1}}
	b := []float64{-5}
	c := []float64{1}

	_, err := simplex.New(a, b, c)
	require.ErrorIs(t, err, simplex.ErrInfeasible)
}

// TestDimensionMismatch covers ragged and misshapen input.
func TestDimensionMismatch(t *testing.T) {
	_, err := simplex.New([][]float64{{1, 2}}, []float64{1, 2}, []float64{1, 1})
	require.ErrorIs(t, err, simplex.ErrDimensionMismatch)

	_, err = simplex.New([][]float64{{1, 2}, {1}}, []float64{1, 2}, []float64{1, 1})
	require.ErrorIs(t, err, simplex.ErrDimensionMismatch)
}

// TestPrimal_NonBasicStaysZero verifies a variable that never entered the
// basis is reported as zero, even when the two variable columns are
// interchangeable: the returned point must stay feasible and achieve the
// reported objective value rather than doubling it.
func TestPrimal_NonBasicStaysZero(t *testing.T) {
	// Both variables share the single constraint x0 + x1 ≤ 4; exactly one
	// of them can be basic at the optimum.
	s, err := simplex.New([][]float64{{1, 1}}, []float64{4}, []float64{1, 1})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, s.Value(), 1e-9)
	x := s.Primal()
	require.Len(t, x, 2)
	assert.LessOrEqual(t, x[0]+x[1], 4.0+1e-9)
	var objective float64
	for j := range x {
		assert.GreaterOrEqual(t, x[j], 0.0)
		objective += x[j]
	}
	assert.InDelta(t, s.Value(), objective, 1e-9)
}

// TestZeroObjective verifies an all-zero objective is already optimal at
// the origin.
func TestZeroObjective(t *testing.T) {
	s, err := simplex.New([][]float64{{1}}, []float64{4}, []float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s.Value(), 1e-12)
	assert.InDelta(t, 0.0, s.Primal()[0], 1e-12)
}

// TestDegenerate_BlandTerminates verifies a program with a zero
// right-hand side still terminates and reaches the optimum.
func TestDegenerate_BlandTerminates(t *testing.T) {
	// x1 ≤ x0 and x0 ≤ 2, so the optimum sits at (2, 2).
	a := [][]float64{
		{-1, 1},
		{1, 0},
	}
	b := []float64{0, 2}
	c := []float64{1, 1}

	s, err := simplex.New(a, b, c)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, s.Value(), 1e-9)
}

// TestQueriesIdempotent verifies repeated queries on a solved program
// return identical results.
func TestQueriesIdempotent(t *testing.T) {
	s, err := simplex.New([][]float64{{2, 1}, {1, 3}}, []float64{10, 15}, []float64{3, 2})
	require.NoError(t, err)

	v := s.Value()
	x := s.Primal()
	for i := 0; i < 3; i++ {
		assert.Equal(t, v, s.Value())
		assert.Equal(t, x, s.Primal())
	}
}
