package simplex

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible indicates some b[i] < 0: the all-slack basic solution is
	// infeasible and this single-phase implementation cannot start.
	ErrInfeasible = errors.New("simplex: initial basic solution infeasible (requires b >= 0)")

	// ErrUnbounded indicates the objective can grow without limit: some
	// column has positive reduced cost but no positive pivot entry.
	ErrUnbounded = errors.New("simplex: linear program is unbounded")

	// ErrDimensionMismatch indicates the constraint matrix is ragged or its
	// shape disagrees with the b and c vectors.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")
)

// epsilon bounds every "positive"/"zero" comparison on tableau entries.
const epsilon = 1e-10

// Simplex holds the solved tableau of one linear program. Query methods are
// pure; repeated calls return identical results.
type Simplex struct {
	m, n    int // constraints, original variables
	tableau [][]float64
	basis   []int // basis[i] = column of the variable basic in row i
}

// New solves max c·x subject to Ax ≤ b, x ≥ 0 and returns the solved
// program. a must be an m×n matrix matching len(b) == m and len(c) == n
// (ErrDimensionMismatch otherwise), with every b[i] ≥ 0 (ErrInfeasible).
// Fails with ErrUnbounded when the objective has no finite maximum.
func New(a [][]float64, b, c []float64) (*Simplex, error) {
	m, n := len(b), len(c)
	if len(a) != m {
		return nil, fmt.Errorf("%w: %d constraint rows for %d bounds", ErrDimensionMismatch, len(a), m)
	}
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
	}
	for _, val := range b {
		if val < 0 {
			return nil, ErrInfeasible
		}
	}

	// Tableau layout: columns [0,n) original variables, [n,n+m) slack
	// variables, column n+m the right-hand side; row m is the objective.
	// The slack variables form the initial basis.
	s := &Simplex{m: m, n: n, tableau: make([][]float64, m+1), basis: make([]int, m)}
	for i := range s.tableau {
		s.tableau[i] = make([]float64, n+m+1)
	}
	for i := 0; i < m; i++ {
		copy(s.tableau[i], a[i])
		s.tableau[i][n+i] = 1
		s.tableau[i][n+m] = b[i]
		s.basis[i] = n + i
	}
	copy(s.tableau[m], c)

	if err := s.solve(); err != nil {
		return nil, err
	}

	return s, nil
}

// solve pivots until no entering column remains.
func (s *Simplex) solve() error {
	for {
		q := s.blandEnteringColumn()
		if q == -1 {
			return nil // optimal
		}
		p := s.minRatioRow(q)
		if p == -1 {
			return ErrUnbounded
		}
		s.pivot(p, q)
	}
}

// blandEnteringColumn returns the smallest-index column with positive
// reduced cost, or -1 when the tableau is optimal. Always taking the
// smallest index is Bland's anti-cycling rule.
func (s *Simplex) blandEnteringColumn() int {
	for j := 0; j < s.n+s.m; j++ {
		if s.tableau[s.m][j] > epsilon {
			return j
		}
	}

	return -1
}

// minRatioRow returns the row minimizing rhs/pivot among rows with a
// positive entry in column q, or -1 when no row qualifies (unbounded).
func (s *Simplex) minRatioRow(q int) int {
	p := -1
	for i := 0; i < s.m; i++ {
		if s.tableau[i][q] <= epsilon {
			continue
		}
		if p == -1 || s.tableau[i][s.n+s.m]/s.tableau[i][q] < s.tableau[p][s.n+s.m]/s.tableau[p][q] {
			p = i
		}
	}

	return p
}

// pivot performs Gauss-Jordan elimination around entry (p, q): the pivot
// row is scaled to make the entry 1, then cleared from every other row.
// Column q enters the basis in place of whatever was basic in row p.
func (s *Simplex) pivot(p, q int) {
	pivotVal := s.tableau[p][q]
	for j := 0; j <= s.n+s.m; j++ {
		s.tableau[p][j] /= pivotVal
	}
	for i := 0; i <= s.m; i++ {
		if i == p {
			continue
		}
		factor := s.tableau[i][q]
		for j := 0; j <= s.n+s.m; j++ {
			s.tableau[i][j] -= factor * s.tableau[p][j]
		}
	}
	s.basis[p] = q
}

// Value returns the maximum value of the objective function, read from the
// negated corner cell of the objective row.
func (s *Simplex) Value() float64 {
	return -s.tableau[s.m][s.n+s.m]
}

// Primal returns the optimal assignment x. Each original variable in the
// basis takes the right-hand side of its row; every non-basic variable is
// zero. The basis is tracked exactly through the pivots, so a variable
// column that merely resembles a unit column is never mistaken for basic.
func (s *Simplex) Primal() []float64 {
	x := make([]float64, s.n)
	for i, j := range s.basis {
		if j < s.n {
			x[j] = s.tableau[i][s.n+s.m]
		}
	}

	return x
}
