// Package simplex solves linear programs in standard form,
//
//	maximize c·x subject to Ax ≤ b, x ≥ 0,
//
// with the tableau simplex method. The solver builds an (m+1)×(n+m+1)
// tableau of the m constraints plus slack variables and the objective row,
// then pivots until no column has positive reduced cost.
//
// The entering column is chosen by Bland's rule (the smallest index with
// positive reduced cost), which is what guarantees termination: on
// degenerate problems the cheaper "most positive coefficient" rule can
// cycle forever. The leaving row comes from the minimum-ratio test; if no
// row qualifies, the program is unbounded and New fails with ErrUnbounded.
//
// All sign comparisons use a small epsilon (1e-10) to tolerate the
// floating-point noise the Gauss-Jordan pivots accumulate.
//
// This is the single-phase method: it requires b ≥ 0 so the all-slack basis
// is feasible, and rejects inputs with negative b (ErrInfeasible) rather
// than running a phase-one search for a feasible starting basis.
package simplex
