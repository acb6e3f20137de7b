// Package optimization builds and solves the linear programs behind
// portfolio rebalancing.
package optimization

import "gonum.org/v1/gonum/mat"

// Problem is a linear program in standard form: minimize C·x subject to
// AEq·x = BEq with every variable bounded to [0, +inf).
type Problem struct {
	C   []float64
	AEq *mat.Dense
	BEq []float64
}

// Solver solves a standard-form linear program. Implementations report
// infeasible and unbounded problems through the returned error.
type Solver interface {
	Solve(p Problem) ([]float64, error)
}
