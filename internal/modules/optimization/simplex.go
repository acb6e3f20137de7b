package optimization

import "gonum.org/v1/gonum/optimize/convex/lp"

// SimplexSolver solves problems with gonum's simplex implementation. The
// zero value is ready to use; a zero Tol means the solver default.
type SimplexSolver struct {
	Tol float64
}

// Solve runs lp.Simplex on the problem. Infeasible and unbounded problems
// surface as lp.ErrInfeasible and lp.ErrUnbounded.
func (s SimplexSolver) Solve(p Problem) ([]float64, error) {
	_, x, err := lp.Simplex(p.C, p.AEq, p.BEq, s.Tol, nil)
	if err != nil {
		return nil, err
	}
	return x, nil
}
