// Package rebalancing adjusts position quantities by solving linear programs
// that conserve total portfolio market value.
package rebalancing

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/aristath/rebalance/internal/domain"
	"github.com/aristath/rebalance/internal/modules/optimization"
)

// Service runs a rebalancing objective end to end: it formulates the LP,
// hands it to the solver, and writes the rounded optimal quantities back
// onto the equities it was given, preserving input order.
type Service struct {
	solver optimization.Solver
	log    zerolog.Logger
}

// NewService creates a new rebalancing service. A nil solver defaults to
// gonum's simplex implementation.
func NewService(solver optimization.Solver, log zerolog.Logger) *Service {
	if solver == nil {
		solver = optimization.SimplexSolver{}
	}
	return &Service{solver: solver, log: log}
}

// OptimizeForSharpe adjusts quantities to maximize the portfolio's
// approximate Sharpe ratio while keeping total market value unchanged.
// Quantities are mutated in place and the same slice is returned; on error
// the portfolio is untouched.
func (s *Service) OptimizeForSharpe(equities []domain.Equity, market domain.MarketParams) ([]domain.Equity, error) {
	if err := domain.ValidatePortfolio(equities, true); err != nil {
		return nil, err
	}
	c, err := optimization.SharpeObjective(equities, market)
	if err != nil {
		return nil, err
	}
	return s.solve("max_sharpe", equities, c)
}

// OptimizeForMinBeta adjusts quantities to minimize the portfolio's beta
// while keeping total market value unchanged. Equity returns are not needed.
func (s *Service) OptimizeForMinBeta(equities []domain.Equity) ([]domain.Equity, error) {
	if err := domain.ValidatePortfolio(equities, false); err != nil {
		return nil, err
	}
	return s.solve("min_beta", equities, optimization.MinBetaObjective(equities))
}

func (s *Service) solve(objective string, equities []domain.Equity, c []float64) ([]domain.Equity, error) {
	degenerate := true
	for _, e := range equities {
		if e.AvgPrice != 0 {
			degenerate = false
			break
		}
	}
	if degenerate {
		return nil, &domain.DomainError{
			Message: "budget constraint is degenerate, every average price is zero",
		}
	}

	aEq, bEq := optimization.BudgetConstraint(equities)
	s.log.Debug().
		Str("objective", objective).
		Int("equities", len(equities)).
		Float64("budget", bEq[0]).
		Msg("solving rebalancing LP")

	x, err := s.solver.Solve(optimization.Problem{C: c, AEq: aEq, BEq: bEq})
	if err != nil {
		s.log.Warn().Err(err).Str("objective", objective).Msg("rebalancing LP failed")
		return nil, &domain.OptimizationError{Message: "solver could not rebalance portfolio", Err: err}
	}

	// Quantities are written only after a successful solve, so a failed
	// optimization never leaves a partially updated portfolio. Per-equity
	// rounding may drift total value by up to half the average price of each
	// position; no redistribution is applied.
	for i := range equities {
		equities[i].Qty = math.Round(x[i])
	}
	return equities, nil
}
