package optimization

import (
	"fmt"
	"math"

	"github.com/aristath/rebalance/internal/domain"
	"github.com/aristath/rebalance/pkg/formulas"
)

// SharpeObjective returns the minimization coefficients that approximate
// Sharpe-ratio maximization: each equity's excess-return-to-beta ratio,
// negated so that the solver's minimum is the portfolio's maximum.
//
// The linear proxy is intentional. The true Sharpe ratio is not linear in
// weights; treating each equity's standalone ratio as its marginal
// contribution is the trade-off that keeps the problem an LP.
//
// Every equity must carry a Return value; callers validate with
// domain.ValidatePortfolio first.
func SharpeObjective(equities []domain.Equity, market domain.MarketParams) ([]float64, error) {
	if market.ExcessReturn() == 0 {
		return nil, &domain.DomainError{
			Message: "benchmark return equals risk-free rate, excess-return ratio is undefined",
		}
	}

	c := make([]float64, len(equities))
	for i, e := range equities {
		if e.Beta == 0 {
			return nil, &domain.DomainError{
				Message: fmt.Sprintf("equity %d has zero beta, excess-return ratio is undefined", i),
			}
		}
		c[i] = -formulas.ExcessReturnRatio(*e.Return, e.Beta, market.BenchmarkReturn, market.RiskFreeRate)
		if math.IsNaN(c[i]) || math.IsInf(c[i], 0) {
			return nil, &domain.DomainError{
				Message: fmt.Sprintf("objective coefficient for equity %d is not finite", i),
			}
		}
	}
	return c, nil
}

// MinBetaObjective returns the minimization coefficients for the
// beta-minimizing goal: each equity's beta, taken directly. Minimizing this
// sum under the budget constraint pushes allocation toward low-beta equities.
func MinBetaObjective(equities []domain.Equity) []float64 {
	c := make([]float64, len(equities))
	for i, e := range equities {
		c[i] = e.Beta
	}
	return c
}
