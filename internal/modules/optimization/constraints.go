package optimization

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aristath/rebalance/internal/domain"
)

// BudgetConstraint builds the single equality constraint that holds total
// portfolio market value fixed: one row of average prices with the
// right-hand side computed from the input quantities. It is the only
// constraint, so the solver may move value freely between positions as long
// as the total is conserved; no position's share is capped.
func BudgetConstraint(equities []domain.Equity) (*mat.Dense, []float64) {
	prices := make([]float64, len(equities))
	for i, e := range equities {
		prices[i] = e.AvgPrice
	}
	return mat.NewDense(1, len(equities), prices), []float64{domain.TotalInvestment(equities)}
}
