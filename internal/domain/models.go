// Package domain provides core domain models and types.
package domain

import "fmt"

// Equity represents one portfolio position under the single-factor market
// model. Return is optional: the Sharpe objective and the metrics calculator
// require it, the beta-minimizing objective does not.
type Equity struct {
	Beta     float64  `json:"beta"`
	Qty      float64  `json:"qty"`
	AvgPrice float64  `json:"avg_price"`
	Return   *float64 `json:"return,omitempty"`
}

// MarketValue returns the position's market value at its cost-basis price.
func (e Equity) MarketValue() float64 {
	return e.Qty * e.AvgPrice
}

// Float returns a pointer to v. Convenience for optional fields.
func Float(v float64) *float64 {
	return &v
}

// MarketParams holds the scalar market inputs shared across all equities in
// a computation. BenchmarkReturn is typically a broad-index return, the
// risk-free rate a short-term treasury bill rate.
type MarketParams struct {
	BenchmarkReturn float64 `json:"benchmark_return"`
	RiskFreeRate    float64 `json:"risk_free_rate"`
}

// ExcessReturn returns the benchmark's excess return over the risk-free rate.
func (m MarketParams) ExcessReturn() float64 {
	return m.BenchmarkReturn - m.RiskFreeRate
}

// TotalInvestment returns the total market value of the given equities.
func TotalInvestment(equities []Equity) float64 {
	var total float64
	for _, e := range equities {
		total += e.MarketValue()
	}
	return total
}

// ValidatePortfolio checks portfolio shape ahead of optimization or metrics
// computation. needsReturn requires every equity to carry a Return value.
func ValidatePortfolio(equities []Equity, needsReturn bool) error {
	if len(equities) == 0 {
		return &ValidationError{Field: "equities", Message: "portfolio is empty"}
	}
	for i, e := range equities {
		if e.AvgPrice < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("equities[%d].avg_price", i),
				Message: fmt.Sprintf("must not be negative, got %v", e.AvgPrice),
			}
		}
		if e.Qty < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("equities[%d].qty", i),
				Message: fmt.Sprintf("must not be negative, got %v", e.Qty),
			}
		}
		if needsReturn && e.Return == nil {
			return &ValidationError{
				Field:   fmt.Sprintf("equities[%d].return", i),
				Message: "required for this objective",
			}
		}
	}
	return nil
}
