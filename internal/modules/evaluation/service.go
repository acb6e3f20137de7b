// Package evaluation computes summary risk and return metrics for a
// portfolio under the single-factor market model.
package evaluation

import (
	"github.com/rs/zerolog"

	"github.com/aristath/rebalance/internal/domain"
)

// Metrics summarizes a portfolio: its value-weighted beta, the alpha left
// over after the CAPM-implied return, and an approximate Sharpe ratio.
type Metrics struct {
	Beta        float64 `json:"beta"`
	Alpha       float64 `json:"alpha"`
	SharpeRatio float64 `json:"sharpe_ratio"`
}

// Service computes portfolio metrics. It is independent of the optimizer and
// may be pointed at any set of holdings, optimized or not.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new evaluation service.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log}
}

// PortfolioMetrics computes value-weighted portfolio beta, alpha, and the
// approximate Sharpe ratio.
//
// The Sharpe denominator is the beta-weighted benchmark excess return, a
// stand-in for portfolio volatility rather than a true standard deviation.
func (s *Service) PortfolioMetrics(equities []domain.Equity, market domain.MarketParams) (Metrics, error) {
	if err := domain.ValidatePortfolio(equities, true); err != nil {
		return Metrics{}, err
	}

	total := domain.TotalInvestment(equities)
	if total == 0 {
		return Metrics{}, &domain.DomainError{
			Message: "total investment is zero, weights are undefined",
		}
	}

	var beta, ret float64
	for _, e := range equities {
		w := e.MarketValue() / total
		beta += w * e.Beta
		ret += w * *e.Return
	}

	alpha := ret - market.RiskFreeRate - beta*market.ExcessReturn()

	if beta == 0 || market.ExcessReturn() == 0 {
		return Metrics{}, &domain.DomainError{
			Message: "volatility proxy is zero, Sharpe ratio is undefined",
		}
	}
	stdDevProxy := beta * market.ExcessReturn()
	sharpe := (ret - market.RiskFreeRate) / stdDevProxy

	s.log.Debug().
		Float64("beta", beta).
		Float64("alpha", alpha).
		Float64("sharpe", sharpe).
		Float64("total_investment", total).
		Msg("computed portfolio metrics")

	return Metrics{Beta: beta, Alpha: alpha, SharpeRatio: sharpe}, nil
}
