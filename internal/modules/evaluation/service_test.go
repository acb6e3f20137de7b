package evaluation

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/rebalance/internal/domain"
)

func TestPortfolioMetrics_ConcreteScenario(t *testing.T) {
	equities := []domain.Equity{
		{Beta: 1.2, Qty: 100, AvgPrice: 50, Return: domain.Float(0.08)},
		{Beta: 0.9, Qty: 150, AvgPrice: 30, Return: domain.Float(0.06)},
	}
	market := domain.MarketParams{BenchmarkReturn: 0.07, RiskFreeRate: 0.02}

	m, err := NewService(zerolog.Nop()).PortfolioMetrics(equities, market)
	require.NoError(t, err)

	// Weights: 5000/9500 and 4500/9500.
	beta := (5000*1.2 + 4500*0.9) / 9500
	ret := (5000*0.08 + 4500*0.06) / 9500
	alpha := ret - 0.02 - beta*0.05
	sharpe := (ret - 0.02) / (beta * 0.05)

	assert.InDelta(t, 1.0579, m.Beta, 1e-4)
	assert.InDelta(t, beta, m.Beta, 1e-12)
	assert.InDelta(t, alpha, m.Alpha, 1e-12)
	assert.InDelta(t, sharpe, m.SharpeRatio, 1e-12)
}

func TestPortfolioMetrics_SingleEquityUnitBeta(t *testing.T) {
	// A single unit-beta holding tracks the benchmark: alpha is the return
	// over the benchmark, Sharpe is the excess return over the benchmark's.
	equities := []domain.Equity{
		{Beta: 1.0, Qty: 10, AvgPrice: 100, Return: domain.Float(0.07)},
	}
	market := domain.MarketParams{BenchmarkReturn: 0.07, RiskFreeRate: 0.02}

	m, err := NewService(zerolog.Nop()).PortfolioMetrics(equities, market)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, m.Beta, 1e-12)
	assert.InDelta(t, 0.0, m.Alpha, 1e-12)
	assert.InDelta(t, 1.0, m.SharpeRatio, 1e-12)
}

func TestPortfolioMetrics_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		equities []domain.Equity
		market   domain.MarketParams
	}{
		{
			name: "Zero total investment",
			equities: []domain.Equity{
				{Beta: 1.2, Qty: 0, AvgPrice: 50, Return: domain.Float(0.08)},
			},
			market: domain.MarketParams{BenchmarkReturn: 0.07, RiskFreeRate: 0.02},
		},
		{
			name: "Zero portfolio beta",
			equities: []domain.Equity{
				{Beta: 1.0, Qty: 10, AvgPrice: 50, Return: domain.Float(0.08)},
				{Beta: -1.0, Qty: 10, AvgPrice: 50, Return: domain.Float(0.03)},
			},
			market: domain.MarketParams{BenchmarkReturn: 0.07, RiskFreeRate: 0.02},
		},
		{
			name: "Benchmark equals risk-free rate",
			equities: []domain.Equity{
				{Beta: 1.2, Qty: 10, AvgPrice: 50, Return: domain.Float(0.08)},
			},
			market: domain.MarketParams{BenchmarkReturn: 0.02, RiskFreeRate: 0.02},
		},
	}

	svc := NewService(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PortfolioMetrics(tt.equities, tt.market)
			require.Error(t, err)

			var derr *domain.DomainError
			assert.True(t, errors.As(err, &derr))
		})
	}
}

func TestPortfolioMetrics_MissingReturn(t *testing.T) {
	equities := []domain.Equity{
		{Beta: 1.2, Qty: 10, AvgPrice: 50},
	}
	market := domain.MarketParams{BenchmarkReturn: 0.07, RiskFreeRate: 0.02}

	_, err := NewService(zerolog.Nop()).PortfolioMetrics(equities, market)
	require.Error(t, err)

	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}
