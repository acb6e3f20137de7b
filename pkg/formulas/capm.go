package formulas

// CAPMExpectedReturn calculates the expected return of an equity under the
// Capital Asset Pricing Model.
//
// Formula:
//
//	Expected Return = Risk-free Rate + Beta × (Market Return - Risk-free Rate)
//
// Args:
//
//	riskFreeRate: Risk-free rate (annual, as decimal, e.g., 0.02 for 2%)
//	beta: Equity's sensitivity to the market/benchmark return
//	marketReturn: Market/benchmark return (annual, as decimal)
//
// Returns:
//
//	Expected return as decimal. Total function, defined for every input.
func CAPMExpectedReturn(riskFreeRate, beta, marketReturn float64) float64 {
	return riskFreeRate + beta*(marketReturn-riskFreeRate)
}

// ExcessReturnRatio calculates an equity's excess return per unit of
// beta-scaled benchmark excess return:
//
//	(Return - Risk-free Rate) / (Beta × (Benchmark Return - Risk-free Rate))
//
// The ratio is undefined for a zero beta or when the benchmark return equals
// the risk-free rate; callers must rule those out before calling.
func ExcessReturnRatio(ret, beta, benchmarkReturn, riskFreeRate float64) float64 {
	return (ret - riskFreeRate) / (beta * (benchmarkReturn - riskFreeRate))
}
