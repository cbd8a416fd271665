package model

import "math"

// =============================================================================
// MARKET - Static parameters plus two stochastic generators
// =============================================================================

// MarketConfig describes the market a company sells into.
type MarketConfig struct {
	EventsPerMonth   int     // potential sale events per month
	FlakeFraction    float64 // fraction of events that may vanish, in [0, 1]
	MonthlyPrice     float64 // subscription price per month
	ContractMonths   float64 // base contract length
	ContractVariance float64 // spread of contract length around the base
	AcquisitionCost  float64 // cost per (fractional) sale
}

// DefaultMarketConfig returns the baseline market.
func DefaultMarketConfig() MarketConfig {
	return MarketConfig{
		EventsPerMonth:   1000,
		FlakeFraction:    0.5,
		MonthlyPrice:     10,
		ContractMonths:   24,
		ContractVariance: 0.5,
		AcquisitionCost:  10,
	}
}

// Market draws the monthly sales pool and new subscriptions from its
// RandomSource.
type Market struct {
	MarketConfig
	rng RandomSource
}

func NewMarket(cfg MarketConfig, rng RandomSource) *Market {
	return &Market{MarketConfig: cfg, rng: rng}
}

// SalesPoolThisMonth returns how many sale events are available this month.
// Consumes one draw.
func (m *Market) SalesPoolThisMonth() int {
	u := m.rng.Float64()
	return int(math.Floor(float64(m.EventsPerMonth) * (1 - u*m.FlakeFraction)))
}

// GenerateSale creates a subscription whose length varies around the base
// contract length. The length is not bounded below. Consumes one draw.
func (m *Market) GenerateSale() *Sale {
	u := m.rng.Float64()
	return NewSale(m.MonthlyPrice, m.ContractMonths+(u-0.5)*m.ContractVariance)
}
