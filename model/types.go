/*
Package model provides the monthly state-transition engine for an early-stage
subscription business.

PURPOSE:
  This package contains the entities whose interacting update rules advance a
  company by one month: who works there (Personality, Person), what market it
  sells into (Market), what it has sold (Sale), and what it owns (State). The
  Company ties them together in a single AdvanceOneMonth step.

KEY CONCEPTS IN THIS FILE (types.go):
  - Result: One month's money figures (revenue, cash, pipeline, ...)
  - Factors: One month's maturity figures (ip, pmf, channel, sales pool)
  - Horizon: The default number of simulated months

CAPPED ACCUMULATORS:
  IP (product maturity), ProductMarketFit and ChannelStrength all live in
  [0, 1]. They grow by per-person monthly rates and are capped at 1 by the
  Company. ChannelStrength is the odd one out: it collapses back to 0 whenever
  the joint development gate is closed.

DEVELOPMENT GATE:
  Sales only happen once IP x ProductMarketFit exceeds 0.75. Below that the
  development effect is 0, the channel resets and the sales pool is ignored.

NO FAILURE MODES:
  Every operation in this package is total. Cash may go arbitrarily negative,
  generated contract lengths may be negative, and exhausted subscribers stay
  in the subscriber book. Validation belongs to callers (see founder.Scenario).

RANDOMNESS:
  All stochastic behaviour flows through a RandomSource. Per month the Market
  draws once for the sales pool, then once per generated Sale. Runs seeded
  with the same value reproduce bit-for-bit.

USAGE:
  rng := model.NewSeededSource(42)
  state := model.NewState(model.DefaultStateConfig())
  founder := model.NewPerson(model.NewPersonality(model.DefaultPersonalityConfig()))
  market := model.NewMarket(model.DefaultMarketConfig(), rng)
  company := model.NewCompany(state, []*model.Person{founder}, market, 1000)

  for state.Age < model.Horizon {
      result, factors := company.AdvanceOneMonth(0)
      ...
  }

SEE ALSO:
  - company.go: The ordered monthly transition
  - timeline.go: Month-by-month history of a run
  - founder/: The single-founder driver policy
*/
package model

// Horizon is the default simulated lifetime in months.
const Horizon = 60

// =============================================================================
// RESULT - One month's money figures
// =============================================================================

// Result is the money side of a single simulated month. It is a value and is
// never modified once AdvanceOneMonth returns it.
type Result struct {
	Revenue       float64 `json:"revenue"`
	SalesCount    int     `json:"sales_count"`
	Pipeline      float64 `json:"pipeline"` // undiscounted remaining contract value
	Cash          float64 `json:"cash"`
	TotalSalaries float64 `json:"total_salaries"`
	Overall       float64 `json:"overall"` // net of initial capital and opportunity cost
}

// =============================================================================
// FACTORS - One month's maturity figures
// =============================================================================

// Factors is the maturity side of a single simulated month.
type Factors struct {
	IP               float64 `json:"ip"`
	ProductMarketFit float64 `json:"product_market_fit"`
	ChannelStrength  float64 `json:"channel_strength"`
	SalesPoolSize    int     `json:"sales_pool_size"`
	RawSales         float64 `json:"raw_sales"` // before truncation to whole sales
}
