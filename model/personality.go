package model

// =============================================================================
// PERSONALITY - Per-person monthly rates
// =============================================================================

// PersonalityConfig describes a person in months and dollars.
type PersonalityConfig struct {
	DevelopmentMonths float64 // months to reach 100% development or product/market fit
	MarketingMonths   float64 // months to reach 100% channel
	Salary            float64 // survival salary, dollars/month
	OpCost            float64 // opportunity cost, dollars/month
}

// DefaultPersonalityConfig returns the baseline founder.
func DefaultPersonalityConfig() PersonalityConfig {
	return PersonalityConfig{
		DevelopmentMonths: 18,
		MarketingMonths:   48,
		Salary:            4000,
		OpCost:            8000,
	}
}

// Personality holds the per-month rates derived from a PersonalityConfig.
// Development and Marketing are fixed; Salary is adjusted by the driver
// between months.
type Personality struct {
	Development float64
	Marketing   float64
	Salary      float64
	OpCost      float64
}

// NewPersonality converts month counts into monthly rates.
func NewPersonality(cfg PersonalityConfig) *Personality {
	return &Personality{
		Development: 1 / cfg.DevelopmentMonths,
		Marketing:   1 / cfg.MarketingMonths,
		Salary:      cfg.Salary,
		OpCost:      cfg.OpCost,
	}
}
