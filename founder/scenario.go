// Package founder drives a single-founder SaaS company through its monthly
// steps. It owns the control policy (effort emphasis and salary) that sits
// on top of the model package.
package founder

import (
	"errors"
	"math"

	"github.com/warp/startup-model/model"
)

// =============================================================================
// SCENARIO - Everything needed to start a run
// =============================================================================

// Scenario bundles the starting parameters of a run with its policy knobs.
type Scenario struct {
	Personality model.PersonalityConfig `json:"personality"`
	Market      model.MarketConfig      `json:"market"`
	State       model.StateConfig       `json:"state"`

	FixedOverhead float64 `json:"fixed_overhead"`
	Months        int     `json:"months"`

	// Emphasis on product/market fit once IP is enough.
	Emphasis float64 `json:"emphasis"`

	// Founder pays themselves RevenueShare of monthly revenue, capped.
	RevenueShare float64 `json:"revenue_share"`
	SalaryCap    float64 `json:"salary_cap"`
}

// DefaultScenario returns the baseline single-founder company.
func DefaultScenario() Scenario {
	return Scenario{
		Personality:   model.DefaultPersonalityConfig(),
		Market:        model.DefaultMarketConfig(),
		State:         model.DefaultStateConfig(),
		FixedOverhead: 1000,
		Months:        model.Horizon,
		Emphasis:      0.75,
		RevenueShare:  0.5,
		SalaryCap:     20000,
	}
}

// Validate checks the parameters the model assumes but never enforces.
// All violations are reported, joined. NaN and infinite values are reported
// on their own, before any range check.
func (s Scenario) Validate() error {
	var errs []error
	check := func(ok bool, field string, value float64, reason string) {
		if !ok {
			errs = append(errs, &ParameterError{Field: field, Value: value, Reason: reason})
		}
	}

	p, m := s.Personality, s.Market
	for _, f := range []struct {
		field string
		value float64
	}{
		{"capital", s.State.Capital},
		{"channel", s.State.Channel},
		{"pmf", s.State.ProductMarketFit},
		{"development_months", p.DevelopmentMonths},
		{"marketing_months", p.MarketingMonths},
		{"salary", p.Salary},
		{"op_cost", p.OpCost},
		{"flake", m.FlakeFraction},
		{"price", m.MonthlyPrice},
		{"contract_months", m.ContractMonths},
		{"variance", m.ContractVariance},
		{"acq_cost", m.AcquisitionCost},
		{"overhead", s.FixedOverhead},
		{"emphasis", s.Emphasis},
		{"revenue_share", s.RevenueShare},
		{"salary_cap", s.SalaryCap},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, &ParameterError{Field: f.field, Value: f.value, Reason: "must be a finite number"})
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	check(p.DevelopmentMonths >= 1, "development_months", p.DevelopmentMonths, "must be at least 1")
	check(p.MarketingMonths >= 1, "marketing_months", p.MarketingMonths, "must be at least 1")
	check(p.Salary >= 0, "salary", p.Salary, "must not be negative")
	check(p.OpCost >= 0, "op_cost", p.OpCost, "must not be negative")

	check(m.EventsPerMonth >= 0, "events", float64(m.EventsPerMonth), "must not be negative")
	check(m.FlakeFraction >= 0 && m.FlakeFraction <= 1, "flake", m.FlakeFraction, "must be within [0, 1]")
	check(m.MonthlyPrice >= 0, "price", m.MonthlyPrice, "must not be negative")
	check(m.ContractVariance >= 0, "variance", m.ContractVariance, "must not be negative")

	check(s.State.Channel >= 0 && s.State.Channel <= 1, "channel", s.State.Channel, "must be within [0, 1]")
	check(s.State.ProductMarketFit >= 0 && s.State.ProductMarketFit <= 1, "pmf", s.State.ProductMarketFit, "must be within [0, 1]")

	check(s.Months >= 1, "months", float64(s.Months), "must be at least 1")
	check(s.Emphasis >= 0 && s.Emphasis <= 1, "emphasis", s.Emphasis, "must be within [0, 1]")
	check(s.RevenueShare >= 0, "revenue_share", s.RevenueShare, "must not be negative")
	check(s.SalaryCap >= p.Salary, "salary_cap", s.SalaryCap, "must be at least the survival salary")

	return errors.Join(errs...)
}
