package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/warp/startup-model/founder"
)

// floatFlag binds one float64 field of a Scenario to a command-line flag.
type floatFlag struct {
	name  string
	usage string
	field func(s *founder.Scenario) *float64
}

var floatFlags = []floatFlag{
	{"capital", "Starting cash", func(s *founder.Scenario) *float64 { return &s.State.Capital }},
	{"channel", "Starting channel strength [0, 1]", func(s *founder.Scenario) *float64 { return &s.State.Channel }},
	{"pmf", "Starting product/market fit [0, 1]", func(s *founder.Scenario) *float64 { return &s.State.ProductMarketFit }},
	{"dev-months", "Months of full-time effort to build the product", func(s *founder.Scenario) *float64 { return &s.Personality.DevelopmentMonths }},
	{"marketing-months", "Months of effort to build a full sales channel", func(s *founder.Scenario) *float64 { return &s.Personality.MarketingMonths }},
	{"salary", "Founder survival salary per month", func(s *founder.Scenario) *float64 { return &s.Personality.Salary }},
	{"op-cost", "Founder opportunity cost per month", func(s *founder.Scenario) *float64 { return &s.Personality.OpCost }},
	{"flake", "Maximum fraction of buying events lost per month", func(s *founder.Scenario) *float64 { return &s.Market.FlakeFraction }},
	{"price", "Monthly subscription price", func(s *founder.Scenario) *float64 { return &s.Market.MonthlyPrice }},
	{"contract-months", "Mean contract length in months", func(s *founder.Scenario) *float64 { return &s.Market.ContractMonths }},
	{"variance", "Spread of contract lengths", func(s *founder.Scenario) *float64 { return &s.Market.ContractVariance }},
	{"acq-cost", "Acquisition cost per sale", func(s *founder.Scenario) *float64 { return &s.Market.AcquisitionCost }},
	{"overhead", "Fixed overhead per month", func(s *founder.Scenario) *float64 { return &s.FixedOverhead }},
	{"emphasis", "Effort share on product/market fit once IP is enough", func(s *founder.Scenario) *float64 { return &s.Emphasis }},
	{"revenue-share", "Share of monthly revenue paid as salary", func(s *founder.Scenario) *float64 { return &s.RevenueShare }},
	{"salary-cap", "Maximum founder salary", func(s *founder.Scenario) *float64 { return &s.SalaryCap }},
}

// addScenarioFlags registers --preset and one flag per scenario parameter.
// Defaults shown in help are those of the single-founder preset.
func addScenarioFlags(cmd *cobra.Command) {
	defaults := founder.DefaultScenario()
	f := cmd.Flags()
	f.String("preset", "single-founder", "Starting scenario (see 'saasmodel presets')")
	for _, ff := range floatFlags {
		f.Float64(ff.name, *ff.field(&defaults), ff.usage)
	}
	f.Int("events", defaults.Market.EventsPerMonth, "Potential buying events per month")
	f.Int("months", defaults.Months, "Months to simulate")
}

// scenarioFromFlags loads the preset and overrides the parameters whose
// flags were set explicitly.
func scenarioFromFlags(cmd *cobra.Command) (founder.Scenario, error) {
	f := cmd.Flags()
	name, _ := f.GetString("preset")
	preset, err := founder.LookupPreset(name)
	if err != nil {
		return founder.Scenario{}, err
	}
	s := preset.Scenario

	for _, ff := range floatFlags {
		if !f.Changed(ff.name) {
			continue
		}
		v, err := f.GetFloat64(ff.name)
		if err != nil {
			return founder.Scenario{}, fmt.Errorf("--%s: %w", ff.name, err)
		}
		*ff.field(&s) = v
	}
	if f.Changed("events") {
		s.Market.EventsPerMonth, _ = f.GetInt("events")
	}
	if f.Changed("months") {
		s.Months, _ = f.GetInt("months")
	}
	return s, nil
}
