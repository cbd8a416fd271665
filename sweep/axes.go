package sweep

import (
	"errors"
	"fmt"
	"sort"

	"github.com/warp/startup-model/founder"
)

// ErrUnknownAxis is returned by LookupAxis for unregistered names.
var ErrUnknownAxis = errors.New("unknown sweep axis")

// Axis names a scenario parameter and knows how to set it.
type Axis struct {
	Name  string
	Apply func(s *founder.Scenario, v float64)
}

var axes = map[string]Axis{
	"survival-salary": {
		Name:  "survival-salary",
		Apply: func(s *founder.Scenario, v float64) { s.Personality.Salary = v },
	},
	"opportunity-cost": {
		Name:  "opportunity-cost",
		Apply: func(s *founder.Scenario, v float64) { s.Personality.OpCost = v },
	},
	"development-months": {
		Name:  "development-months",
		Apply: func(s *founder.Scenario, v float64) { s.Personality.DevelopmentMonths = v },
	},
	"marketing-months": {
		Name:  "marketing-months",
		Apply: func(s *founder.Scenario, v float64) { s.Personality.MarketingMonths = v },
	},
	"capital": {
		Name:  "capital",
		Apply: func(s *founder.Scenario, v float64) { s.State.Capital = v },
	},
	"events": {
		Name:  "events",
		Apply: func(s *founder.Scenario, v float64) { s.Market.EventsPerMonth = int(v) },
	},
	"flake": {
		Name:  "flake",
		Apply: func(s *founder.Scenario, v float64) { s.Market.FlakeFraction = v },
	},
	"contract-months": {
		Name:  "contract-months",
		Apply: func(s *founder.Scenario, v float64) { s.Market.ContractMonths = v },
	},
	"overhead": {
		Name:  "overhead",
		Apply: func(s *founder.Scenario, v float64) { s.FixedOverhead = v },
	},
}

// LookupAxis finds a built-in axis by name.
func LookupAxis(name string) (Axis, error) {
	a, ok := axes[name]
	if !ok {
		return Axis{}, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
	}
	return a, nil
}

// AxisNames lists the built-in axes, sorted.
func AxisNames() []string {
	names := make([]string, 0, len(axes))
	for name := range axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
