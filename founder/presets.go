package founder

import (
	"fmt"
	"sort"
)

// =============================================================================
// PRESETS - Named starting scenarios
// =============================================================================

// Preset is a named, ready-to-run scenario.
type Preset struct {
	Name        string
	Description string
	Scenario    Scenario
}

var presets = map[string]Preset{
	"single-founder": {
		Name:        "single-founder",
		Description: "Default founder, market and $150k starting capital",
		Scenario:    DefaultScenario(),
	},
	"one-business": {
		Name:        "one-business",
		Description: "$200k starting capital, founder forgoing $10k/month",
		Scenario: func() Scenario {
			s := DefaultScenario()
			s.State.Capital = 200000
			s.Personality.OpCost = 10000
			return s
		}(),
	},
}

// Presets returns all presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}
