/*
runner.go - The single-founder monthly loop

PURPOSE:
  Builds a Company from a Scenario and folds it through Scenario.Months
  steps, applying the emphasis policy before each month and the salary
  policy after it.

LOOP (per month):
  1. emphasis := EmphasisPolicy.Emphasis(state)
  2. result, factors := company.AdvanceOneMonth(emphasis)
  3. append to the Timeline
  4. founder salary := SalaryPolicy.NextSalary(state, result)

  Step 4 runs after the month is booked, so the salary a month pays is the
  one decided at the end of the previous month.

RANDOMNESS:
  Each Run owns its RandomSource. Run(scenario, seed) seeds a fresh PCG
  stream; RunWithSource lets tests inject a scripted one.

SEE ALSO:
  - policies.go: Emphasis and salary policies
  - model/company.go: The monthly transition
*/
package founder

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/warp/startup-model/model"
)

// Run is the outcome of one simulated company.
type Run struct {
	ID       uuid.UUID      `json:"id"`
	Seed     uint64         `json:"seed"`
	Scenario Scenario       `json:"scenario"`
	Timeline model.Timeline `json:"timeline"`

	Final   *model.State  `json:"-"`
	Founder *model.Person `json:"-"`
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner executes scenarios. Nil policies fall back to the scenario's
// ThresholdEmphasis and RevenueShareSalary.
type Runner struct {
	Logger   *slog.Logger
	Emphasis EmphasisPolicy
	Salary   SalaryPolicy
}

// NewRunner creates a runner that logs to logger (nil discards).
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{Logger: logger}
}

// Run validates the scenario and runs it on a PCG stream seeded with seed.
func (r *Runner) Run(s Scenario, seed uint64) (*Run, error) {
	run, err := r.RunWithSource(s, model.NewSeededSource(seed))
	if err != nil {
		return nil, err
	}
	run.Seed = seed
	return run, nil
}

// RunWithSource validates the scenario and runs it on rng.
func (r *Runner) RunWithSource(s Scenario, rng model.RandomSource) (*Run, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	emphasis := r.Emphasis
	if emphasis == nil {
		emphasis = ThresholdEmphasis{Value: s.Emphasis}
	}
	salary := r.Salary
	if salary == nil {
		salary = RevenueShareSalary{
			Share:    s.RevenueShare,
			Survival: s.Personality.Salary,
			Cap:      s.SalaryCap,
		}
	}

	state := model.NewState(s.State)
	person := model.NewPerson(model.NewPersonality(s.Personality))
	market := model.NewMarket(s.Market, rng)
	company := model.NewCompany(state, []*model.Person{person}, market, s.FixedOverhead)

	run := &Run{
		ID:       uuid.New(),
		Scenario: s,
		Final:    state,
		Founder:  person,
	}
	log := r.logger().With("run_id", run.ID.String())

	for state.Age < s.Months {
		result, factors := company.AdvanceOneMonth(emphasis.Emphasis(state))
		run.Timeline.Append(result, factors)

		log.Debug("month",
			"month", state.Age,
			"cash", result.Cash,
			"revenue", result.Revenue,
			"sales", result.SalesCount,
			"ip", factors.IP,
			"pmf", factors.ProductMarketFit,
			"channel", factors.ChannelStrength,
		)

		person.Personality.Salary = salary.NextSalary(state, result)
	}

	minMonth, minCash := run.Timeline.MinimumCash()
	log.Info("run complete",
		"months", state.Age,
		"cash", state.Cash,
		"min_cash", minCash,
		"min_cash_month", minMonth,
		"first_sale_month", run.Timeline.FirstSaleMonth(),
		"subscribers", state.SubscriberCount(),
	)
	return run, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
