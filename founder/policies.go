/*
policies.go - Monthly control policies

PURPOSE:
  Between months the founder makes two decisions: where development effort
  goes next month, and what to pay themselves now that this month's revenue
  is known. Both are small interfaces so sweeps can swap them.

AVAILABLE POLICIES:
  ThresholdEmphasis:  All effort on IP until IP is enough, then a fixed
                      share on product/market fit
  RevenueShareSalary: Take a share of revenue when it beats the survival
                      salary, capped; fall back to survival when cash is
                      negative

EXAMPLE:
  emphasis := founder.ThresholdEmphasis{Value: 0.75}
  salary := founder.RevenueShareSalary{Share: 0.5, Survival: 4000, Cap: 20000}

  result, _ := company.AdvanceOneMonth(emphasis.Emphasis(company.State))
  person.Personality.Salary = salary.NextSalary(company.State, result)
*/
package founder

import "github.com/warp/startup-model/model"

// =============================================================================
// EMPHASIS
// =============================================================================

// EmphasisPolicy picks next month's product/market fit emphasis in [0, 1].
type EmphasisPolicy interface {
	Emphasis(state *model.State) float64
}

// ThresholdEmphasis spends everything on IP until State.IPEnough, then
// Value on product/market fit.
type ThresholdEmphasis struct {
	Value float64
}

func (e ThresholdEmphasis) Emphasis(state *model.State) float64 {
	if !state.IPEnough() {
		return 0
	}
	return e.Value
}

// =============================================================================
// SALARY
// =============================================================================

// SalaryPolicy decides the founder's salary after a month has been booked.
type SalaryPolicy interface {
	NextSalary(state *model.State, result model.Result) float64
}

// RevenueShareSalary pays max(Share x revenue, Survival) capped at Cap.
// While the company owes money (cash < 0) the founder takes Survival.
// Survival is fixed for the whole run: a raise never becomes the new floor,
// so long runs pay less during cash crunches than a ratcheting floor would.
type RevenueShareSalary struct {
	Share    float64
	Survival float64
	Cap      float64
}

func (p RevenueShareSalary) NextSalary(state *model.State, result model.Result) float64 {
	salary := p.Survival
	if share := p.Share * result.Revenue; share > p.Survival {
		salary = share
	}
	if salary > p.Cap {
		salary = p.Cap
	}
	if state.Cash < 0 {
		salary = p.Survival
	}
	return salary
}
