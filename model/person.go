package model

// Person tracks what one Personality has cost and been paid over time.
// Both accumulators only ever grow (rates are non-negative).
type Person struct {
	Personality        *Personality
	CumulativeOpCost   float64
	CumulativeReturned float64
}

func NewPerson(p *Personality) *Person {
	return &Person{Personality: p}
}

// AdvanceOneMonth accrues one month of opportunity cost and salary at the
// personality's current rates.
func (p *Person) AdvanceOneMonth() {
	p.CumulativeOpCost += p.Personality.OpCost
	p.CumulativeReturned += p.Personality.Salary
}
