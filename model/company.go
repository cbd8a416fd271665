/*
company.go - The monthly state transition

PURPOSE:
  Company owns one State, one Market and the People who work there, and
  advances all of them together one month at a time.

ORDER OF EFFECTS (AdvanceOneMonth):
  1.  Age the company by one month
  2.  Pay salaries plus fixed overhead, then payroll tax on salaries
  3.  Advance every Person (accrues at this month's salary)
  4.  Grow IP by development x (1 - emphasis), capped at 1
  5.  Grow product/market fit by development x emphasis, capped at 1
  6.  Reset the channel when the development gate is closed, otherwise grow
      it by marketing, capped at 1
  7.  Draw the sales pool, book floor(rawSales) new subscribers (one draw
      each) and pay acquisition cost on the unfloored rawSales
  8.  Bill every subscriber
  9.  Bank the revenue
  10. Score the month against initial capital and opportunity cost
  11. Emit Result and Factors

  The order is part of the contract: it fixes both the arithmetic and the
  sequence of random draws, so seeded runs are reproducible.

FLOOR vs RAW:
  New subscriber count uses floor(rawSales); acquisition cost uses rawSales
  as-is. Factors.RawSales reports the unfloored value, Result.SalesCount the
  floored one.

SEE ALSO:
  - state.go: DevelopmentEffect gate
  - market.go: Random draws
  - founder/runner.go: The loop that calls AdvanceOneMonth
*/
package model

import "math"

// PayrollTaxRate is charged on top of salaries every month.
const PayrollTaxRate = 0.3

// =============================================================================
// COMPANY
// =============================================================================

type Company struct {
	State         *State
	People        []*Person
	Market        *Market
	FixedOverhead float64
}

func NewCompany(state *State, people []*Person, market *Market, fixedOverhead float64) *Company {
	return &Company{
		State:         state,
		People:        people,
		Market:        market,
		FixedOverhead: fixedOverhead,
	}
}

// AdvanceOneMonth runs one month of business. marketFitEmphasis in [0, 1] is
// the share of development effort spent on product/market fit rather than IP.
func (c *Company) AdvanceOneMonth(marketFitEmphasis float64) (Result, Factors) {
	s := c.State
	s.Age++

	// Pay the people, the overhead and the tax man.
	salaries := 0.0
	for _, p := range c.People {
		salaries += p.Personality.Salary
	}
	s.Cash -= salaries + c.FixedOverhead
	s.Cash -= salaries * PayrollTaxRate

	for _, p := range c.People {
		p.AdvanceOneMonth()
	}

	// Develop IP.
	ipGain := 0.0
	for _, p := range c.People {
		ipGain += p.Personality.Development * (1 - marketFitEmphasis)
	}
	s.IP += ipGain
	if s.IP > 1 {
		s.IP = 1
	}

	// Improve product/market fit.
	pmfGain := 0.0
	for _, p := range c.People {
		pmfGain += p.Personality.Development * marketFitEmphasis
	}
	s.ProductMarketFit += pmfGain
	if s.ProductMarketFit > 1 {
		s.ProductMarketFit = 1
	}

	// Grow the channel only while the development gate is open.
	if !(s.DevelopmentEffect() > 0) {
		s.ChannelStrength = 0
	} else {
		channelGain := 0.0
		for _, p := range c.People {
			channelGain += p.Personality.Marketing
		}
		s.ChannelStrength += channelGain
		if s.ChannelStrength > 1 {
			s.ChannelStrength = 1
		}
	}

	// Maybe make some sales.
	pool := c.Market.SalesPoolThisMonth()
	rawSales := float64(pool) * s.DevelopmentEffect() * s.ChannelStrength
	salesCount := int(math.Floor(rawSales))
	for i := 0; i < salesCount; i++ {
		s.AddSubscriber(c.Market.GenerateSale())
	}
	s.Cash -= c.Market.AcquisitionCost * rawSales

	revenue := 0.0
	for _, sale := range s.subscribers {
		revenue += sale.RevenueThisMonth()
	}
	s.Cash += revenue

	// Scores on the doors.
	returned, opCost := 0.0, 0.0
	for _, p := range c.People {
		returned += p.CumulativeReturned
	}
	for _, p := range c.People {
		opCost += p.CumulativeOpCost
	}

	result := Result{
		Revenue:       revenue,
		SalesCount:    salesCount,
		Pipeline:      s.Pipeline(),
		Cash:          s.Cash,
		TotalSalaries: salaries,
		Overall:       (s.Cash + returned) - (s.InitialCapital + opCost),
	}
	factors := Factors{
		IP:               s.IP,
		ProductMarketFit: s.ProductMarketFit,
		ChannelStrength:  s.ChannelStrength,
		SalesPoolSize:    pool,
		RawSales:         rawSales,
	}
	return result, factors
}

// CapitalInjection adds cash and changes nothing else.
func (c *Company) CapitalInjection(amount float64) {
	c.State.Cash += amount
}
