package model

// Sale is a single subscriber: a fixed monthly spend over a (possibly
// fractional) number of remaining months.
type Sale struct {
	spend     float64
	remaining float64
}

func NewSale(spend, months float64) *Sale {
	return &Sale{spend: spend, remaining: months}
}

func (s *Sale) Spend() float64           { return s.spend }
func (s *Sale) RemainingMonths() float64 { return s.remaining }

// RevenueThisMonth bills one month. The countdown is decremented first and
// only while still positive, then the sale pays if the result is not negative.
// A sale with a fractional tail below one month therefore stops paying as soon
// as the decrement takes it under zero.
func (s *Sale) RevenueThisMonth() float64 {
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining >= 0 {
		return s.spend
	}
	return 0
}

// RemainingRevenue is the undiscounted value left on the contract. Negative
// once the sale is exhausted.
func (s *Sale) RemainingRevenue() float64 {
	return s.remaining * s.spend
}
