package model

// =============================================================================
// TIMELINE - Month-by-month history of a run
// =============================================================================

// MonthRecord pairs the Result and Factors emitted for one month.
// Month is 1-based, matching State.Age after the step.
type MonthRecord struct {
	Month   int     `json:"month"`
	Result  Result  `json:"result"`
	Factors Factors `json:"factors"`
}

// Timeline is the ordered list of months a run produced. Queries that return
// a month number return 0 when nothing matches.
type Timeline struct {
	Months []MonthRecord `json:"months"`
}

// Append records the next month.
func (t *Timeline) Append(result Result, factors Factors) {
	t.Months = append(t.Months, MonthRecord{
		Month:   len(t.Months) + 1,
		Result:  result,
		Factors: factors,
	})
}

func (t *Timeline) Len() int { return len(t.Months) }

// At returns the record for a 1-based month.
func (t *Timeline) At(month int) (MonthRecord, bool) {
	if month < 1 || month > len(t.Months) {
		return MonthRecord{}, false
	}
	return t.Months[month-1], true
}

func (t *Timeline) Results() []Result {
	out := make([]Result, len(t.Months))
	for i, m := range t.Months {
		out[i] = m.Result
	}
	return out
}

func (t *Timeline) Factors() []Factors {
	out := make([]Factors, len(t.Months))
	for i, m := range t.Months {
		out[i] = m.Factors
	}
	return out
}

// CashAt returns cash at the end of the given month, or initial before the
// first month.
func (t *Timeline) CashAt(month int, initial float64) float64 {
	cash := initial
	for _, m := range t.Months {
		if m.Month > month {
			break
		}
		cash = m.Result.Cash
	}
	return cash
}

// MinimumCash returns the lowest month-end cash and the first month it
// occurred in.
func (t *Timeline) MinimumCash() (month int, cash float64) {
	for _, m := range t.Months {
		if month == 0 || m.Result.Cash < cash {
			month, cash = m.Month, m.Result.Cash
		}
	}
	return month, cash
}

// InsolvencyMonth is the first month that ended with negative cash.
func (t *Timeline) InsolvencyMonth() int {
	for _, m := range t.Months {
		if m.Result.Cash < 0 {
			return m.Month
		}
	}
	return 0
}

// FirstSaleMonth is the first month that booked at least one subscriber.
func (t *Timeline) FirstSaleMonth() int {
	for _, m := range t.Months {
		if m.Result.SalesCount > 0 {
			return m.Month
		}
	}
	return 0
}

func (t *Timeline) TotalRevenue() float64 {
	total := 0.0
	for _, m := range t.Months {
		total += m.Result.Revenue
	}
	return total
}

// PeakRevenue returns the best month and its revenue.
func (t *Timeline) PeakRevenue() (month int, revenue float64) {
	for _, m := range t.Months {
		if m.Result.Revenue > revenue {
			month, revenue = m.Month, m.Result.Revenue
		}
	}
	return month, revenue
}
