package report

import (
	"github.com/warp/startup-model/founder"
)

// =============================================================================
// SUMMARY - Headline numbers of one run
// =============================================================================

// Summary condenses a run into the figures an analyst compares across a
// sweep. Month fields are 1-based; 0 means "never".
type Summary struct {
	Months int `json:"months"`

	FinalCash        Amount `json:"final_cash"`
	MinimumCash      Amount `json:"minimum_cash"`
	MinimumCashMonth int    `json:"minimum_cash_month"`
	InsolvencyMonth  int    `json:"insolvency_month"`

	FirstSaleMonth   int    `json:"first_sale_month"`
	TotalRevenue     Amount `json:"total_revenue"`
	PeakRevenue      Amount `json:"peak_revenue"`
	PeakRevenueMonth int    `json:"peak_revenue_month"`
	FinalPipeline    Amount `json:"final_pipeline"`

	Subscribers       int `json:"subscribers"`
	ActiveSubscribers int `json:"active_subscribers"`

	TotalSalaries Amount `json:"total_salaries"`
	FinalOverall  Amount `json:"final_overall"`
}

// Summarize computes the Summary of a finished run.
func Summarize(run *founder.Run) Summary {
	tl := &run.Timeline
	s := Summary{
		Months:          tl.Len(),
		InsolvencyMonth: tl.InsolvencyMonth(),
		FirstSaleMonth:  tl.FirstSaleMonth(),
	}

	minMonth, minCash := tl.MinimumCash()
	s.MinimumCashMonth = minMonth
	s.MinimumCash = NewAmount(minCash)

	peakMonth, peak := tl.PeakRevenue()
	s.PeakRevenueMonth = peakMonth
	s.PeakRevenue = NewAmount(peak)

	revenues := make([]float64, 0, tl.Len())
	salaries := make([]float64, 0, tl.Len())
	for _, r := range tl.Results() {
		revenues = append(revenues, r.Revenue)
		salaries = append(salaries, r.TotalSalaries)
	}
	s.TotalRevenue = sumAmounts(revenues)
	s.TotalSalaries = sumAmounts(salaries)

	if last, ok := tl.At(tl.Len()); ok {
		s.FinalCash = NewAmount(last.Result.Cash)
		s.FinalPipeline = NewAmount(last.Result.Pipeline)
		s.FinalOverall = NewAmount(last.Result.Overall)
	}
	if run.Final != nil {
		s.Subscribers = run.Final.SubscriberCount()
		s.ActiveSubscribers = run.Final.ActiveSubscriberCount()
	}
	return s
}
