/*
Package report renders simulation runs for people and for plotting tools.

PURPOSE:
  The model computes in float64 because its accumulators, contract lengths
  and sale counts are fractional by nature. Reports are different: totals
  over 60 months of revenue should add up to the cent. Amount carries money
  as decimal.Decimal rounded to cents, and every summary total is summed in
  decimal.

KEY CONCEPTS:
  - Amount: Money rounded to cents
  - Summary: Headline numbers of one run (runway, first sale, totals)
  - Format: pretty (aligned table), csv (full precision, for plotting),
    json (run + summary)

SEE ALSO:
  - summary.go: Summarize
  - writer.go: WriteRun, WriteSweep
*/
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Money rounded to cents
// =============================================================================

type Amount struct {
	Value decimal.Decimal
}

const centPlaces = 2

func NewAmount(value float64) Amount {
	return Amount{Value: decimal.NewFromFloat(value).Round(centPlaces)}
}

func (a Amount) Add(b Amount) Amount { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) IsNegative() bool    { return a.Value.IsNegative() }
func (a Amount) Equal(b Amount) bool { return a.Value.Equal(b.Value) }

func (a Amount) Float64() float64 {
	f, _ := a.Value.Float64()
	return f
}

// String returns the plain fixed-point form, e.g. "-1234.50".
func (a Amount) String() string { return a.Value.StringFixed(centPlaces) }

// Humanize returns a dollar figure with thousands separators, e.g.
// "-$1,234.50".
func (a Amount) Humanize() string {
	sign := ""
	if a.Value.IsNegative() {
		sign = "-"
	}
	abs := a.Value.Abs()
	whole := abs.Truncate(0)
	cents := abs.Sub(whole).Shift(centPlaces).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}

// MarshalJSON writes the amount as a bare JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// sumAmounts adds float64 figures in decimal and rounds once at the end.
func sumAmounts(values []float64) Amount {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return Amount{Value: total.Round(centPlaces)}
}
