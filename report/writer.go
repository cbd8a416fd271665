package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/warp/startup-model/founder"
	"github.com/warp/startup-model/model"
	"github.com/warp/startup-model/sweep"
)

// =============================================================================
// FORMATS
// =============================================================================

type Format string

const (
	FormatPretty Format = "pretty"
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPretty, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want pretty, csv or json)", ErrUnknownFormat, s)
	}
}

// =============================================================================
// SINGLE RUN
// =============================================================================

var runColumns = []string{
	"month", "revenue", "sales", "pipeline", "cash", "salaries", "overall",
	"ip", "pmf", "channel", "pool", "raw_sales",
}

// WriteRun writes one row per month. CSV keeps full float precision so the
// output can be plotted; pretty rounds money to cents.
func WriteRun(w io.Writer, run *founder.Run, format Format) error {
	switch format {
	case FormatCSV:
		return writeRunCSV(w, run)
	case FormatJSON:
		return writeJSON(w, runDocument{
			ID:       run.ID.String(),
			Seed:     run.Seed,
			Scenario: run.Scenario,
			Summary:  Summarize(run),
			Months:   run.Timeline.Months,
		})
	default:
		return writeRunPretty(w, run)
	}
}

type runDocument struct {
	ID       string              `json:"id"`
	Seed     uint64              `json:"seed"`
	Scenario founder.Scenario    `json:"scenario"`
	Summary  Summary             `json:"summary"`
	Months   []model.MonthRecord `json:"months"`
}

func writeRunCSV(w io.Writer, run *founder.Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(runColumns); err != nil {
		return err
	}
	for _, m := range run.Timeline.Months {
		r, f := m.Result, m.Factors
		row := []string{
			strconv.Itoa(m.Month),
			formatFloat(r.Revenue),
			strconv.Itoa(r.SalesCount),
			formatFloat(r.Pipeline),
			formatFloat(r.Cash),
			formatFloat(r.TotalSalaries),
			formatFloat(r.Overall),
			formatFloat(f.IP),
			formatFloat(f.ProductMarketFit),
			formatFloat(f.ChannelStrength),
			strconv.Itoa(f.SalesPoolSize),
			formatFloat(f.RawSales),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeRunPretty(w io.Writer, run *founder.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, c := range runColumns {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprintln(tw)
	for _, m := range run.Timeline.Months {
		r, f := m.Result, m.Factors
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%.3f\t%.3f\t%.3f\t%d\t%.2f\t\n",
			m.Month,
			NewAmount(r.Revenue).Humanize(),
			r.SalesCount,
			NewAmount(r.Pipeline).Humanize(),
			NewAmount(r.Cash).Humanize(),
			NewAmount(r.TotalSalaries).Humanize(),
			NewAmount(r.Overall).Humanize(),
			f.IP, f.ProductMarketFit, f.ChannelStrength,
			f.SalesPoolSize, f.RawSales,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nrun %s (seed %d)\n", run.ID, run.Seed)
	return writeSummaryPretty(w, Summarize(run))
}

func writeSummaryPretty(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "final cash\t%s\n", s.FinalCash.Humanize())
	fmt.Fprintf(tw, "minimum cash\t%s\t(month %d)\n", s.MinimumCash.Humanize(), s.MinimumCashMonth)
	fmt.Fprintf(tw, "insolvent from\t%s\n", monthOrNever(s.InsolvencyMonth))
	fmt.Fprintf(tw, "first sale\t%s\n", monthOrNever(s.FirstSaleMonth))
	fmt.Fprintf(tw, "total revenue\t%s\n", s.TotalRevenue.Humanize())
	fmt.Fprintf(tw, "peak revenue\t%s\t(month %d)\n", s.PeakRevenue.Humanize(), s.PeakRevenueMonth)
	fmt.Fprintf(tw, "final pipeline\t%s\n", s.FinalPipeline.Humanize())
	fmt.Fprintf(tw, "subscribers\t%d\t(%d active)\n", s.Subscribers, s.ActiveSubscribers)
	fmt.Fprintf(tw, "salaries paid\t%s\n", s.TotalSalaries.Humanize())
	fmt.Fprintf(tw, "overall\t%s\n", s.FinalOverall.Humanize())
	return tw.Flush()
}

// =============================================================================
// SWEEP
// =============================================================================

var sweepColumns = []string{
	"value", "final_cash", "minimum_cash", "minimum_cash_month", "insolvency_month",
	"first_sale_month", "total_revenue", "final_pipeline", "subscribers", "final_overall",
}

type sweepRow struct {
	Value   float64 `json:"value"`
	RunID   string  `json:"run_id"`
	Summary Summary `json:"summary"`
}

// WriteSweep writes one row per swept value.
func WriteSweep(w io.Writer, axis string, points []sweep.Point, format Format) error {
	rows := make([]sweepRow, len(points))
	for i, p := range points {
		rows[i] = sweepRow{Value: p.Value, RunID: p.Run.ID.String(), Summary: Summarize(p.Run)}
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, struct {
			Axis   string     `json:"axis"`
			Points []sweepRow `json:"points"`
		}{Axis: axis, Points: rows})
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(sweepColumns); err != nil {
			return err
		}
		for _, r := range rows {
			s := r.Summary
			if err := cw.Write([]string{
				formatFloat(r.Value),
				s.FinalCash.String(),
				s.MinimumCash.String(),
				strconv.Itoa(s.MinimumCashMonth),
				strconv.Itoa(s.InsolvencyMonth),
				strconv.Itoa(s.FirstSaleMonth),
				s.TotalRevenue.String(),
				s.FinalPipeline.String(),
				strconv.Itoa(s.Subscribers),
				s.FinalOverall.String(),
			}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "%s\t", axis)
		for _, c := range sweepColumns[1:] {
			fmt.Fprintf(tw, "%s\t", c)
		}
		fmt.Fprintln(tw)
		for _, r := range rows {
			s := r.Summary
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%d\t%s\t\n",
				formatFloat(r.Value),
				s.FinalCash.Humanize(),
				s.MinimumCash.Humanize(),
				s.MinimumCashMonth,
				monthOrNever(s.InsolvencyMonth),
				monthOrNever(s.FirstSaleMonth),
				s.TotalRevenue.Humanize(),
				s.FinalPipeline.Humanize(),
				s.Subscribers,
				s.FinalOverall.Humanize(),
			)
		}
		return tw.Flush()
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func monthOrNever(month int) string {
	if month == 0 {
		return "never"
	}
	return strconv.Itoa(month)
}
