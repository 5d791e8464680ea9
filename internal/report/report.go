// Package report renders reconciliation output for the CLI: the four-figure
// liability summary as text, and the per-deal breakdown as text or CSV.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/liability"
)

// DealLine is one row of the per-deal breakdown.
type DealLine struct {
	GroupKey  string `csv:"GroupKey"`
	DealID    string `csv:"DealId"`
	Kind      string `csv:"Kind"`
	Budget    string `csv:"Budget"`
	Received  string `csv:"Received"`
	WorkedOut string `csv:"WorkedOut"`
	Tranches  int    `csv:"Tranches"`
	Debt      string `csv:"Debt"`
	Active    bool   `csv:"Active"`
}

// Breakdown flattens a result into deal lines, ordered by group key and then
// by the deal's position in its history.
func Breakdown(res *engine.Result) []DealLine {
	var lines []DealLine
	for _, key := range res.Keys() {
		for _, deal := range res.History(key) {
			lines = append(lines, DealLine{
				GroupKey:  key,
				DealID:    deal.ID,
				Kind:      string(deal.Kind),
				Budget:    deal.Budget.StringFixed(2),
				Received:  deal.Received.StringFixed(2),
				WorkedOut: deal.WorkedOut.StringFixed(2),
				Tranches:  deal.IncomeCount,
				Debt:      deal.Debt().StringFixed(2),
				Active:    deal.IsActive(),
			})
		}
	}
	return lines
}

// WriteSummaryText renders the liability summary as an aligned text table.
func WriteSummaryText(w io.Writer, sum liability.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "They owe us (forecast):\t%s\n", sum.TheyOweTotal.StringFixed(2))
	fmt.Fprintf(tw, "They owe us (current):\t%s\n", sum.TheyOweCurrent.StringFixed(2))
	fmt.Fprintf(tw, "We owe them (forecast):\t%s\n", sum.WeOweTotal.StringFixed(2))
	fmt.Fprintf(tw, "We owe them (current):\t%s\n", sum.WeOweCurrent.StringFixed(2))
	return tw.Flush()
}

// WriteBreakdownText renders the deal breakdown as an aligned text table.
func WriteBreakdownText(w io.Writer, lines []DealLine) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tDEAL\tKIND\tBUDGET\tRECEIVED\tWORKED\tTRANCHES\tDEBT\tACTIVE")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%t\n",
			l.GroupKey, l.DealID, l.Kind, l.Budget, l.Received, l.WorkedOut,
			l.Tranches, l.Debt, l.Active)
	}
	return tw.Flush()
}

// WriteBreakdownCSV renders the deal breakdown as CSV.
func WriteBreakdownCSV(w io.Writer, lines []DealLine) error {
	if err := gocsv.Marshal(&lines, w); err != nil {
		return fmt.Errorf("error writing breakdown CSV: %w", err)
	}
	return nil
}
