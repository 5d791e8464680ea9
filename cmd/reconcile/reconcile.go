// Package reconcile handles the full-feed reconciliation command
package reconcile

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"finflow/dealrecon/cmd/common"
	"finflow/dealrecon/cmd/root"
	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/liability"
	"finflow/dealrecon/internal/report"
	"finflow/dealrecon/pkg/recon"
)

var asCSV bool

// Cmd represents the reconcile command
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile an operations feed into deals and retail boxes",
	Long: `Reconcile rebuilds the full deal and retail-box state from the operations
feed and prints the liability summary followed by a per-deal breakdown.`,
	Run: reconcileFunc,
}

func init() {
	Cmd.Flags().BoolVar(&asCSV, "csv", false, "Write the breakdown as CSV instead of text")
}

func reconcileFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Reconcile command called")
	root.Log.Infof("Input feed file: %s", root.SharedFlags.Input)

	r := recon.New(root.SharedFlags.RetailID)
	res, err := common.LoadResult(r, root.SharedFlags.Input, root.Delimiter())
	if err != nil {
		root.Log.Fatalf("Error loading feed: %v", err)
	}

	asOf, err := common.ResolveAsOf(root.SharedFlags.AsOf)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	out, closeFn, err := common.OpenOutput(root.SharedFlags.Output)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	defer func() {
		if err := closeFn(); err != nil {
			root.Log.Warnf("Failed to close output: %v", err)
		}
	}()

	if err := write(out, res, asOf, asCSV); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Reconciliation completed successfully!")
}

// write renders the liability summary and the per-deal breakdown. CSV output
// carries only the breakdown so it stays machine-readable.
func write(out io.Writer, res *engine.Result, asOf time.Time, csvOut bool) error {
	lines := report.Breakdown(res)

	if csvOut {
		return report.WriteBreakdownCSV(out, lines)
	}

	sum := liability.Summarize(res, asOf)
	if err := report.WriteSummaryText(out, sum); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return report.WriteBreakdownText(out, lines)
}
