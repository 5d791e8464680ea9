// Package status handles the deal status query command
package status

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"finflow/dealrecon/cmd/common"
	"finflow/dealrecon/cmd/root"
	"finflow/dealrecon/internal/query"
	"finflow/dealrecon/pkg/recon"
)

var (
	projectID    string
	categoryID   string
	contractorID string
)

// Cmd represents the status command
var Cmd = &cobra.Command{
	Use:   "status",
	Short: "Show the standing of a deal or retail box",
	Long: `Status reconciles the feed and reports the newest deal under the
(project, category, contractor) triple: budget, paid total, outstanding debt,
tranche count and the currently open tranche.`,
	Run: statusFunc,
}

func init() {
	Cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project ID")
	Cmd.Flags().StringVarP(&categoryID, "category", "c", "", "Category ID")
	Cmd.Flags().StringVar(&contractorID, "contractor", "", "Contractor ID")
	_ = Cmd.MarkFlagRequired("project")
	_ = Cmd.MarkFlagRequired("category")
}

func statusFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Status command called")

	r := recon.New(root.SharedFlags.RetailID)
	res, err := common.LoadResult(r, root.SharedFlags.Input, root.Delimiter())
	if err != nil {
		root.Log.Fatalf("Error loading feed: %v", err)
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

	status := query.New(res).DealStatus(projectID, categoryID, contractorID)
	if err := write(out, status); err != nil {
		root.Log.Fatalf("Error writing status: %v", err)
	}
}

func write(out io.Writer, status query.DealStatus) error {
	if _, err := fmt.Fprintf(out, "Budget:\t%s\n", status.TotalDeal.StringFixed(2)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Paid:\t%s\n", status.PaidTotal.StringFixed(2))
	fmt.Fprintf(out, "Debt:\t%s\n", status.Debt.StringFixed(2))
	fmt.Fprintf(out, "Tranches:\t%d\n", status.TranchesCount)
	fmt.Fprintf(out, "Closed:\t%t\n", status.IsClosed)
	if status.ActiveTranche != nil {
		fmt.Fprintf(out, "Open tranche:\t%s (%s on %s)\n",
			status.ActiveTranche.ID,
			status.ActiveTranche.Amount.StringFixed(2),
			status.ActiveTranche.Date.Format("2006-01-02"))
	} else {
		fmt.Fprintln(out, "Open tranche:\tnone")
	}
	return nil
}
