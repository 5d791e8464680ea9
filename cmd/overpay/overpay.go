// Package overpay handles the overpayment pre-check command
package overpay

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
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
	amountStr    string
)

// Cmd represents the overpay command
var Cmd = &cobra.Command{
	Use:   "overpay",
	Short: "Check whether a proposed tranche would overpay its deal",
	Long: `Overpay reconciles the feed and reports whether adding the given amount
as a new tranche would push the paid total past the contracted budget.`,
	Run: overpayFunc,
}

func init() {
	Cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project ID")
	Cmd.Flags().StringVarP(&categoryID, "category", "c", "", "Category ID")
	Cmd.Flags().StringVar(&contractorID, "contractor", "", "Contractor ID")
	Cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "Proposed tranche amount")
	_ = Cmd.MarkFlagRequired("project")
	_ = Cmd.MarkFlagRequired("category")
	_ = Cmd.MarkFlagRequired("amount")
}

func overpayFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Overpay command called")

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		root.Log.Fatalf("Invalid amount %q: %v", amountStr, err)
	}

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

	svc := query.New(res)
	over := svc.CheckOverpayment(projectID, categoryID, contractorID, amount)
	if err := write(out, svc, over, amount); err != nil {
		root.Log.Fatalf("Error writing overpayment check: %v", err)
	}
}

func write(out io.Writer, svc *query.Service, over bool, amount decimal.Decimal) error {
	if over {
		status := svc.DealStatus(projectID, categoryID, contractorID)
		_, err := fmt.Fprintf(out, "OVERPAYMENT: %s would raise the paid total to %s against a budget of %s\n",
			amount.StringFixed(2),
			status.PaidTotal.Add(amount).StringFixed(2),
			status.TotalDeal.StringFixed(2))
		return err
	}
	_, err := fmt.Fprintf(out, "OK: %s fits within the deal\n", amount.StringFixed(2))
	return err
}
