// Package tranche handles the per-operation tranche status command
package tranche

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"finflow/dealrecon/cmd/common"
	"finflow/dealrecon/cmd/root"
	"finflow/dealrecon/internal/query"
	"finflow/dealrecon/pkg/recon"
)

var opID string

// Cmd represents the tranche command
var Cmd = &cobra.Command{
	Use:   "tranche",
	Short: "Show the tranche standing of a single operation",
	Long: `Tranche reconciles the feed and reports which tranche number the given
operation holds within its deal, and whether that deal has since closed.`,
	Run: trancheFunc,
}

func init() {
	Cmd.Flags().StringVar(&opID, "op", "", "Operation ID to look up")
	_ = Cmd.MarkFlagRequired("op")
}

func trancheFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Tranche command called")

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

	status := query.New(res).TrancheStatus(opID)
	if err := write(out, opID, status); err != nil {
		root.Log.Fatalf("Error writing tranche status: %v", err)
	}
}

func write(out io.Writer, opID string, status *query.TrancheStatus) error {
	if status == nil {
		_, err := fmt.Fprintf(out, "Operation %s was not processed (skipped or unknown)\n", opID)
		return err
	}
	if _, err := fmt.Fprintf(out, "Operation:\t%s\n", opID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Tranche:\t%d\n", status.TrancheIndex)
	fmt.Fprintf(out, "Deal closed:\t%t\n", status.IsDealClosed)
	return nil
}
