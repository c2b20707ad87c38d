package cmd

import (
	"github.com/theirongolddev/wallet/internal/pipeline"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Monthly share of each saved expense",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	snap, _, err := a.planner.Load(cmd.Context())
	if err != nil {
		return err
	}
	shares, err := pipeline.Breakdown(snap.Transactions())
	if err != nil {
		return err
	}
	printBreakdown(cmd.OutOrStdout(), shares, a.symbol())
	return nil
}
