package cmd

import (
	"github.com/spf13/cobra"
)

var flagHistoryLast int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recorded end-of-month balances",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLast, "last", "n", 0, "Only show the last N records")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.history.List(cmd.Context())
	if err != nil {
		return err
	}
	if flagHistoryLast > 0 && len(records) > flagHistoryLast {
		records = records[len(records)-flagHistoryLast:]
	}
	printHistory(cmd.OutOrStdout(), records, a.symbol())
	return nil
}
