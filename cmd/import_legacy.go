package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/wallet/internal/store"

	"github.com/spf13/cobra"
)

var importLegacyCmd = &cobra.Command{
	Use:   "import-legacy [user_inputs.csv]",
	Short: "Import saved inputs from the old flattened CSV format",
	Long: "Read a user_inputs.csv written by the previous version (indexed\n" +
		"expense_name_0, expense_amount_0, ... columns) and save it as the\n" +
		"current inputs. Defaults to user_inputs.csv in the data directory.",
	Args: cobra.MaximumNArgs(1),
	RunE: runImportLegacy,
}

func init() {
	rootCmd.AddCommand(importLegacyCmd)
}

func runImportLegacy(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	path := filepath.Join(a.dataDir, store.LegacyInputFile)
	if len(args) == 1 {
		path = args[0]
	}

	snap, err := store.ImportLegacyInputs(path)
	if err != nil {
		return err
	}
	snap.SavedAt = now()
	if err := a.snapshots.Save(cmd.Context(), snap); err != nil {
		return fmt.Errorf("saving imported inputs: %w", err)
	}

	a.log.WithField("path", path).Info("imported legacy inputs")
	fmt.Fprintf(cmd.OutOrStdout(), "  Imported %d expenses and %d incomes into %s\n",
		len(snap.Expenses), len(snap.Incomes), a.snapshots.Path())
	return nil
}
