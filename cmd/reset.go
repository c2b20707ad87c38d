package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the balance history and the saved inputs",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if !flagResetYes {
		fmt.Fprintf(out, "  This clears all history and saved inputs in %s.\n", a.dataDir)
		fmt.Fprint(out, "  Continue? [y/N] ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Fprintln(out, "  Aborted.")
			return nil
		}
	}

	if err := a.planner.Reset(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(out, "  History and saved inputs cleared.")
	return nil
}
