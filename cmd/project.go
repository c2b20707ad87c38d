package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/wallet/internal/model"
	"github.com/theirongolddev/wallet/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagBalance  float64
	flagGoal     float64
	flagExpenses []string
	flagIncomes  []string
	flagDryRun   bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the balance to the end of the month and record it",
	Long: "Project the balance from the saved inputs, overridden by any flags given.\n" +
		"Transactions are written as name:frequency:amount[:day], where frequency\n" +
		"is daily, weekly or monthly and day is required for monthly.",
	Example: "  wallet project --balance 2000 --expense rent:monthly:500:1 --expense food:daily:10",
	RunE:    runProject,
}

func init() {
	projectCmd.Flags().Float64Var(&flagBalance, "balance", 0, "Current total money")
	projectCmd.Flags().Float64Var(&flagGoal, "goal", 0, "Saving goal")
	projectCmd.Flags().StringArrayVar(&flagExpenses, "expense", nil, "Recurring expense name:frequency:amount[:day] (repeatable, replaces saved expenses)")
	projectCmd.Flags().StringArrayVar(&flagIncomes, "income", nil, "Recurring income name:frequency:amount[:day] (repeatable, replaces saved incomes)")
	projectCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the projection without recording it")
	rootCmd.AddCommand(projectCmd)
}

// runProjectSaved prints the projection of the saved inputs without
// recording anything.
func runProjectSaved(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	snap, _, err := a.planner.Load(cmd.Context())
	if err != nil {
		return err
	}
	out, err := a.planner.Compute(pipeline.SubmissionFromSnapshot(snap))
	if err != nil {
		return err
	}
	printProjection(cmd.OutOrStdout(), out, a.symbol())
	return nil
}

func runProject(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	snap, _, err := a.planner.Load(cmd.Context())
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("balance") {
		if err := checkFinite("balance", flagBalance); err != nil {
			return err
		}
		snap.CurrentMoney = flagBalance
	}
	if flags.Changed("goal") {
		if err := checkFinite("goal", flagGoal); err != nil {
			return err
		}
		snap.SavingGoal = flagGoal
	}
	if flags.Changed("expense") {
		if snap.Expenses, err = parseTransactionSpecs(flagExpenses, model.Expense); err != nil {
			return err
		}
	}
	if flags.Changed("income") {
		if snap.Incomes, err = parseTransactionSpecs(flagIncomes, model.Income); err != nil {
			return err
		}
	}

	sub := pipeline.SubmissionFromSnapshot(snap)
	var out pipeline.Outcome
	if flagDryRun {
		out, err = a.planner.Compute(sub)
	} else {
		out, err = a.planner.Submit(cmd.Context(), sub)
	}

	var perr *pipeline.PersistError
	if err != nil && !errors.As(err, &perr) {
		return err
	}
	printProjection(cmd.OutOrStdout(), out, a.symbol())
	printBreakdown(cmd.OutOrStdout(), out.Breakdown, a.symbol())
	if perr != nil {
		return fmt.Errorf("projection not recorded: %w", err)
	}
	return nil
}

// parseTransactionSpecs parses each spec and names unnamed entries after
// their position.
func parseTransactionSpecs(specs []string, kind model.Kind) ([]model.Transaction, error) {
	txs := make([]model.Transaction, 0, len(specs))
	for i, s := range specs {
		tx, err := parseTransactionSpec(s, kind)
		if err != nil {
			return nil, err
		}
		if tx.Name == "" {
			tx.Name = model.DefaultName(kind, i)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// parseTransactionSpec reads name:frequency:amount[:day]. Fields are taken
// from the right, so the name itself may contain colons. The name may be
// empty.
func parseTransactionSpec(spec string, kind model.Kind) (model.Transaction, error) {
	parts := strings.Split(spec, ":")
	n := len(parts)
	if n < 3 {
		return model.Transaction{}, &model.ValidationError{
			Field: kind.String(), Value: spec, Reason: "want name:frequency:amount[:day]",
		}
	}

	name, freqText, amountText, dayText := strings.Join(parts[:n-2], ":"), parts[n-2], parts[n-1], ""
	if n >= 4 && isMonthlyTail(parts[n-3:]) {
		name, freqText, amountText, dayText = strings.Join(parts[:n-3], ":"), parts[n-3], parts[n-2], parts[n-1]
	}

	freq, err := model.ParseFrequency(freqText)
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := parseSpecAmount(amountText)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{Name: strings.TrimSpace(name), Kind: kind, Frequency: freq, Amount: amount}
	if freq == model.MonthlyOnDay {
		if dayText == "" {
			return model.Transaction{}, &model.ValidationError{Field: "day", Value: spec, Reason: "monthly transactions need a day"}
		}
		day, err := strconv.Atoi(strings.TrimSpace(dayText))
		if err != nil {
			return model.Transaction{}, &model.ValidationError{Field: "day", Value: dayText, Reason: "not a number"}
		}
		tx.Day = day
	}
	if err := tx.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// isMonthlyTail reports whether the last three fields read as
// monthly:amount:day.
func isMonthlyTail(tail []string) bool {
	freq, err := model.ParseFrequency(tail[0])
	if err != nil || freq != model.MonthlyOnDay {
		return false
	}
	if _, err := parseSpecAmount(tail[1]); err != nil {
		return false
	}
	_, err = strconv.Atoi(strings.TrimSpace(tail[2]))
	return err == nil
}

func parseSpecAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !model.IsFinite(v) {
		return 0, &model.ValidationError{Field: "amount", Value: s, Reason: "not a finite number"}
	}
	return v, nil
}

// checkFinite rejects NaN and infinite flag values.
func checkFinite(field string, v float64) error {
	if !model.IsFinite(v) {
		return &model.ValidationError{Field: field, Value: strconv.FormatFloat(v, 'g', -1, 64), Reason: "must be a finite number"}
	}
	return nil
}
