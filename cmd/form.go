package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/wallet/internal/model"
	"github.com/theirongolddev/wallet/internal/pipeline"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Edit the inputs interactively and record the projection",
	Long: "Walk through the current money, the saving goal and the recurring\n" +
		"expenses and incomes, pre-filled from the last submission. Each\n" +
		"transaction is one line of name:frequency:amount[:day].",
	RunE: runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

// formValues holds the text the form edits in place.
type formValues struct {
	CurrentMoney string
	SavingGoal   string
	Expenses     string
	Incomes      string
	Record       bool
}

func runForm(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	snap, _, err := a.planner.Load(cmd.Context())
	if err != nil {
		return err
	}

	v := formValuesFromSnapshot(snap)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current total money").
				Value(&v.CurrentMoney).
				Validate(validateAmount),
			huh.NewInput().
				Title("Saving goal").
				Value(&v.SavingGoal).
				Validate(validateAmount),
		).Title("Balance"),
		huh.NewGroup(
			huh.NewText().
				Title("Recurring expenses").
				Description("One per line: name:daily|weekly|monthly:amount[:day]").
				Lines(6).
				Value(&v.Expenses).
				Validate(validateSpecLines(model.Expense)),
			huh.NewText().
				Title("Recurring incomes").
				Description("One per line: name:daily|weekly|monthly:amount[:day]").
				Lines(4).
				Value(&v.Incomes).
				Validate(validateSpecLines(model.Income)),
		).Title("Transactions"),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Record this projection in the history?").
				Affirmative("Record").
				Negative("Preview only").
				Value(&v.Record),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Aborted.")
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	sub, err := v.submission()
	if err != nil {
		return err
	}

	var out pipeline.Outcome
	if v.Record {
		out, err = a.planner.Submit(cmd.Context(), sub)
	} else {
		out, err = a.planner.Compute(sub)
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

func formValuesFromSnapshot(snap model.Snapshot) formValues {
	return formValues{
		CurrentMoney: strconv.FormatFloat(snap.CurrentMoney, 'f', -1, 64),
		SavingGoal:   strconv.FormatFloat(snap.SavingGoal, 'f', -1, 64),
		Expenses:     formatTransactionSpecs(snap.Expenses),
		Incomes:      formatTransactionSpecs(snap.Incomes),
		Record:       true,
	}
}

func (v formValues) submission() (pipeline.Submission, error) {
	money, err := parseFormAmount(v.CurrentMoney)
	if err != nil {
		return pipeline.Submission{}, &model.ValidationError{Field: "current money", Value: v.CurrentMoney, Reason: "not a number"}
	}
	goal, err := parseFormAmount(v.SavingGoal)
	if err != nil {
		return pipeline.Submission{}, &model.ValidationError{Field: "saving goal", Value: v.SavingGoal, Reason: "not a number"}
	}
	expenses, err := parseTransactionSpecs(specLines(v.Expenses), model.Expense)
	if err != nil {
		return pipeline.Submission{}, err
	}
	incomes, err := parseTransactionSpecs(specLines(v.Incomes), model.Income)
	if err != nil {
		return pipeline.Submission{}, err
	}
	return pipeline.Submission{
		CurrentMoney: money,
		SavingGoal:   goal,
		Transactions: append(expenses, incomes...),
	}, nil
}

func parseFormAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !model.IsFinite(v) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

func validateAmount(s string) error {
	if _, err := parseFormAmount(s); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validateSpecLines(kind model.Kind) func(string) error {
	return func(s string) error {
		_, err := parseTransactionSpecs(specLines(s), kind)
		return err
	}
}

// specLines splits text into non-blank trimmed lines.
func specLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// formatTransactionSpec is the inverse of parseTransactionSpec.
func formatTransactionSpec(tx model.Transaction) string {
	s := fmt.Sprintf("%s:%s:%s", tx.Name, tx.Frequency, strconv.FormatFloat(tx.Amount, 'f', -1, 64))
	if tx.Frequency == model.MonthlyOnDay {
		s += ":" + strconv.Itoa(tx.Day)
	}
	return s
}

func formatTransactionSpecs(txs []model.Transaction) string {
	lines := make([]string, len(txs))
	for i, tx := range txs {
		lines[i] = formatTransactionSpec(tx)
	}
	return strings.Join(lines, "\n")
}
