package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/wallet/internal/model"
)

func TestParseTransactionSpec(t *testing.T) {
	cases := []struct {
		spec    string
		want    model.Transaction
		wantErr bool
	}{
		{spec: "food:daily:10", want: model.Transaction{Name: "food", Kind: model.Expense, Frequency: model.Daily, Amount: 10}},
		{spec: " gym : weekly : 12.5", want: model.Transaction{Name: "gym", Kind: model.Expense, Frequency: model.Weekly, Amount: 12.5}},
		{spec: "rent:monthly:500:1", want: model.Transaction{Name: "rent", Kind: model.Expense, Frequency: model.MonthlyOnDay, Amount: 500, Day: 1}},
		{spec: "refund:daily:-3", want: model.Transaction{Name: "refund", Kind: model.Expense, Frequency: model.Daily, Amount: -3}},
		{spec: "rent:monthly:500", wantErr: true},
		{spec: "rent:monthly:500:32", wantErr: true},
		{spec: "rent:monthly:500:first", wantErr: true},
		{spec: "food:hourly:10", wantErr: true},
		{spec: "food:daily:ten", wantErr: true},
		{spec: ":daily:10", want: model.Transaction{Kind: model.Expense, Frequency: model.Daily, Amount: 10}},
		{spec: "a:b:weekly:3", want: model.Transaction{Name: "a:b", Kind: model.Expense, Frequency: model.Weekly, Amount: 3}},
		{spec: "pay:monthly:monthly:500:1", want: model.Transaction{Name: "pay:monthly", Kind: model.Expense, Frequency: model.MonthlyOnDay, Amount: 500, Day: 1}},
		{spec: "x:daily:NaN", wantErr: true},
		{spec: "x:daily:Inf", wantErr: true},
		{spec: "x:monthly:-Inf:3", wantErr: true},
		{spec: "food:daily", wantErr: true},
		{spec: "a:daily:1:2:3", wantErr: true},
	}
	for _, c := range cases {
		got, err := parseTransactionSpec(c.spec, model.Expense)
		if c.wantErr {
			var verr *model.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("parseTransactionSpec(%q) err = %v, want ValidationError", c.spec, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTransactionSpec(%q): %v", c.spec, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseTransactionSpec(%q) = %+v, want %+v", c.spec, got, c.want)
		}
	}
}

func TestFormatTransactionSpec_ParsesBack(t *testing.T) {
	tx := model.Transaction{Name: "rent", Kind: model.Expense, Frequency: model.MonthlyOnDay, Amount: 512.5, Day: 3}
	spec := formatTransactionSpec(tx)
	if spec != "rent:monthly:512.5:3" {
		t.Fatalf("spec = %q", spec)
	}
	got, err := parseTransactionSpec(spec, model.Expense)
	if err != nil || got != tx {
		t.Fatalf("parse back = %+v, %v", got, err)
	}
}

func TestParseTransactionSpecs_NamesUnnamedEntries(t *testing.T) {
	txs, err := parseTransactionSpecs([]string{"rent:monthly:500:1", ":daily:5"}, model.Income)
	if err != nil {
		t.Fatal(err)
	}
	if txs[0].Name != "rent" || txs[1].Name != "Income 2" {
		t.Fatalf("names = %q, %q", txs[0].Name, txs[1].Name)
	}
}

func TestFormValues_SnapshotRoundTrip(t *testing.T) {
	snap := model.Snapshot{
		CurrentMoney: 250,
		SavingGoal:   100,
		Expenses: []model.Transaction{
			{Frequency: model.Daily, Amount: 5},
			{Name: "bills: phone", Frequency: model.MonthlyOnDay, Amount: 30, Day: 12},
			{Name: "x:monthly", Frequency: model.Weekly, Amount: 2},
		},
		Incomes: []model.Transaction{
			{Name: "salary", Frequency: model.MonthlyOnDay, Amount: 2000, Day: 25},
		},
	}
	v := formValuesFromSnapshot(snap)
	if err := validateSpecLines(model.Expense)(v.Expenses); err != nil {
		t.Fatalf("pre-filled expenses fail validation: %v", err)
	}

	sub, err := v.submission()
	if err != nil {
		t.Fatalf("submission: %v", err)
	}
	want := []model.Transaction{
		{Name: "Expense 1", Kind: model.Expense, Frequency: model.Daily, Amount: 5},
		{Name: "bills: phone", Kind: model.Expense, Frequency: model.MonthlyOnDay, Amount: 30, Day: 12},
		{Name: "x:monthly", Kind: model.Expense, Frequency: model.Weekly, Amount: 2},
		{Name: "salary", Kind: model.Income, Frequency: model.MonthlyOnDay, Amount: 2000, Day: 25},
	}
	if len(sub.Transactions) != len(want) {
		t.Fatalf("transactions = %+v", sub.Transactions)
	}
	for i := range want {
		if sub.Transactions[i] != want[i] {
			t.Errorf("transaction %d = %+v, want %+v", i, sub.Transactions[i], want[i])
		}
	}
}

func TestFormValues_RejectsNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "Inf", "-inf"} {
		if err := validateAmount(s); err == nil {
			t.Errorf("validateAmount(%q) accepted a non-finite number", s)
		}
		v := formValues{CurrentMoney: s}
		if _, err := v.submission(); err == nil {
			t.Errorf("submission with money %q succeeded", s)
		}
	}
}

func TestFormValues_Submission(t *testing.T) {
	v := formValues{
		CurrentMoney: "2000",
		SavingGoal:   "",
		Expenses:     "rent:monthly:500:1\n\n  food:daily:10  \n",
		Incomes:      "salary:monthly:3000:25",
	}
	sub, err := v.submission()
	if err != nil {
		t.Fatal(err)
	}
	if sub.CurrentMoney != 2000 || sub.SavingGoal != 0 {
		t.Fatalf("money/goal = %v/%v", sub.CurrentMoney, sub.SavingGoal)
	}
	if len(sub.Transactions) != 3 || sub.Transactions[2].Kind != model.Income {
		t.Fatalf("transactions = %+v", sub.Transactions)
	}

	v.CurrentMoney = "lots"
	if _, err := v.submission(); err == nil {
		t.Fatal("expected error for non-numeric money")
	}
}

func TestFormValuesFromSnapshot(t *testing.T) {
	v := formValuesFromSnapshot(model.Snapshot{
		CurrentMoney: 1500.25,
		SavingGoal:   700,
		Expenses: []model.Transaction{
			{Name: "rent", Frequency: model.MonthlyOnDay, Amount: 500, Day: 1},
			{Name: "food", Frequency: model.Daily, Amount: 7},
		},
	})
	if v.CurrentMoney != "1500.25" || v.SavingGoal != "700" {
		t.Fatalf("money/goal = %q/%q", v.CurrentMoney, v.SavingGoal)
	}
	if v.Expenses != "rent:monthly:500:1\nfood:daily:7" || v.Incomes != "" {
		t.Fatalf("specs = %q / %q", v.Expenses, v.Incomes)
	}
	if !v.Record {
		t.Fatal("recording should be the default")
	}
}

// runCLI executes the root command against a throwaway data dir.
func runCLI(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	base := []string{"--config", filepath.Join(dir, "missing.toml"), "--data-dir", dir, "--quiet"}
	rootCmd.SetArgs(append(base, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func fixClock(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })
}

func TestRoot_ProjectsDefaults(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	out, err := runCLI(t, dir, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Day 14 to 30", "-€119.00", "-€819.00", "miss your saving goal"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Nothing is recorded by the bare command.
	out, err = runCLI(t, dir, "", "history")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No balance history yet.") {
		t.Fatalf("history output:\n%s", out)
	}
}

func TestProject_RecordsThenReset(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "project",
		"--balance", "2000", "--goal", "700",
		"--expense", "food:daily:10", "--expense", "rent:monthly:500:20")
	if err != nil {
		t.Fatal(err)
	}
	// 2000 - 17*10 - 500
	for _, want := range []string{"€1,330.00", "€630.00", "Monthly expenses", "rent"} {
		if !strings.Contains(out, want) {
			t.Errorf("project output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, dir, "", "history")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "2026-02-14") || !strings.Contains(out, "€1,330.00") {
		t.Fatalf("history output:\n%s", out)
	}

	out, err = runCLI(t, dir, "n\n", "reset")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Aborted.") {
		t.Fatalf("reset without confirmation:\n%s", out)
	}

	if _, err := runCLI(t, dir, "", "reset", "--yes"); err != nil {
		t.Fatal(err)
	}
	out, err = runCLI(t, dir, "", "history")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No balance history yet.") {
		t.Fatalf("history after reset:\n%s", out)
	}
}

func TestProject_RejectsNonFiniteBalance(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	_, err := runCLI(t, dir, "", "project", "--balance", "NaN", "--dry-run")
	var verr *model.ValidationError
	if !errors.As(err, &verr) || verr.Field != "balance" {
		t.Fatalf("err = %v, want balance ValidationError", err)
	}
}
