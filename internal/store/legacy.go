package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/wallet/internal/model"
)

// ImportLegacyInputs reads the older flattened inputs CSV, where each
// transaction is spread over indexed columns such as expense_name_0 and
// income_amount_1, and returns the equivalent snapshot. Missing or
// non-numeric cells fall back to zero values. The first column may be a
// pandas-style unnamed index and is ignored when blank.
func ImportLegacyInputs(path string) (model.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("opening legacy inputs: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.Snapshot{}, errors.New("legacy inputs file is empty")
		}
		return model.Snapshot{}, fmt.Errorf("reading legacy header: %w", err)
	}
	row, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.Snapshot{}, errors.New("legacy inputs file has no data row")
		}
		return model.Snapshot{}, fmt.Errorf("reading legacy row: %w", err)
	}

	cells := make(map[string]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || i >= len(row) {
			continue
		}
		cells[name] = strings.TrimSpace(row[i])
	}

	snap := model.Snapshot{
		CurrentMoney: legacyFloat(cells["current_money"]),
		SavingGoal:   legacyFloat(cells["saving_goal"]),
	}

	// The oldest layout had a single daily_spending column.
	if v, ok := cells["daily_spending"]; ok {
		snap.Expenses = append(snap.Expenses, model.Transaction{
			Name:      "Daily spending",
			Kind:      model.Expense,
			Frequency: model.Daily,
			Amount:    legacyFloat(v),
		})
	}

	snap.Expenses = append(snap.Expenses, legacyTransactions(cells, "expense", model.Expense)...)
	snap.Incomes = append(snap.Incomes, legacyTransactions(cells, "income", model.Income)...)
	return snap, nil
}

// legacyTransactions reads num_{prefix}s rows. The count is capped at the
// highest row index that has a column in the header, so a corrupt count
// cannot produce more rows than the file describes.
func legacyTransactions(cells map[string]string, prefix string, kind model.Kind) []model.Transaction {
	n := legacyRowColumns(cells, prefix)
	if count := legacyFloat(cells["num_"+prefix+"s"]); count < float64(n) {
		n = int(count)
	}
	var out []model.Transaction
	for i := 0; i < n; i++ {
		col := func(field string) string {
			return cells[fmt.Sprintf("%s_%s_%d", prefix, field, i)]
		}
		freq, err := model.ParseFrequency(col("frequency"))
		if err != nil {
			freq = model.Daily
		}
		name := col("name")
		if name == "" {
			name = model.DefaultName(kind, i)
		}
		t := model.Transaction{
			Name:      name,
			Kind:      kind,
			Frequency: freq,
			Amount:    legacyFloat(col("amount")),
		}
		if freq == model.MonthlyOnDay {
			t.Day = clampDay(int(legacyFloat(col("day"))))
		}
		out = append(out, t)
	}
	return out
}

func legacyFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}

// legacyRowColumns returns one past the highest index i with any
// {prefix}_{field}_{i} column.
func legacyRowColumns(cells map[string]string, prefix string) int {
	n := 0
	for name := range cells {
		rest, ok := strings.CutPrefix(name, prefix+"_")
		if !ok {
			continue
		}
		idx := strings.LastIndexByte(rest, '_')
		if idx < 0 {
			continue
		}
		switch rest[:idx] {
		case "name", "frequency", "amount", "day":
		default:
			continue
		}
		if i, err := strconv.Atoi(rest[idx+1:]); err == nil && i >= 0 {
			n = max(n, i+1)
		}
	}
	return n
}
