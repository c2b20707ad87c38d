package web

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/theirongolddev/wallet/internal/model"
	"github.com/theirongolddev/wallet/internal/pipeline"
)

// Form field names. Transaction rows are parallel repeated fields, one
// value per row, prefixed with "expense_" or "income_".
const (
	fieldCurrentMoney = "current_money"
	fieldSavingGoal   = "saving_goal"
	fieldName         = "name"
	fieldFrequency    = "frequency"
	fieldAmount       = "amount"
	fieldDay          = "day"
)

// parseSubmission turns posted form values into a submission, replacing
// anything malformed with a default instead of rejecting the request.
// Rows with neither a name nor an amount are the form's blank rows and
// are dropped. The returned warnings name every field that was replaced.
func parseSubmission(form url.Values, defaults model.Snapshot) (pipeline.Submission, []string) {
	var warnings []string

	money, ok := parseAmount(form.Get(fieldCurrentMoney))
	if !ok {
		warnings = append(warnings, fieldCurrentMoney)
	}
	goal, ok := parseAmount(form.Get(fieldSavingGoal))
	if !ok {
		goal = defaults.SavingGoal
		warnings = append(warnings, fieldSavingGoal)
	}

	sub := pipeline.Submission{CurrentMoney: money, SavingGoal: goal}
	for _, kind := range []model.Kind{model.Expense, model.Income} {
		txs, w := parseRows(form, kind)
		sub.Transactions = append(sub.Transactions, txs...)
		warnings = append(warnings, w...)
	}
	return sub, warnings
}

func parseRows(form url.Values, kind model.Kind) ([]model.Transaction, []string) {
	prefix := kind.String() + "_"
	names := form[prefix+fieldName]
	freqs := form[prefix+fieldFrequency]
	amounts := form[prefix+fieldAmount]
	days := form[prefix+fieldDay]

	n := max(len(names), len(amounts))
	var (
		txs      []model.Transaction
		warnings []string
	)
	for i := 0; i < n; i++ {
		name := strings.TrimSpace(at(names, i))
		rawAmount := strings.TrimSpace(at(amounts, i))
		if name == "" && rawAmount == "" {
			continue
		}
		field := func(f string) string { return prefix + f + "_" + strconv.Itoa(i) }

		amount, ok := parseAmount(rawAmount)
		if !ok {
			warnings = append(warnings, field(fieldAmount))
		}
		freq, err := model.ParseFrequency(at(freqs, i))
		if err != nil {
			freq = model.Daily
			warnings = append(warnings, field(fieldFrequency))
		}
		if name == "" {
			name = model.DefaultName(kind, len(txs))
		}
		tx := model.Transaction{Name: name, Kind: kind, Frequency: freq, Amount: amount}
		if freq == model.MonthlyOnDay {
			day, err := strconv.Atoi(strings.TrimSpace(at(days, i)))
			if err != nil || day < 1 || day > 31 {
				day = max(1, min(day, 31))
				warnings = append(warnings, field(fieldDay))
			}
			tx.Day = day
		}
		txs = append(txs, tx)
	}
	return txs, warnings
}

var (
	// 1,234 or 1,234,567.89
	thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)
	// 12,5 or 0,75
	decimalComma = regexp.MustCompile(`^[+-]?\d*,\d{1,2}$`)
)

// parseAmount reads a number. Commas are accepted as thousands separators
// in groups of three, or as a decimal comma followed by one or two digits.
// Any other comma use is malformed. Blank reads as 0 without a warning.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	switch {
	case thousandsGrouped.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	case decimalComma.MatchString(s):
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !model.IsFinite(v) {
		return 0, false
	}
	return v, true
}

func at(vals []string, i int) string {
	if i < len(vals) {
		return vals[i]
	}
	return ""
}
