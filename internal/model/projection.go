package model

import "time"

// DefaultHorizonEndDay is the last day of every projected month.
const DefaultHorizonEndDay = 30

// ProjectionRequest holds the inputs to one projection run.
type ProjectionRequest struct {
	StartingBalance float64
	StartDay        int
	HorizonEndDay   int
	Transactions    []Transaction
}

// DailyBalance is the projected balance at the end of one day.
type DailyBalance struct {
	Day     int     `json:"day"`
	Balance float64 `json:"balance"`
}

// ProjectionResult is the day-by-day series for the whole horizon, ordered by day.
type ProjectionResult struct {
	Days []DailyBalance `json:"days"`
}

// FinalBalance returns the balance on the last day, or 0 for an empty result.
func (r ProjectionResult) FinalBalance() float64 {
	if len(r.Days) == 0 {
		return 0
	}
	return r.Days[len(r.Days)-1].Balance
}

// Balances returns just the balance column, for charting.
func (r ProjectionResult) Balances() []float64 {
	out := make([]float64, len(r.Days))
	for i, d := range r.Days {
		out[i] = d.Balance
	}
	return out
}

// ExpenseShare is one row of the monthly expense breakdown.
type ExpenseShare struct {
	Name         string  `json:"name"`
	MonthlyTotal float64 `json:"monthly_total"`
	Percentage   float64 `json:"percentage"`
}

// Summary holds the headline figures shown after a submission.
type Summary struct {
	FinalBalance float64 `json:"final_balance"`
	SavingGoal   float64 `json:"saving_goal"`
	Disposable   float64 `json:"disposable"`
}

// BalanceHistoryRecord is one appended line of the balance history log.
// RecordedAt is the moment the record was made; only the SQLite backend
// keeps it.
type BalanceHistoryRecord struct {
	Date         time.Time `json:"date"`
	FinalBalance float64   `json:"remaining_balance"`
	RecordedAt   time.Time `json:"-"`
}
