package model

import "time"

// Snapshot is the most recently submitted set of inputs, used to pre-fill
// the form on the next session.
type Snapshot struct {
	CurrentMoney float64       `json:"current_money"`
	SavingGoal   float64       `json:"saving_goal"`
	SavedAt      time.Time     `json:"saved_at"`
	Expenses     []Transaction `json:"expenses"`
	Incomes      []Transaction `json:"incomes"`
}

// Transactions returns expenses and incomes as one list with Kind set.
func (s Snapshot) Transactions() []Transaction {
	out := make([]Transaction, 0, len(s.Expenses)+len(s.Incomes))
	for _, t := range s.Expenses {
		t.Kind = Expense
		out = append(out, t)
	}
	for _, t := range s.Incomes {
		t.Kind = Income
		out = append(out, t)
	}
	return out
}

// SplitTransactions sorts a mixed list into the expense and income slices.
func (s *Snapshot) SplitTransactions(txs []Transaction) {
	s.Expenses, s.Incomes = nil, nil
	for _, t := range txs {
		if t.Kind == Income {
			s.Incomes = append(s.Incomes, t)
		} else {
			s.Expenses = append(s.Expenses, t)
		}
	}
}
