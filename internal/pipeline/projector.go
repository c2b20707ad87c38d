package pipeline

import (
	"fmt"

	"github.com/theirongolddev/wallet/internal/model"

	"github.com/shopspring/decimal"
)

// Project runs the day loop from req.StartDay to req.HorizonEndDay inclusive.
// Each emitted day already reflects that day's net flow, so the starting
// balance never appears unmodified as its own row. A zero HorizonEndDay
// means the default 30-day month.
func Project(req model.ProjectionRequest) (model.ProjectionResult, error) {
	end := req.HorizonEndDay
	if end == 0 {
		end = model.DefaultHorizonEndDay
	}
	if err := validateRequest(req.StartingBalance, req.StartDay, end, req.Transactions); err != nil {
		return model.ProjectionResult{}, err
	}

	balance := decimal.NewFromFloat(req.StartingBalance)
	days := make([]model.DailyBalance, 0, end-req.StartDay+1)

	for day := req.StartDay; day <= end; day++ {
		var expense, income decimal.Decimal
		for _, tx := range req.Transactions {
			amount, err := Fires(tx, day, req.StartDay)
			if err != nil {
				return model.ProjectionResult{}, err
			}
			if amount == 0 {
				continue
			}
			if tx.Kind == model.Income {
				income = income.Add(decimal.NewFromFloat(amount))
			} else {
				expense = expense.Add(decimal.NewFromFloat(amount))
			}
		}

		balance = balance.Sub(expense).Add(income)
		days = append(days, model.DailyBalance{Day: day, Balance: balance.InexactFloat64()})
	}

	return model.ProjectionResult{Days: days}, nil
}

func validateRequest(startingBalance float64, startDay, endDay int, txs []model.Transaction) error {
	if !model.IsFinite(startingBalance) {
		return &model.ValidationError{Field: "starting_balance", Value: fmt.Sprint(startingBalance), Reason: "must be a finite number"}
	}
	if startDay < 1 || startDay > 31 {
		return &model.ValidationError{Field: "start_day", Value: fmt.Sprint(startDay), Reason: "must be between 1 and 31"}
	}
	if endDay < startDay {
		return &model.ValidationError{
			Field:  "horizon_end_day",
			Value:  fmt.Sprint(endDay),
			Reason: fmt.Sprintf("must not be before start day %d", startDay),
		}
	}
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}

// Summarize derives the headline figures for a finished projection.
func Summarize(result model.ProjectionResult, savingGoal float64) model.Summary {
	final := result.FinalBalance()
	return model.Summary{
		FinalBalance: final,
		SavingGoal:   savingGoal,
		Disposable:   decimal.NewFromFloat(final).Sub(decimal.NewFromFloat(savingGoal)).InexactFloat64(),
	}
}
