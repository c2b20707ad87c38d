package pipeline

import (
	"sort"

	"github.com/theirongolddev/wallet/internal/model"
)

// Breakdown computes each expense's monthly-equivalent total and its share
// of all expenses. Income entries are skipped. When there are no expenses
// or every total is zero the result is empty rather than NaN.
func Breakdown(txs []model.Transaction) ([]model.ExpenseShare, error) {
	shares := make([]model.ExpenseShare, 0, len(txs))
	var sum float64

	for _, tx := range txs {
		if tx.Kind == model.Income {
			continue
		}
		monthly, err := MonthlyEquivalent(tx)
		if err != nil {
			return nil, err
		}
		shares = append(shares, model.ExpenseShare{Name: tx.Name, MonthlyTotal: monthly})
		sum += monthly
	}

	if len(shares) == 0 || sum == 0 {
		return []model.ExpenseShare{}, nil
	}

	for i := range shares {
		shares[i].Percentage = shares[i].MonthlyTotal / sum * 100
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].MonthlyTotal > shares[j].MonthlyTotal
	})

	return shares, nil
}
