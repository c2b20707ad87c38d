package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/wallet/internal/cli"
	"github.com/theirongolddev/wallet/internal/model"
	"github.com/theirongolddev/wallet/internal/pipeline"
)

func printProjection(w io.Writer, out pipeline.Outcome, symbol string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("PROJECTION  Day %d to %d", out.Request.StartDay, out.Request.HorizonEndDay)))
	fmt.Fprintln(w)

	days := out.Projection.Days
	rows := make([][]string, 0, len(days)+2)
	for _, d := range days {
		rows = append(rows, []string{strconv.Itoa(d.Day), cli.FormatMoney(d.Balance, symbol)})
	}
	if len(days) > 0 {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Change", cli.FormatSignedMoney(out.Summary.FinalBalance-out.Request.StartingBalance, symbol)})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Remaining Balance"},
		Rows:    rows,
	}))

	if len(days) > 1 {
		fmt.Fprintf(w, "  %s\n", cli.RenderSparkline(out.Projection.Balances()))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderSummary(out.Summary.FinalBalance, out.Summary.SavingGoal, out.Summary.Disposable, symbol))
	if bags := cli.MoneyBags(out.Summary.FinalBalance); bags != "" {
		fmt.Fprintf(w, "\n  %s\n", bags)
	}
	fmt.Fprintln(w)
}

func printBreakdown(w io.Writer, shares []model.ExpenseShare, symbol string) {
	if len(shares) == 0 {
		fmt.Fprintln(w, "\n  No expenses to break down.")
		return
	}

	maxTotal := shares[0].MonthlyTotal
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{
			s.Name,
			cli.FormatMoney(s.MonthlyTotal, symbol),
			cli.FormatShare(s.Percentage),
			cli.RenderHorizontalBar(s.MonthlyTotal, maxTotal, 20),
		})
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Monthly expenses",
		Headers: []string{"Expense", "Per month", "Share", ""},
		Rows:    rows,
	}))
	fmt.Fprintln(w)
}

func printHistory(w io.Writer, records []model.BalanceHistoryRecord, symbol string) {
	if len(records) == 0 {
		fmt.Fprintln(w, "\n  No balance history yet.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("BALANCE HISTORY  %d records", len(records))))
	fmt.Fprintln(w)

	values := make([]float64, len(records))
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		values[i] = r.FinalBalance
		rows = append(rows, []string{r.Date.Format("2006-01-02"), cli.FormatMoney(r.FinalBalance, symbol)})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Remaining Balance"},
		Rows:    rows,
	}))
	if len(values) > 1 {
		fmt.Fprintf(w, "  %s\n", cli.RenderSparkline(values))
	}
	fmt.Fprintln(w)
}
