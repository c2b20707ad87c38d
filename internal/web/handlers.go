package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/wallet/internal/cli"
	"github.com/theirongolddev/wallet/internal/model"
	"github.com/theirongolddev/wallet/internal/pipeline"
)

type rowView struct {
	Name      string
	Frequency string
	Amount    string
	Day       int
}

// rowsView feeds the "rows" template for one transaction list.
type rowsView struct {
	Kind        string
	Rows        []rowView
	Frequencies []model.Frequency
}

func newRowsView(kind string, rows []rowView, freqs []model.Frequency) rowsView {
	return rowsView{Kind: kind, Rows: rows, Frequencies: freqs}
}

type formView struct {
	CurrentMoney string
	SavingGoal   string
	Expenses     []rowView
	Incomes      []rowView
}

type resultView struct {
	StartDay      int
	HorizonEndDay int
	Days          []model.DailyBalance
	Summary       model.Summary
	Breakdown     []model.ExpenseShare
	MoneyBags     string
	Chart         chartView
}

type pageData struct {
	Form        formView
	Frequencies []model.Frequency
	Result      *resultView
	History     []model.BalanceHistoryRecord
	HistoryLine chartView
	Error       string
	Warnings    []string
}

// projectionResponse is the JSON body of /api/projection.
type projectionResponse struct {
	StartingBalance float64              `json:"starting_balance"`
	StartDay        int                  `json:"start_day"`
	HorizonEndDay   int                  `json:"horizon_end_day"`
	Transactions    []model.Transaction  `json:"transactions"`
	Days            []model.DailyBalance `json:"days"`
	Breakdown       []model.ExpenseShare `json:"breakdown"`
	Summary         model.Summary        `json:"summary"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap, history, err := s.planner.Load(r.Context())
	data := pageData{
		Form:        formFromSnapshot(snap),
		Frequencies: model.Frequencies,
	}
	if err != nil {
		s.log.WithError(err).Error("loading saved inputs")
		data.Error = err.Error()
		s.render(w, http.StatusInternalServerError, data)
		return
	}
	data.setHistory(history)
	s.render(w, http.StatusOK, data)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	sub, replaced := parseSubmission(r.PostForm, s.planner.DefaultSnapshot())
	if len(replaced) > 0 {
		s.log.WithField("fields", strings.Join(replaced, ",")).Warn("default-filled malformed form fields")
	}

	data := pageData{
		Form:        formFromSubmission(sub),
		Frequencies: model.Frequencies,
	}
	for _, f := range replaced {
		data.Warnings = append(data.Warnings, "Could not read "+f+", used a default instead.")
	}

	out, err := s.planner.Submit(r.Context(), sub)
	var (
		verr *model.ValidationError
		perr *pipeline.PersistError
	)
	switch {
	case errors.As(err, &verr):
		data.Error = verr.Error()
		s.render(w, http.StatusUnprocessableEntity, data)
		return
	case errors.As(err, &perr):
		data.Warnings = append(data.Warnings, "The projection was not saved: "+err.Error())
	case err != nil:
		s.log.WithError(err).Error("submit failed")
		data.Error = err.Error()
		s.render(w, http.StatusInternalServerError, data)
		return
	}

	summary := out.Summary
	s.publish(Event{Type: EventSubmitted, Timestamp: time.Now(), Summary: &summary, Persisted: err == nil})

	data.Result = &resultView{
		StartDay:      out.Request.StartDay,
		HorizonEndDay: out.Request.HorizonEndDay,
		Days:          out.Projection.Days,
		Summary:       out.Summary,
		Breakdown:     out.Breakdown,
		MoneyBags:     cli.MoneyBags(out.Summary.FinalBalance),
		Chart:         newChartView(out.Projection.Balances()),
	}
	if _, history, err := s.planner.Load(r.Context()); err == nil {
		data.setHistory(history)
	}
	s.render(w, http.StatusOK, data)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	if err := s.planner.Reset(r.Context()); err != nil {
		s.log.WithError(err).Error("reset failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.publish(Event{Type: EventReset, Timestamp: time.Now(), Persisted: true})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAPIProjection(w http.ResponseWriter, r *http.Request) {
	resp, err := s.projectSaved(r.Context())
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": verr.Error()})
	case err != nil:
		s.log.WithError(err).Error("projecting saved inputs")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) projectSaved(ctx context.Context) (projectionResponse, error) {
	snap, _, err := s.planner.Load(ctx)
	if err != nil {
		return projectionResponse{}, err
	}
	sub := pipeline.SubmissionFromSnapshot(snap)
	out, err := s.planner.Compute(sub)
	if err != nil {
		return projectionResponse{}, err
	}
	return projectionResponse{
		StartingBalance: out.Request.StartingBalance,
		StartDay:        out.Request.StartDay,
		HorizonEndDay:   out.Request.HorizonEndDay,
		Transactions:    sub.Transactions,
		Days:            out.Projection.Days,
		Breakdown:       out.Breakdown,
		Summary:         out.Summary,
	}, nil
}

func (s *Server) handleAPIHistory(w http.ResponseWriter, r *http.Request) {
	_, history, err := s.planner.Load(r.Context())
	if err != nil {
		s.log.WithError(err).Error("loading history")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if history == nil {
		history = []model.BalanceHistoryRecord{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.log.WithError(err).Error("executing template")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (d *pageData) setHistory(history []model.BalanceHistoryRecord) {
	d.History = history
	values := make([]float64, len(history))
	for i, h := range history {
		values[i] = h.FinalBalance
	}
	d.HistoryLine = newChartView(values)
}

func formFromSnapshot(snap model.Snapshot) formView {
	f := formView{
		CurrentMoney: formatAmount(snap.CurrentMoney),
		SavingGoal:   formatAmount(snap.SavingGoal),
	}
	for _, t := range snap.Expenses {
		f.Expenses = append(f.Expenses, rowFromTransaction(t))
	}
	for _, t := range snap.Incomes {
		f.Incomes = append(f.Incomes, rowFromTransaction(t))
	}
	// One blank row per list for adding a new entry.
	blank := rowView{Frequency: model.Daily.String(), Day: 1}
	f.Expenses = append(f.Expenses, blank)
	f.Incomes = append(f.Incomes, blank)
	return f
}

func formFromSubmission(sub pipeline.Submission) formView {
	snap := model.Snapshot{CurrentMoney: sub.CurrentMoney, SavingGoal: sub.SavingGoal}
	snap.SplitTransactions(sub.Transactions)
	return formFromSnapshot(snap)
}

func rowFromTransaction(t model.Transaction) rowView {
	day := t.Day
	if day == 0 {
		day = 1
	}
	return rowView{
		Name:      t.Name,
		Frequency: t.Frequency.String(),
		Amount:    formatAmount(t.Amount),
		Day:       day,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
