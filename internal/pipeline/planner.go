package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/wallet/internal/model"

	"github.com/sirupsen/logrus"
)

// HistoryStore is the append-only balance history log.
type HistoryStore interface {
	Append(ctx context.Context, rec model.BalanceHistoryRecord) error
	List(ctx context.Context) ([]model.BalanceHistoryRecord, error)
	Reset(ctx context.Context) error
}

// SnapshotStore keeps the single latest set of inputs.
type SnapshotStore interface {
	Load(ctx context.Context) (model.Snapshot, bool, error)
	Save(ctx context.Context, snap model.Snapshot) error
	Reset(ctx context.Context) error
}

// PersistError wraps a storage failure that happened after the projection
// was already computed.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persisting %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Defaults pre-fill inputs when no snapshot has been saved yet.
type Defaults struct {
	SavingGoal    float64
	DailySpending float64
	HorizonEndDay int
}

// Submission is one set of form inputs.
type Submission struct {
	CurrentMoney float64
	SavingGoal   float64
	Transactions []model.Transaction
}

// Outcome is everything derived from one submission.
type Outcome struct {
	Request    model.ProjectionRequest
	Projection model.ProjectionResult
	Breakdown  []model.ExpenseShare
	Summary    model.Summary
	Record     model.BalanceHistoryRecord
}

// Planner ties the projection to the persisted history and snapshot.
type Planner struct {
	history   HistoryStore
	snapshots SnapshotStore
	defaults  Defaults
	now       func() time.Time
	log       *logrus.Logger
}

// NewPlanner returns a planner. A nil now uses time.Now; a nil log discards output.
func NewPlanner(history HistoryStore, snapshots SnapshotStore, defaults Defaults, now func() time.Time, log *logrus.Logger) *Planner {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	if defaults.HorizonEndDay == 0 {
		defaults.HorizonEndDay = model.DefaultHorizonEndDay
	}
	return &Planner{
		history:   history,
		snapshots: snapshots,
		defaults:  defaults,
		now:       now,
		log:       log,
	}
}

// Compute builds the request for today and runs the projection without
// touching storage.
func (p *Planner) Compute(sub Submission) (Outcome, error) {
	if !model.IsFinite(sub.SavingGoal) {
		return Outcome{}, &model.ValidationError{Field: "saving_goal", Value: fmt.Sprint(sub.SavingGoal), Reason: "must be a finite number"}
	}

	now := p.now()
	startDay := now.Day()
	if startDay > p.defaults.HorizonEndDay {
		startDay = p.defaults.HorizonEndDay
	}

	req := model.ProjectionRequest{
		StartingBalance: sub.CurrentMoney,
		StartDay:        startDay,
		HorizonEndDay:   p.defaults.HorizonEndDay,
		Transactions:    sub.Transactions,
	}

	proj, err := Project(req)
	if err != nil {
		return Outcome{}, err
	}
	shares, err := Breakdown(sub.Transactions)
	if err != nil {
		return Outcome{}, err
	}

	summary := Summarize(proj, sub.SavingGoal)
	return Outcome{
		Request:    req,
		Projection: proj,
		Breakdown:  shares,
		Summary:    summary,
		Record: model.BalanceHistoryRecord{
			Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			FinalBalance: summary.FinalBalance,
			RecordedAt:   now,
		},
	}, nil
}

// Submit computes the projection and persists its final balance and the
// inputs. On a storage failure the computed outcome is still returned
// together with a *PersistError.
func (p *Planner) Submit(ctx context.Context, sub Submission) (Outcome, error) {
	out, err := p.Compute(sub)
	if err != nil {
		return Outcome{}, err
	}

	var errs []error
	if err := p.history.Append(ctx, out.Record); err != nil {
		p.log.WithError(err).WithField("date", out.Record.Date.Format("2006-01-02")).Error("append balance history")
		errs = append(errs, &PersistError{Op: "balance history", Err: err})
	}

	snap := model.Snapshot{
		CurrentMoney: sub.CurrentMoney,
		SavingGoal:   sub.SavingGoal,
		SavedAt:      p.now(),
	}
	snap.SplitTransactions(sub.Transactions)
	if err := p.snapshots.Save(ctx, snap); err != nil {
		p.log.WithError(err).Error("save input snapshot")
		errs = append(errs, &PersistError{Op: "input snapshot", Err: err})
	}

	if len(errs) > 0 {
		return out, errors.Join(errs...)
	}

	p.log.WithFields(logrus.Fields{
		"start_day":     out.Request.StartDay,
		"transactions":  len(sub.Transactions),
		"final_balance": out.Summary.FinalBalance,
	}).Info("projection saved")
	return out, nil
}

// Reset empties the balance history and the saved inputs.
func (p *Planner) Reset(ctx context.Context) error {
	if err := p.history.Reset(ctx); err != nil {
		return &PersistError{Op: "balance history", Err: err}
	}
	if err := p.snapshots.Reset(ctx); err != nil {
		return &PersistError{Op: "input snapshot", Err: err}
	}
	p.log.Info("history and inputs reset")
	return nil
}

// Load returns the saved inputs, or defaults when none exist, along with
// the full balance history.
func (p *Planner) Load(ctx context.Context) (model.Snapshot, []model.BalanceHistoryRecord, error) {
	snap, found, err := p.snapshots.Load(ctx)
	if err != nil {
		return model.Snapshot{}, nil, fmt.Errorf("loading inputs: %w", err)
	}
	if !found {
		snap = p.DefaultSnapshot()
	}

	history, err := p.history.List(ctx)
	if err != nil {
		return snap, nil, fmt.Errorf("loading history: %w", err)
	}
	return snap, history, nil
}

// DefaultSnapshot is the form state shown before anything has been saved.
func (p *Planner) DefaultSnapshot() model.Snapshot {
	snap := model.Snapshot{SavingGoal: p.defaults.SavingGoal}
	if p.defaults.DailySpending != 0 {
		snap.Expenses = []model.Transaction{{
			Name:      "Daily spending",
			Kind:      model.Expense,
			Frequency: model.Daily,
			Amount:    p.defaults.DailySpending,
		}}
	}
	return snap
}

// SubmissionFromSnapshot turns saved inputs back into a submission.
func SubmissionFromSnapshot(snap model.Snapshot) Submission {
	return Submission{
		CurrentMoney: snap.CurrentMoney,
		SavingGoal:   snap.SavingGoal,
		Transactions: snap.Transactions(),
	}
}
