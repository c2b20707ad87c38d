package pipeline

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/wallet/internal/model"
)

type memHistory struct {
	records   []model.BalanceHistoryRecord
	appendErr error
}

func (m *memHistory) Append(_ context.Context, rec model.BalanceHistoryRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memHistory) List(_ context.Context) ([]model.BalanceHistoryRecord, error) {
	return m.records, nil
}

func (m *memHistory) Reset(_ context.Context) error {
	m.records = nil
	return nil
}

type memSnapshots struct {
	snap  model.Snapshot
	saved bool
}

func (m *memSnapshots) Load(_ context.Context) (model.Snapshot, bool, error) {
	return m.snap, m.saved, nil
}

func (m *memSnapshots) Save(_ context.Context, snap model.Snapshot) error {
	m.snap = snap
	m.saved = true
	return nil
}

func (m *memSnapshots) Reset(_ context.Context) error {
	m.snap = model.Snapshot{}
	m.saved = false
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPlannerSubmit_PersistsFinalBalanceAndInputs(t *testing.T) {
	hist := &memHistory{}
	snaps := &memSnapshots{}
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	p := NewPlanner(hist, snaps, Defaults{SavingGoal: 700}, fixedClock(now), nil)

	out, err := p.Submit(context.Background(), Submission{
		CurrentMoney: 1000,
		SavingGoal:   700,
		Transactions: []model.Transaction{
			expense("daily", model.Daily, 10, 0),
			income("salary", model.MonthlyOnDay, 2000, 15),
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if out.Request.StartDay != 1 || out.Request.HorizonEndDay != 30 {
		t.Fatalf("request span = %d..%d, want 1..30", out.Request.StartDay, out.Request.HorizonEndDay)
	}
	if out.Summary.FinalBalance != 2700 || out.Summary.Disposable != 2000 {
		t.Fatalf("summary = %+v, want final 2700 disposable 2000", out.Summary)
	}
	if len(out.Breakdown) != 1 || out.Breakdown[0].MonthlyTotal != 300 {
		t.Fatalf("breakdown = %+v, want one 300 row", out.Breakdown)
	}

	if len(hist.records) != 1 {
		t.Fatalf("history len = %d, want 1", len(hist.records))
	}
	if got := hist.records[0].Date.Format("2006-01-02"); got != "2026-03-01" {
		t.Fatalf("history date = %s, want 2026-03-01", got)
	}
	if hist.records[0].FinalBalance != 2700 {
		t.Fatalf("history balance = %v, want 2700", hist.records[0].FinalBalance)
	}

	if !snaps.saved {
		t.Fatal("snapshot not saved")
	}
	if len(snaps.snap.Expenses) != 1 || len(snaps.snap.Incomes) != 1 {
		t.Fatalf("snapshot split = %d expenses / %d incomes, want 1/1",
			len(snaps.snap.Expenses), len(snaps.snap.Incomes))
	}
	if snaps.snap.Incomes[0].Day != 15 {
		t.Fatalf("income day = %d, want 15", snaps.snap.Incomes[0].Day)
	}
}

func TestPlannerSubmit_ClampsStartDayToHorizon(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	p := NewPlanner(&memHistory{}, &memSnapshots{}, Defaults{}, fixedClock(now), nil)

	out, err := p.Compute(Submission{CurrentMoney: 50})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if out.Request.StartDay != 30 || len(out.Projection.Days) != 1 {
		t.Fatalf("start = %d days = %d, want 30 and 1", out.Request.StartDay, len(out.Projection.Days))
	}
}

func TestPlannerSubmit_ReturnsOutcomeOnPersistFailure(t *testing.T) {
	diskFull := errors.New("disk full")
	hist := &memHistory{appendErr: diskFull}
	snaps := &memSnapshots{}
	now := time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC)
	p := NewPlanner(hist, snaps, Defaults{}, fixedClock(now), nil)

	out, err := p.Submit(context.Background(), Submission{
		CurrentMoney: 100,
		Transactions: []model.Transaction{expense("x", model.Daily, 5, 0)},
	})
	var pe *PersistError
	if !errors.As(err, &pe) {
		t.Fatalf("Submit err = %v, want PersistError", err)
	}
	if !errors.Is(err, diskFull) {
		t.Fatalf("Submit err = %v, want it to wrap disk full", err)
	}
	if out.Summary.FinalBalance != 90 {
		t.Fatalf("final = %v, want 90 even on persist failure", out.Summary.FinalBalance)
	}
	if !snaps.saved {
		t.Fatal("snapshot should still be saved when only history fails")
	}
}

func TestPlannerSubmit_ValidationStopsBeforePersist(t *testing.T) {
	hist := &memHistory{}
	p := NewPlanner(hist, &memSnapshots{}, Defaults{}, fixedClock(time.Now()), nil)

	_, err := p.Submit(context.Background(), Submission{
		Transactions: []model.Transaction{expense("rent", model.MonthlyOnDay, 1, 40)},
	})
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Submit err = %v, want ValidationError", err)
	}
	if len(hist.records) != 0 {
		t.Fatal("history written despite invalid input")
	}
}

func TestPlannerLoadAndReset(t *testing.T) {
	hist := &memHistory{}
	snaps := &memSnapshots{}
	p := NewPlanner(hist, snaps, Defaults{SavingGoal: 700, DailySpending: 7}, fixedClock(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)), nil)
	ctx := context.Background()

	snap, history, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.SavingGoal != 700 || len(snap.Expenses) != 1 || snap.Expenses[0].Amount != 7 {
		t.Fatalf("default snapshot = %+v, want goal 700 and one 7/day expense", snap)
	}
	if len(history) != 0 {
		t.Fatalf("history len = %d, want 0", len(history))
	}

	if _, err := p.Submit(ctx, SubmissionFromSnapshot(snap)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := p.Submit(ctx, SubmissionFromSnapshot(snap)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(hist.records) != 2 {
		t.Fatalf("history len = %d, want 2 (append-only)", len(hist.records))
	}

	if err := p.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(hist.records) != 0 || snaps.saved {
		t.Fatal("Reset left data behind")
	}
}

func TestPlannerCompute_RejectsNonFiniteInputs(t *testing.T) {
	now := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	p := NewPlanner(&memHistory{}, &memSnapshots{}, Defaults{HorizonEndDay: 30}, fixedClock(now), nil)

	subs := []Submission{
		{CurrentMoney: math.NaN()},
		{SavingGoal: math.Inf(1)},
		{Transactions: []model.Transaction{{Name: "x", Kind: model.Expense, Frequency: model.Daily, Amount: math.Inf(1)}}},
	}
	for i, sub := range subs {
		_, err := p.Compute(sub)
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("submission %d: err = %v, want ValidationError", i, err)
		}
	}
}

func TestPlannerCompute_StampsRecordWithClock(t *testing.T) {
	now := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	p := NewPlanner(&memHistory{}, &memSnapshots{}, Defaults{HorizonEndDay: 30}, fixedClock(now), nil)

	out, err := p.Compute(Submission{CurrentMoney: 10})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !out.Record.RecordedAt.Equal(now) {
		t.Fatalf("RecordedAt = %v, want %v", out.Record.RecordedAt, now)
	}
}
