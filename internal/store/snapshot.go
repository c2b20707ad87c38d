package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/wallet/internal/model"

	"github.com/BurntSushi/toml"
)

// snapshotFile is the on-disk shape of the saved inputs. Transactions are
// nested tables rather than indexed columns.
type snapshotFile struct {
	CurrentMoney float64    `toml:"current_money"`
	SavingGoal   float64    `toml:"saving_goal"`
	SavedAt      time.Time  `toml:"saved_at,omitempty"`
	Expenses     []txRecord `toml:"expenses,omitempty"`
	Incomes      []txRecord `toml:"incomes,omitempty"`
}

type txRecord struct {
	Name      string  `toml:"name"`
	Frequency string  `toml:"frequency"`
	Amount    float64 `toml:"amount"`
	Day       int     `toml:"day,omitempty"`
}

// TOMLSnapshot stores the latest inputs as a single TOML document.
type TOMLSnapshot struct {
	path string
}

// OpenTOMLSnapshot returns a snapshot store backed by path.
func OpenTOMLSnapshot(path string) (*TOMLSnapshot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	return &TOMLSnapshot{path: path}, nil
}

// Path returns the backing file path.
func (s *TOMLSnapshot) Path() string { return s.path }

// Load reads the saved inputs. found is false when the file is missing or
// has been reset. Unknown frequencies, out-of-range days and non-finite
// numbers are default-filled rather than rejected.
func (s *TOMLSnapshot) Load(_ context.Context) (model.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Snapshot{}, false, nil
		}
		return model.Snapshot{}, false, fmt.Errorf("reading snapshot: %w", err)
	}

	var file snapshotFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("parsing snapshot: %w", err)
	}
	if len(md.Keys()) == 0 {
		return model.Snapshot{}, false, nil
	}

	snap := model.Snapshot{
		CurrentMoney: finiteOrZero(file.CurrentMoney),
		SavingGoal:   finiteOrZero(file.SavingGoal),
		SavedAt:      file.SavedAt,
	}
	for i, r := range file.Expenses {
		snap.Expenses = append(snap.Expenses, r.toTransaction(model.Expense, i))
	}
	for i, r := range file.Incomes {
		snap.Incomes = append(snap.Incomes, r.toTransaction(model.Income, i))
	}
	return snap, true, nil
}

// Save overwrites the file with snap.
func (s *TOMLSnapshot) Save(_ context.Context, snap model.Snapshot) error {
	file := snapshotFile{
		CurrentMoney: snap.CurrentMoney,
		SavingGoal:   snap.SavingGoal,
		SavedAt:      snap.SavedAt,
	}
	for _, t := range snap.Expenses {
		file.Expenses = append(file.Expenses, fromTransaction(t))
	}
	for _, t := range snap.Incomes {
		file.Incomes = append(file.Incomes, fromTransaction(t))
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Reset leaves an empty document behind, which loads as "not found".
func (s *TOMLSnapshot) Reset(_ context.Context) error {
	if err := os.WriteFile(s.path, nil, 0o600); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}

// toTransaction converts the i-th record of its list.
func (r txRecord) toTransaction(kind model.Kind, i int) model.Transaction {
	freq, err := model.ParseFrequency(r.Frequency)
	if err != nil {
		freq = model.Daily
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = model.DefaultName(kind, i)
	}
	t := model.Transaction{
		Name:      name,
		Kind:      kind,
		Frequency: freq,
		Amount:    finiteOrZero(r.Amount),
	}
	if freq == model.MonthlyOnDay {
		t.Day = clampDay(r.Day)
	}
	return t
}

func fromTransaction(t model.Transaction) txRecord {
	r := txRecord{
		Name:      t.Name,
		Frequency: t.Frequency.String(),
		Amount:    t.Amount,
	}
	if t.Frequency == model.MonthlyOnDay {
		r.Day = t.Day
	}
	return r
}

func finiteOrZero(v float64) float64 {
	if !model.IsFinite(v) {
		return 0
	}
	return v
}

func clampDay(d int) int {
	switch {
	case d < 1:
		return 1
	case d > 31:
		return 31
	default:
		return d
	}
}
