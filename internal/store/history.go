// Package store persists the balance history log and the saved form inputs.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/wallet/internal/model"
)

const dateLayout = "2006-01-02"

// HistoryHeader is the column row of the balance history file.
var HistoryHeader = []string{"Date", "Remaining Balance"}

// CSVHistory is an append-only balance history kept in a flat CSV file.
type CSVHistory struct {
	path string
}

// OpenCSVHistory returns a history backed by path. The file is created
// lazily on first append.
func OpenCSVHistory(path string) (*CSVHistory, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}
	return &CSVHistory{path: path}, nil
}

// Path returns the backing file path.
func (h *CSVHistory) Path() string { return h.path }

// Append adds one record at the end of the file, writing the header first
// if the file is new or empty.
func (h *CSVHistory) Append(_ context.Context, rec model.BalanceHistoryRecord) error {
	f, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat history: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(HistoryHeader); err != nil {
			return err
		}
	}
	if err := w.Write([]string{
		rec.Date.Format(dateLayout),
		strconv.FormatFloat(rec.FinalBalance, 'f', -1, 64),
	}); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return f.Sync()
}

// List reads the whole log in file order. A missing file is an empty log.
// Rows that cannot be parsed are skipped.
func (h *CSVHistory) List(_ context.Context) ([]model.BalanceHistoryRecord, error) {
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var records []model.BalanceHistoryRecord
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading history: %w", err)
		}
		if first {
			first = false
			if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), HistoryHeader[0]) {
				continue
			}
		}
		rec, ok := parseHistoryRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Reset rewrites the file with only the header row.
func (h *CSVHistory) Reset(_ context.Context) error {
	f, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("truncating history: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(HistoryHeader); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Close is a no-op; the file is opened per operation.
func (h *CSVHistory) Close() error { return nil }

func parseHistoryRow(row []string) (model.BalanceHistoryRecord, bool) {
	if len(row) < 2 {
		return model.BalanceHistoryRecord{}, false
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(row[0]))
	if err != nil {
		return model.BalanceHistoryRecord{}, false
	}
	bal, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return model.BalanceHistoryRecord{}, false
	}
	return model.BalanceHistoryRecord{Date: date, FinalBalance: bal}, true
}
