package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/wallet/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteHistory keeps the balance history in a SQLite table.
type SQLiteHistory struct {
	db *sql.DB
}

// OpenSQLiteHistory opens or creates the history database at dbPath.
func OpenSQLiteHistory(dbPath string) (*SQLiteHistory, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

// Close closes the database.
func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}

// Append inserts one record. A zero RecordedAt is stored as the record date.
func (h *SQLiteHistory) Append(ctx context.Context, rec model.BalanceHistoryRecord) error {
	recordedAt := rec.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = rec.Date
	}
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO balance_history (date, remaining_balance, recorded_at) VALUES (?, ?, ?)`,
		rec.Date.Format(dateLayout), rec.FinalBalance, recordedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// List returns every record in insertion order.
func (h *SQLiteHistory) List(ctx context.Context) ([]model.BalanceHistoryRecord, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT date, remaining_balance, recorded_at FROM balance_history ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.BalanceHistoryRecord
	for rows.Next() {
		var dateStr, recordedStr string
		var rec model.BalanceHistoryRecord
		if err := rows.Scan(&dateStr, &rec.FinalBalance, &recordedStr); err != nil {
			return nil, err
		}
		rec.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}
		rec.RecordedAt, _ = time.Parse(time.RFC3339, recordedStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Reset deletes every record.
func (h *SQLiteHistory) Reset(ctx context.Context) error {
	_, err := h.db.ExecContext(ctx, `DELETE FROM balance_history`)
	return err
}

// Count returns the number of stored records.
func (h *SQLiteHistory) Count(ctx context.Context) (int, error) {
	var count int
	err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM balance_history`).Scan(&count)
	return count, err
}
