package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/wallet/internal/model"
)

// File names inside the data directory.
const (
	HistoryCSVFile  = "balance_history.csv"
	HistoryDBFile   = "balance_history.db"
	SnapshotFile    = "user_inputs.toml"
	LegacyInputFile = "user_inputs.csv"
)

// Backend names accepted by OpenHistory.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// History is a balance history log that must be closed after use.
type History interface {
	Append(ctx context.Context, rec model.BalanceHistoryRecord) error
	List(ctx context.Context) ([]model.BalanceHistoryRecord, error)
	Reset(ctx context.Context) error
	Close() error
}

// OpenHistory opens the history log for backend inside dataDir.
func OpenHistory(backend, dataDir string) (History, error) {
	switch backend {
	case "", BackendCSV:
		return OpenCSVHistory(filepath.Join(dataDir, HistoryCSVFile))
	case BackendSQLite:
		return OpenSQLiteHistory(filepath.Join(dataDir, HistoryDBFile))
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}

// OpenSnapshot opens the saved-inputs store inside dataDir.
func OpenSnapshot(dataDir string) (*TOMLSnapshot, error) {
	return OpenTOMLSnapshot(filepath.Join(dataDir, SnapshotFile))
}
