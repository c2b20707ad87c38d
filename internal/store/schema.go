package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS balance_history (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    date                 TEXT NOT NULL,
    remaining_balance    REAL NOT NULL,
    recorded_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_balance_history_date ON balance_history(date);
`
