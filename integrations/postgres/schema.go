package postgres

import (
	"context"
	"fmt"
)

const ddl = `
-- One row per analyzed source file. The source name is the natural key
-- used for deduplication between runs.
CREATE TABLE IF NOT EXISTS imports (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    source VARCHAR(255) NOT NULL,
    transaction_count INTEGER NOT NULL,
    dropped_count INTEGER NOT NULL DEFAULT 0,
    imported_at TIMESTAMPTZ DEFAULT NOW(),

    UNIQUE(source)
);

-- Categorized transactions, one row per retained statement line.
CREATE TABLE IF NOT EXISTS transactions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    import_id UUID NOT NULL REFERENCES imports(id) ON DELETE CASCADE,
    sequence INTEGER NOT NULL,
    date DATE NOT NULL,
    description TEXT NOT NULL,
    amount NUMERIC(18,2) NOT NULL,
    category VARCHAR(50) NOT NULL,
    month CHAR(7) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),

    UNIQUE(import_id, sequence)
);

-- Indexes for the aggregate queries
CREATE INDEX IF NOT EXISTS idx_transactions_import_id ON transactions(import_id);
CREATE INDEX IF NOT EXISTS idx_transactions_month ON transactions(month);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
