package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Puneet01302/my-expense-dashboard/analyzer"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// FindImportBySource returns the import id for a source name, if present.
func (db *DB) FindImportBySource(ctx context.Context, source string) (string, bool, error) {
	var id string
	err := db.Pool.QueryRow(ctx,
		`SELECT id FROM imports WHERE source = $1`, source).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up import %q: %w", source, err)
	}
	return id, true, nil
}

// DeleteImport removes an import and, via cascade, its transactions.
func (db *DB) DeleteImport(ctx context.Context, id string) error {
	if _, err := db.Pool.Exec(ctx, `DELETE FROM imports WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete import %s: %w", id, err)
	}
	return nil
}

// CreateImport records one pipeline result and returns the new import id.
func (db *DB) CreateImport(ctx context.Context, result analyzer.Result) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO imports (source, transaction_count, dropped_count)
		VALUES ($1, $2, $3)
		RETURNING id`,
		result.Source, len(result.Transactions), len(result.Dropped),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert import %q: %w", result.Source, err)
	}
	return id, nil
}

// CreateTransactions bulk inserts the categorized transactions of one
// import, preserving their sequence order.
func (db *DB) CreateTransactions(ctx context.Context, importID string, result analyzer.Result) error {
	if len(result.Transactions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, tx := range result.Transactions {
		batch.Queue(`
			INSERT INTO transactions (
				import_id, sequence, date, description, amount, category, month
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			importID, i+1, tx.Date, tx.Description, tx.Amount, tx.Category, tx.Month(),
		)
	}

	results := db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range result.Transactions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}
	return nil
}

// MonthlyTotals reads the summed amount per month across every import,
// ordered by month ascending.
func (db *DB) MonthlyTotals(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT month, SUM(amount)
		FROM transactions
		GROUP BY month
		ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	totals := map[string]decimal.Decimal{}
	for rows.Next() {
		var month string
		var total decimal.Decimal
		if err := rows.Scan(&month, &total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		totals[month] = total
	}
	return totals, rows.Err()
}
