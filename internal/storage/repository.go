// Package storage implements the durable transaction store on SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"financas/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// GetAll returns the entire collection. The engine treats the result as
// unordered.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := rowToTransaction(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Save upserts the record: a zero ID inserts and assigns a new id, a known
// ID replaces the matching row wholesale. Records are validated and
// normalized before they touch the database; a rejected record leaves the
// collection untouched.
func (r *SQLiteRepository) Save(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t = t.Normalized()
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	if t.ID == 0 {
		row, err := r.queries.CreateTransaction(ctx, CreateTransactionParams{
			Title:       t.Title,
			AmountCents: t.Amount.Cents,
			Date:        t.Date.ISO(),
			Category:    t.Category,
			Type:        t.Type.String(),
			IsFixed:     t.IsFixed,
			IsPaid:      t.IsPaid,
		})
		if err != nil {
			return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
		}

		slog.InfoContext(ctx, "Transaction created",
			"id", row.ID,
			"title", row.Title,
			"amount_cents", row.AmountCents,
			"type", row.Type,
			"date", row.Date)

		return rowToTransaction(row)
	}

	row, err := r.queries.UpdateTransaction(ctx, UpdateTransactionParams{
		ID:          t.ID,
		Title:       t.Title,
		AmountCents: t.Amount.Cents,
		Date:        t.Date.ISO(),
		Category:    t.Category,
		Type:        t.Type.String(),
		IsFixed:     t.IsFixed,
		IsPaid:      t.IsPaid,
	})
	if errors.Is(err, sql.ErrNoRows) {
		// Edit against an id that no longer exists: benign no-op,
		// matching Delete and ToggleStatus.
		slog.DebugContext(ctx, "Update on absent transaction", "id", t.ID)
		return t, nil
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", t.ID, err)
	}

	slog.InfoContext(ctx, "Transaction updated", "id", row.ID, "title", row.Title)
	return rowToTransaction(row)
}

// Delete removes the row with the given id; absent ids are a benign no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	if affected == 0 {
		slog.DebugContext(ctx, "Delete on absent transaction", "id", id)
		return nil
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

// ToggleStatus flips is_paid on the given row; absent ids and
// investment rows are a no-op, so an investment's is_paid stays true.
func (r *SQLiteRepository) ToggleStatus(ctx context.Context, id int64) error {
	affected, err := r.queries.ToggleTransactionStatus(ctx, id)
	if err != nil {
		return fmt.Errorf("toggle transaction %d: %w", id, err)
	}
	if affected == 0 {
		slog.DebugContext(ctx, "Toggle on absent transaction", "id", id)
	}
	return nil
}

// PortfolioValue reads the single stored snapshot, zero when unset.
func (r *SQLiteRepository) PortfolioValue(ctx context.Context) (core.Money, error) {
	cents, err := r.queries.GetPortfolioValue(ctx)
	if err != nil {
		return core.Money{}, fmt.Errorf("get portfolio value: %w", err)
	}
	return core.Money{Cents: cents}, nil
}

// SetPortfolioValue overwrites the snapshot wholesale.
func (r *SQLiteRepository) SetPortfolioValue(ctx context.Context, v core.Money) error {
	if v.Cents < 0 {
		return core.ErrInvalidAmount
	}
	if err := r.queries.SetPortfolioValue(ctx, v.Cents); err != nil {
		return fmt.Errorf("set portfolio value: %w", err)
	}

	slog.InfoContext(ctx, "Portfolio value updated", "value_cents", v.Cents)
	return nil
}

// GetTransaction retrieves a single record by id, used by the sync worker.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row, err := r.queries.GetTransaction(ctx, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return rowToTransaction(row)
}

// GetUnsynced returns up to limit records still pending mirror sync.
func (r *SQLiteRepository) GetUnsynced(ctx context.Context, limit int) ([]core.Transaction, error) {
	rows, err := r.queries.ListUnsyncedTransactions(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("list unsynced transactions: %w", err)
	}

	out := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := rowToTransaction(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// MarkSynced records that a row was successfully mirrored.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	if err := r.queries.MarkTransactionSynced(ctx, id); err != nil {
		return fmt.Errorf("mark transaction synced: %w", err)
	}
	return nil
}

func rowToTransaction(row TransactionRow) (core.Transaction, error) {
	date, err := core.ParseDate(row.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction %d has corrupt date %q: %w", row.ID, row.Date, err)
	}

	tt := core.TransactionType(row.Type)
	if !tt.IsValid() {
		return core.Transaction{}, fmt.Errorf("transaction %d has unknown type %q: %w", row.ID, row.Type, core.ErrInvalidType)
	}

	return core.Transaction{
		ID:       row.ID,
		Title:    row.Title,
		Amount:   core.Money{Cents: row.AmountCents},
		Date:     date,
		Category: row.Category,
		Type:     tt,
		IsFixed:  row.IsFixed,
		IsPaid:   row.IsPaid,
	}, nil
}
