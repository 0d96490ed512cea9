package storage

import (
	"context"
	"database/sql"
	"time"
)

// TransactionRow is the database row shape for the transactions table.
type TransactionRow struct {
	ID          int64
	Title       string
	AmountCents int64
	Date        string
	Category    string
	Type        string
	IsFixed     bool
	IsPaid      bool
	Synced      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Queries wraps raw SQL access to the SQLite database.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

const transactionColumns = `id, title, amount_cents, date, category, type, is_fixed, is_paid, synced, created_at, updated_at`

func scanTransaction(row interface{ Scan(...any) error }) (TransactionRow, error) {
	var t TransactionRow
	err := row.Scan(&t.ID, &t.Title, &t.AmountCents, &t.Date, &t.Category, &t.Type,
		&t.IsFixed, &t.IsPaid, &t.Synced, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

type CreateTransactionParams struct {
	Title       string
	AmountCents int64
	Date        string
	Category    string
	Type        string
	IsFixed     bool
	IsPaid      bool
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (TransactionRow, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO transactions (title, amount_cents, date, category, type, is_fixed, is_paid, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0)
		RETURNING `+transactionColumns,
		arg.Title, arg.AmountCents, arg.Date, arg.Category, arg.Type, arg.IsFixed, arg.IsPaid)
	return scanTransaction(row)
}

type UpdateTransactionParams struct {
	ID          int64
	Title       string
	AmountCents int64
	Date        string
	Category    string
	Type        string
	IsFixed     bool
	IsPaid      bool
}

func (q *Queries) UpdateTransaction(ctx context.Context, arg UpdateTransactionParams) (TransactionRow, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE transactions
		SET title = ?, amount_cents = ?, date = ?, category = ?, type = ?,
		    is_fixed = ?, is_paid = ?, synced = 0, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING `+transactionColumns,
		arg.Title, arg.AmountCents, arg.Date, arg.Category, arg.Type, arg.IsFixed, arg.IsPaid, arg.ID)
	return scanTransaction(row)
}

func (q *Queries) GetTransaction(ctx context.Context, id int64) (TransactionRow, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	return scanTransaction(row)
}

func (q *Queries) ListTransactions(ctx context.Context) ([]TransactionRow, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+transactionColumns+` FROM transactions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TransactionRow
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (q *Queries) DeleteTransaction(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *Queries) ToggleTransactionStatus(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE transactions
		SET is_paid = NOT is_paid, synced = 0, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND type <> 'investment'`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *Queries) ListUnsyncedTransactions(ctx context.Context, limit int64) ([]TransactionRow, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE synced = 0
		ORDER BY updated_at
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TransactionRow
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (q *Queries) MarkTransactionSynced(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE transactions SET synced = 1 WHERE id = ?`, id)
	return err
}

func (q *Queries) GetPortfolioValue(ctx context.Context) (int64, error) {
	var cents int64
	err := q.db.QueryRowContext(ctx,
		`SELECT value_cents FROM portfolio WHERE id = 1`).Scan(&cents)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return cents, err
}

func (q *Queries) SetPortfolioValue(ctx context.Context, cents int64) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO portfolio (id, value_cents, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET value_cents = excluded.value_cents, updated_at = CURRENT_TIMESTAMP`,
		cents)
	return err
}
