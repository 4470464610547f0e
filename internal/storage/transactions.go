package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yktomo/kakeibo/internal/common"
	"github.com/yktomo/kakeibo/internal/model"
)

const transactionColumns = `id, amount, type, category, date, memo, created_at, updated_at`

// Most recent edit wins visual ordering: date first, creation time breaks ties.
const transactionOrder = `ORDER BY date DESC, created_at DESC`

// ListTransactions returns every transaction, newest date first.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions %s`, transactionColumns, transactionOrder)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionsByDateRange returns transactions whose date falls inside the
// inclusive [start, end] range, newest date first.
func (s *SQLiteStorage) GetTransactionsByDateRange(ctx context.Context, start, end string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE date >= ? AND date <= ? %s`, transactionColumns, transactionOrder)
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetRecentTransactions returns at most limit transactions, newest date first.
func (s *SQLiteStorage) GetRecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions %s LIMIT ?`, transactionColumns, transactionOrder)
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionByID retrieves a single transaction by ID.
// Returns common.ErrNotFound when no row matches.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return s.getTransactionByIDTx(ctx, s.db, id)
}

func (s *SQLiteStorage) getTransactionByIDTx(ctx context.Context, q queryable, id string) (*model.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = ?`, transactionColumns)
	row := q.QueryRowContext(ctx, query, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// CreateTransaction inserts a new transaction and returns the stored row,
// including store-assigned timestamps.
func (s *SQLiteStorage) CreateTransaction(ctx context.Context, txn model.NewTransaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateNewTransaction(&txn); err != nil {
		return nil, err
	}

	now := time.Now()
	memo := sql.NullString{String: txn.Memo, Valid: txn.Memo != ""}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, amount, type, category, date, memo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.Amount, string(txn.Type), txn.Category, txn.Date, memo, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
	}

	slog.Debug("created transaction", "id", txn.ID, "type", txn.Type, "amount", txn.Amount)
	return s.getTransactionByIDTx(ctx, s.db, txn.ID)
}

// UpdateTransaction merges the non-nil fields of upd into the row with the
// given ID, refreshes updated_at, and returns the updated row.
// Returns common.ErrNotFound when no row matches.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, id string, upd model.TransactionUpdate) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if upd.Amount != nil {
		if *upd.Amount < 1 || *upd.Amount > model.MaxAmount {
			return nil, fmt.Errorf("%w: amount %d out of range", ErrInvalidTransaction, *upd.Amount)
		}
		sets = append(sets, "amount = ?")
		args = append(args, *upd.Amount)
	}
	if upd.Category != nil {
		if err := validateString(*upd.Category, "category"); err != nil {
			return nil, err
		}
		sets = append(sets, "category = ?")
		args = append(args, *upd.Category)
	}
	if upd.Date != nil {
		if err := validateDate(*upd.Date, "date"); err != nil {
			return nil, err
		}
		sets = append(sets, "date = ?")
		args = append(args, *upd.Date)
	}
	if upd.Memo != nil {
		sets = append(sets, "memo = ?")
		args = append(args, sql.NullString{String: *upd.Memo, Valid: *upd.Memo != ""})
	}

	// updated_at refreshes on every mutation, even a field-less one.
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now())
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE transactions SET %s WHERE id = ?`, strings.Join(sets, ", "))
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrNotFound
	}

	slog.Debug("updated transaction", "id", id)
	return s.getTransactionByIDTx(ctx, s.db, id)
}

// DeleteTransaction removes the row with the given ID and reports whether a
// row was actually removed. A second delete of the same ID returns false.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(id, "id"); err != nil {
		return false, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	if affected > 0 {
		slog.Debug("deleted transaction", "id", id)
	}
	return affected > 0, nil
}

// CountTransactions returns the total number of transactions.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var txnType string
	var memo sql.NullString

	err := row.Scan(
		&txn.ID,
		&txn.Amount,
		&txnType,
		&txn.Category,
		&txn.Date,
		&memo,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Type = model.TransactionType(txnType)
	if memo.Valid {
		txn.Memo = memo.String
	}
	return &txn, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}
