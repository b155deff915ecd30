package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// TransactionRepo implements transfer persistence over Postgres.
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

const transactionColumns = `
	id, user_id, vendor_id, type, amount_sent, exchange_rate, amount_received,
	recipient_details, status, proof_url, created_at, updated_at, sent_at
`

// Create inserts a new pending transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (
			user_id, type, amount_sent, exchange_rate, amount_received,
			recipient_details, status, proof_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		tx.UserID, tx.Type, tx.AmountSent, tx.ExchangeRate, tx.AmountReceived,
		tx.RecipientDetails, tx.Status, tx.ProofURL, now,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return tx, nil
}

// GetByID retrieves a transaction by id.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// ListByUser returns a user's transactions, newest first.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`

	var txs []*models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txs, nil
}

// ListAll returns every transaction, newest first. Admin use only.
func (r *TransactionRepo) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC`

	var txs []*models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txs, nil
}

// SetStatus writes any status value without transition validation. Admin
// override path; vendor transitions go through the vendor repository.
func (r *TransactionRepo) SetStatus(ctx context.Context, id int64, status models.TransactionStatus) (*models.Transaction, error) {
	query := `
		UPDATE transactions SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + transactionColumns

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, status, time.Now(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return &tx, nil
}

// AttachProof sets proof_url on the user's own transaction. Allowed at any
// status; last write wins.
func (r *TransactionRepo) AttachProof(ctx context.Context, id, userID int64, url string) error {
	query := `UPDATE transactions SET proof_url = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.ExecContext(ctx, query, url, time.Now(), id, userID)
	if err != nil {
		return fmt.Errorf("failed to attach proof: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

// DailyUsageByCurrency sums amount_sent per source currency over the user's
// transactions created at or after `since`.
func (r *TransactionRepo) DailyUsageByCurrency(ctx context.Context, userID int64, since time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT split_part(type, '-', 1) AS currency, COALESCE(SUM(amount_sent), 0) AS total
		FROM transactions
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY 1
	`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]decimal.Decimal)
	for rows.Next() {
		var currency string
		var total decimal.Decimal
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan usage row: %w", err)
		}
		usage[currency] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usage rows: %w", err)
	}

	return usage, nil
}
