package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// PoolRepo implements vendor claim/complete over Postgres. The claim critical
// section runs inside a database transaction with a row lock; it is the one
// place in the system that needs true mutual exclusion.
type PoolRepo struct {
	db *sqlx.DB
}

// NewPoolRepository creates a new vendor pool repository
func NewPoolRepository(db *sqlx.DB) *PoolRepo {
	return &PoolRepo{db: db}
}

const transactionColumns = `
	id, user_id, vendor_id, type, amount_sent, exchange_rate, amount_received,
	recipient_details, status, proof_url, created_at, updated_at, sent_at
`

// AvailablePool lists pending unclaimed transactions, oldest first so the
// longest-waiting transfers surface at the top. An empty prefix matches all
// types.
func (r *PoolRepo) AvailablePool(ctx context.Context, prefix string) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = $1 AND vendor_id IS NULL AND type LIKE $2
		ORDER BY created_at ASC
	`

	var txs []*models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query, models.TransactionPending, prefix+"%"); err != nil {
		return nil, fmt.Errorf("failed to list pool: %w", err)
	}

	return txs, nil
}

// HandledByVendor lists transactions the vendor has claimed, most recently
// touched first.
func (r *PoolRepo) HandledByVendor(ctx context.Context, vendorID int64) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE vendor_id = $1
		ORDER BY updated_at DESC
	`

	var txs []*models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query, vendorID); err != nil {
		return nil, fmt.Errorf("failed to list handled transactions: %w", err)
	}

	return txs, nil
}

// Claim assigns a pending unclaimed transaction to the vendor. The row lock
// serializes concurrent claims: exactly one caller observes the precondition
// and wins; everyone else gets ErrClaimConflict with nothing written.
func (r *PoolRepo) Claim(ctx context.Context, txID, vendorID int64) (*models.Transaction, error) {
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	lockQuery := `
		SELECT id FROM transactions
		WHERE id = $1 AND status = $2 AND vendor_id IS NULL
		FOR UPDATE
	`

	var lockedID int64
	if err := dbTx.GetContext(ctx, &lockedID, lockQuery, txID, models.TransactionPending); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrClaimConflict
		}
		return nil, fmt.Errorf("failed to lock transaction: %w", err)
	}

	updateQuery := `
		UPDATE transactions SET status = $1, vendor_id = $2, updated_at = $3
		WHERE id = $4
		RETURNING ` + transactionColumns

	var tx models.Transaction
	if err := dbTx.GetContext(ctx, &tx, updateQuery, models.TransactionProcessing, vendorID, time.Now(), txID); err != nil {
		return nil, fmt.Errorf("failed to claim transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return &tx, nil
}

// Complete moves the vendor's own processing transaction to sent. The
// precondition is expressed in the WHERE clause; zero rows means the
// transaction was never claimed, already sent, or belongs to another vendor.
func (r *PoolRepo) Complete(ctx context.Context, txID, vendorID int64) (*models.Transaction, error) {
	query := `
		UPDATE transactions SET status = $1, sent_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4 AND vendor_id = $5
		RETURNING ` + transactionColumns

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query,
		models.TransactionSent, time.Now(), txID, models.TransactionProcessing, vendorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete transaction: %w", err)
	}

	return &tx, nil
}
