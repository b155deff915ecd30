package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func transactionRows(id, userID int64, vendorID *int64, status models.TransactionStatus) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "vendor_id", "type", "amount_sent", "exchange_rate", "amount_received",
		"recipient_details", "status", "proof_url", "created_at", "updated_at", "sent_at",
	})
	now := time.Now()
	rows.AddRow(id, userID, vendorID, "GHS-CAD", "100", "0.0912", "9.12",
		[]byte(`{"kind":"momo","name":"Ama Mensah","account":"0244000000"}`),
		status, "", now, now, nil)
	return rows
}

func TestClaim_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPoolRepository(db)

	vendorID := int64(7)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM transactions")).
		WithArgs(int64(42), models.TransactionPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions SET status =")).
		WithArgs(models.TransactionProcessing, vendorID, sqlmock.AnyArg(), int64(42)).
		WillReturnRows(transactionRows(42, 3, &vendorID, models.TransactionProcessing))
	mock.ExpectCommit()

	tx, err := repo.Claim(context.Background(), 42, vendorID)

	assert.NoError(t, err)
	assert.NotNil(t, tx)
	assert.Equal(t, models.TransactionProcessing, tx.Status)
	assert.Equal(t, vendorID, *tx.VendorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaim_Conflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPoolRepository(db)

	// Another vendor already claimed it, so the locked precondition select
	// matches no rows.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM transactions")).
		WithArgs(int64(42), models.TransactionPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	tx, err := repo.Claim(context.Background(), 42, 7)

	assert.ErrorIs(t, err, apperr.ErrClaimConflict)
	assert.Nil(t, tx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplete_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPoolRepository(db)

	vendorID := int64(7)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions SET status =")).
		WithArgs(models.TransactionSent, sqlmock.AnyArg(), int64(42), models.TransactionProcessing, vendorID).
		WillReturnRows(transactionRows(42, 3, &vendorID, models.TransactionSent))

	tx, err := repo.Complete(context.Background(), 42, vendorID)

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionSent, tx.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplete_NeverClaimed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPoolRepository(db)

	// Status is still pending, so the guarded update matches nothing.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions SET status =")).
		WithArgs(models.TransactionSent, sqlmock.AnyArg(), int64(42), models.TransactionProcessing, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tx, err := repo.Complete(context.Background(), 42, 7)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, tx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandledByVendor_OrdersByLastUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPoolRepository(db)

	vendorID := int64(7)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY updated_at DESC")).
		WithArgs(vendorID).
		WillReturnRows(transactionRows(42, 3, &vendorID, models.TransactionProcessing))

	txs, err := repo.HandledByVendor(context.Background(), vendorID)

	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, vendorID, *txs[0].VendorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailablePool_PrefixFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPoolRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WithArgs(models.TransactionPending, "CAD-%").
		WillReturnRows(transactionRows(11, 3, nil, models.TransactionPending))

	txs, err := repo.AvailablePool(context.Background(), "CAD-")

	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, int64(11), txs[0].ID)
	assert.True(t, txs[0].AmountSent.Equal(decimal.NewFromInt(100)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
