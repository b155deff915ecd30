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

func TestCreate_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTransactionRepository(db)

	tx := &models.Transaction{
		UserID:       3,
		Type:         "GHS-CAD",
		AmountSent:   decimal.NewFromInt(100),
		ExchangeRate: decimal.RequireFromString("0.0912"),
		AmountReceived: decimal.NewFromInt(100).
			Mul(decimal.RequireFromString("0.0912")),
		RecipientDetails: models.RecipientDetails{
			Kind:    models.RecipientMomo,
			Name:    "Ama Mensah",
			Account: "0244000000",
		},
		Status: models.TransactionPending,
	}

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(
			tx.UserID, tx.Type, tx.AmountSent, tx.ExchangeRate, tx.AmountReceived,
			tx.RecipientDetails, tx.Status, tx.ProofURL, sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(42, now, now))

	created, err := repo.Create(context.Background(), tx)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id =")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tx, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, tx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachProof_NotOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET proof_url =")).
		WithArgs("https://cdn.example.com/proof.png", sqlmock.AnyArg(), int64(42), int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AttachProof(context.Background(), 42, 999, "https://cdn.example.com/proof.png")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyUsageByCurrency(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTransactionRepository(db)

	since := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount_sent), 0)")).
		WithArgs(int64(3), since).
		WillReturnRows(sqlmock.NewRows([]string{"currency", "total"}).
			AddRow("GHS", "150").
			AddRow("CAD", "25.5"))

	usage, err := repo.DailyUsageByCurrency(context.Background(), 3, since)

	assert.NoError(t, err)
	assert.Len(t, usage, 2)
	assert.True(t, usage["GHS"].Equal(decimal.NewFromInt(150)))
	assert.True(t, usage["CAD"].Equal(decimal.RequireFromString("25.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
