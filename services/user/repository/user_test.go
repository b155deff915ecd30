package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestGetByID_Success(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "full_name", "email", "phone", "role", "kyc_status", "email_verified",
		"country", "is_online", "is_active", "pin_hash", "created_at", "updated_at",
	}).AddRow(
		int64(3), "Kofi Asante", "kofi@example.com", "+233244000000", "user", "verified", true,
		"Ghana", false, true, nil, now, now,
	)

	mock.ExpectQuery(`SELECT(.+)FROM users WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, models.KYCVerified, user.KYCStatus)
	assert.Equal(t, "Ghana", user.Country)
	assert.False(t, user.PinHash.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT(.+)FROM users WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, user)
}

func TestSetOnline_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET is_online = $1, updated_at = $2 WHERE id = $3`)).
		WithArgs(true, sqlmock.AnyArg(), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetOnline(context.Background(), 99, true)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	assert.NoError(t, err)

	withPin := &models.User{PinHash: sql.NullString{String: string(hash), Valid: true}}
	withoutPin := &models.User{}

	assert.NoError(t, VerifyPin(withPin, "1234"))
	assert.True(t, apperr.IsValidation(VerifyPin(withPin, "9999")))
	// No PIN on record means the check is a no-op.
	assert.NoError(t, VerifyPin(withoutPin, ""))
}
