package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// UserRepo reads user rows owned by the auth subsystem. This service never
// creates or deletes users.
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `
	id, full_name, email, phone, role, kyc_status, email_verified,
	country, is_online, is_active, pin_hash, created_at, updated_at
`

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// SetOnline flips the vendor availability flag and returns the new value.
func (r *UserRepo) SetOnline(ctx context.Context, id int64, online bool) error {
	query := `UPDATE users SET is_online = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, online, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update online flag: %w", err)
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

// VerifyPin checks a plaintext PIN against the user's stored bcrypt hash.
// Users without a PIN set always pass.
func VerifyPin(user *models.User, pin string) error {
	if !user.PinHash.Valid || user.PinHash.String == "" {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash.String), []byte(pin)); err != nil {
		return apperr.Validation("pin", "incorrect transaction PIN")
	}
	return nil
}
