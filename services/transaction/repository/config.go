package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ConfigRepo persists system configuration as key/value rows with
// upsert-by-key semantics.
type ConfigRepo struct {
	db *sqlx.DB
}

// NewConfigRepository creates a new system-config repository
func NewConfigRepository(db *sqlx.DB) *ConfigRepo {
	return &ConfigRepo{db: db}
}

// GetValue returns the raw value for a key and whether it exists.
func (r *ConfigRepo) GetValue(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM system_config WHERE key = $1`

	var value string
	if err := r.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get config %s: %w", key, err)
	}

	return value, true, nil
}

// Upsert stores a value under a key, replacing any existing value.
func (r *ConfigRepo) Upsert(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO system_config (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert config %s: %w", key, err)
	}

	return nil
}
