package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// AuditRepo persists the append-only audit trail in Postgres.
type AuditRepo struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sqlx.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// Record inserts an audit entry. Entries are never updated or deleted.
func (r *AuditRepo) Record(ctx context.Context, entry *models.AuditEntry) error {
	query := `
		INSERT INTO audit_logs (user_id, action, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Action, entry.Details, entry.IPAddress, time.Now()).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return nil
}

// List returns every audit entry, newest first. Admin use only.
func (r *AuditRepo) List(ctx context.Context) ([]*models.AuditEntry, error) {
	query := `
		SELECT id, user_id, action, details, ip_address, created_at
		FROM audit_logs
		ORDER BY created_at DESC
	`

	var entries []*models.AuditEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return entries, nil
}
