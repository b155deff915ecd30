package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// AlertRepo persists user rate alerts.
type AlertRepo struct {
	db *sqlx.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *sqlx.DB) *AlertRepo {
	return &AlertRepo{db: db}
}

// CreateAlert inserts a new active alert.
func (r *AlertRepo) CreateAlert(ctx context.Context, alert *models.RateAlert) (*models.RateAlert, error) {
	query := `
		INSERT INTO rate_alerts (user_id, target_rate, direction, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	alert.IsActive = true

	err := r.db.QueryRowContext(ctx, query,
		alert.UserID, alert.TargetRate, alert.Direction, alert.IsActive, now,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate alert: %w", err)
	}

	return alert, nil
}

// ListAlertsByUser returns all alerts owned by a user, newest first.
func (r *AlertRepo) ListAlertsByUser(ctx context.Context, userID int64) ([]*models.RateAlert, error) {
	query := `
		SELECT id, user_id, target_rate, direction, is_active, created_at, updated_at
		FROM rate_alerts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var alerts []*models.RateAlert
	if err := r.db.SelectContext(ctx, &alerts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list rate alerts: %w", err)
	}

	return alerts, nil
}

// ListActiveAlerts returns every armed alert across all users.
func (r *AlertRepo) ListActiveAlerts(ctx context.Context) ([]*models.RateAlert, error) {
	query := `
		SELECT id, user_id, target_rate, direction, is_active, created_at, updated_at
		FROM rate_alerts
		WHERE is_active = TRUE
		ORDER BY id
	`

	var alerts []*models.RateAlert
	if err := r.db.SelectContext(ctx, &alerts, query); err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}

	return alerts, nil
}

// DeactivateAlert flips is_active off after an alert fires.
func (r *AlertRepo) DeactivateAlert(ctx context.Context, id int64) error {
	query := `UPDATE rate_alerts SET is_active = FALSE, updated_at = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to deactivate alert: %w", err)
	}

	return nil
}

// DeleteAlert removes an alert owned by userID.
func (r *AlertRepo) DeleteAlert(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM rate_alerts WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
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
