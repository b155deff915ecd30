package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/logger"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// Alerts watch the inverse direction of the transfer pair: users care about
// how many GHS one CAD buys.
const (
	alertBaseCurrency   = "CAD"
	alertTargetCurrency = "GHS"
)

// CreateAlert registers a one-shot alert for the user.
func (uc *RateUC) CreateAlert(ctx context.Context, userID int64, req models.CreateRateAlertRequest) (*models.RateAlert, error) {
	if req.TargetRate.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validation("target_rate", "must be greater than zero")
	}

	direction := req.Direction
	if direction == "" {
		direction = models.AlertAbove
	}
	if direction != models.AlertAbove && direction != models.AlertBelow {
		return nil, apperr.Validation("direction", `must be "above" or "below"`)
	}

	alert := &models.RateAlert{
		UserID:     userID,
		TargetRate: req.TargetRate,
		Direction:  direction,
	}

	created, err := uc.alertRepo.CreateAlert(ctx, alert)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	logger.Info("Rate alert registered",
		logger.Int64("alert_id", created.ID),
		logger.Int64("user_id", userID),
		logger.String("direction", string(created.Direction)))

	return created, nil
}

// ListAlerts returns the user's alerts.
func (uc *RateUC) ListAlerts(ctx context.Context, userID int64) ([]*models.RateAlert, error) {
	return uc.alertRepo.ListAlertsByUser(ctx, userID)
}

// DeleteAlert removes an alert owned by the user.
func (uc *RateUC) DeleteAlert(ctx context.Context, id, userID int64) error {
	return uc.alertRepo.DeleteAlert(ctx, id, userID)
}

// CheckAlerts runs one sweep: fetch the CAD->GHS market rate, fire every
// active alert whose threshold is met, deactivate fired alerts. A source
// failure aborts the whole cycle and leaves every alert untouched.
func (uc *RateUC) CheckAlerts(ctx context.Context) error {
	rates, err := uc.market.FetchRates(ctx, alertBaseCurrency)
	if err != nil {
		logger.Error("Alert sweep aborted: market source unreachable", logger.Err(err))
		return err
	}

	current, ok := rates[alertTargetCurrency]
	if !ok {
		logger.Error("Alert sweep aborted: market source missing target currency",
			logger.String("target", alertTargetCurrency))
		return fmt.Errorf("market source has no %s rate", alertTargetCurrency)
	}

	alerts, err := uc.alertRepo.ListActiveAlerts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active alerts: %w", err)
	}

	for _, alert := range alerts {
		if !alert.ShouldTrigger(current) {
			continue
		}

		// Deactivate before publishing: an alert must fire at most once, and
		// a duplicate notification is worse than a lost one here.
		if err := uc.alertRepo.DeactivateAlert(ctx, alert.ID); err != nil {
			logger.Error("Failed to deactivate fired alert",
				logger.Int64("alert_id", alert.ID),
				logger.Err(err))
			continue
		}

		event := models.RateAlertEvent{
			EventID:     uuid.NewString(),
			AlertID:     alert.ID,
			UserID:      alert.UserID,
			CurrentRate: current,
			TargetRate:  alert.TargetRate,
			Direction:   alert.Direction,
			OccurredAt:  time.Now(),
		}

		if err := uc.eventGW.RateAlertTriggered(ctx, event); err != nil {
			logger.Error("Failed to publish rate alert event",
				logger.Int64("alert_id", alert.ID),
				logger.Err(err))
			continue
		}

		logger.Info("Rate alert fired",
			logger.Int64("alert_id", alert.ID),
			logger.Int64("user_id", alert.UserID),
			logger.String("direction", string(alert.Direction)))
	}

	return nil
}
