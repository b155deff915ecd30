package usecase

import (
	"context"
	"fmt"

	"github.com/kdarko/sikaflow/internal/pkg/logger"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// Audit action tags.
const (
	actionVendorAccept   = "VENDOR_ACCEPT_TRANSACTION"
	actionVendorComplete = "VENDOR_COMPLETE_TRANSACTION"
	actionAdminOverride  = "ADMIN_OVERRIDE_STATUS"
)

// HandleTransactionAccepted records the claim for the sender's benefit.
func (uc *NotifyUC) HandleTransactionAccepted(ctx context.Context, event models.TransactionEvent) {
	message := fmt.Sprintf("Your transfer #%d is being processed.", event.TransactionID)
	uc.dispatch(ctx, event, actionVendorAccept, message, "")
}

// HandleTransactionCompleted records the completion and pushes SMS/email.
func (uc *NotifyUC) HandleTransactionCompleted(ctx context.Context, event models.TransactionEvent) {
	message := fmt.Sprintf("Your transfer #%d has been sent to %s.",
		event.TransactionID, event.RecipientName)
	sms := fmt.Sprintf("Sikaflow: transfer #%d of %s %s sent to %s.",
		event.TransactionID, event.AmountReceived.StringFixed(2),
		targetCurrency(event.Type), event.RecipientName)
	uc.dispatch(ctx, event, actionVendorComplete, message, sms)
}

// HandleStatusOverridden records an admin override.
func (uc *NotifyUC) HandleStatusOverridden(ctx context.Context, event models.TransactionEvent) {
	message := fmt.Sprintf("Your transfer #%d status was updated to %s.",
		event.TransactionID, event.Status)
	uc.dispatch(ctx, event, actionAdminOverride, message, "")
}

// HandleRateAlertTriggered notifies the user their rate target was reached.
func (uc *NotifyUC) HandleRateAlertTriggered(ctx context.Context, event models.RateAlertEvent) {
	message := fmt.Sprintf("Rate alert: CAD-GHS is now %s (your target: %s %s).",
		event.CurrentRate.String(), event.Direction, event.TargetRate.String())

	if err := uc.notifRepo.Create(ctx, &models.Notification{
		UserID:  event.UserID,
		Type:    models.NotificationRateAlert,
		Message: message,
	}); err != nil {
		logger.Error("Failed to store rate-alert notification",
			logger.Int64("alert_id", event.AlertID),
			logger.Err(err))
	}

	user, err := uc.users.GetByID(ctx, event.UserID)
	if err != nil {
		logger.Error("Failed to load user for rate alert",
			logger.Int64("user_id", event.UserID),
			logger.Err(err))
		return
	}

	if user.Phone != "" {
		if err := uc.sms.SendSMS(ctx, user.Phone, message); err != nil {
			logger.Warn("Failed to send rate-alert SMS",
				logger.Int64("user_id", user.ID),
				logger.Err(err))
		}
	}
}

// dispatch writes the audit entry and notification row, then pushes optional
// SMS and a templated email. Every step is independent; one failure never
// suppresses the others.
func (uc *NotifyUC) dispatch(ctx context.Context, event models.TransactionEvent, action, message, smsBody string) {
	if err := uc.auditRepo.Record(ctx, &models.AuditEntry{
		UserID:    event.ActorID,
		Action:    action,
		Details:   fmt.Sprintf("transaction %d -> %s", event.TransactionID, event.Status),
		IPAddress: event.IPAddress,
	}); err != nil {
		logger.Error("Failed to record audit entry",
			logger.Int64("transaction_id", event.TransactionID),
			logger.String("action", action),
			logger.Err(err))
	}

	if err := uc.notifRepo.Create(ctx, &models.Notification{
		UserID:  event.UserID,
		Type:    models.NotificationTransactionUpdate,
		Message: message,
	}); err != nil {
		logger.Error("Failed to store notification",
			logger.Int64("transaction_id", event.TransactionID),
			logger.Err(err))
	}

	user, err := uc.users.GetByID(ctx, event.UserID)
	if err != nil {
		logger.Error("Failed to load user for notification",
			logger.Int64("user_id", event.UserID),
			logger.Err(err))
		return
	}

	if smsBody != "" && user.Phone != "" {
		if err := uc.sms.SendSMS(ctx, user.Phone, smsBody); err != nil {
			logger.Warn("Failed to send SMS",
				logger.Int64("user_id", user.ID),
				logger.Err(err))
		}
	}

	if user.Email != "" {
		subject := fmt.Sprintf("Transfer #%d update", event.TransactionID)
		if err := uc.email.SendEmail(ctx, user.Email, subject, message); err != nil {
			logger.Warn("Failed to send email",
				logger.Int64("user_id", user.ID),
				logger.Err(err))
		}
	}
}

// ListNotifications returns the user's notifications.
func (uc *NotifyUC) ListNotifications(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return uc.notifRepo.ListByUser(ctx, userID)
}

// MarkRead flags the user's own notification as read.
func (uc *NotifyUC) MarkRead(ctx context.Context, id, userID int64) error {
	return uc.notifRepo.MarkRead(ctx, id, userID)
}

// ListAudit returns the full audit trail.
func (uc *NotifyUC) ListAudit(ctx context.Context) ([]*models.AuditEntry, error) {
	return uc.auditRepo.List(ctx)
}

func targetCurrency(pair string) string {
	for i := 0; i < len(pair); i++ {
		if pair[i] == '-' && i+1 < len(pair) {
			return pair[i+1:]
		}
	}
	return pair
}
