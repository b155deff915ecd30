package notify

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kdarko/sikaflow/services/notify NotifyUC,SMSSender,EmailSender

// NotifyUC defines the event consumers and the notification read side. Event
// handlers are best-effort end to end: every failure inside them is logged
// and swallowed, never returned to the publisher.
type NotifyUC interface {
	HandleTransactionAccepted(ctx context.Context, event models.TransactionEvent)
	HandleTransactionCompleted(ctx context.Context, event models.TransactionEvent)
	HandleStatusOverridden(ctx context.Context, event models.TransactionEvent)
	HandleRateAlertTriggered(ctx context.Context, event models.RateAlertEvent)

	ListNotifications(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	ListAudit(ctx context.Context) ([]*models.AuditEntry, error)
}

// SMSSender delivers a short text message to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, body string) error
}

// EmailSender delivers a templated email to a user.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
