package usecase

import (
	"github.com/kdarko/sikaflow/services/notify"
)

// NotifyUC implements the notify use case interface
type NotifyUC struct {
	notifRepo notify.NotificationRepo
	auditRepo notify.AuditRepo
	users     notify.UserReader
	sms       notify.SMSSender
	email     notify.EmailSender
}

// NewNotifyUC creates a new notify use case
func NewNotifyUC(
	notifRepo notify.NotificationRepo,
	auditRepo notify.AuditRepo,
	users notify.UserReader,
	sms notify.SMSSender,
	email notify.EmailSender,
) *NotifyUC {
	return &NotifyUC{
		notifRepo: notifRepo,
		auditRepo: auditRepo,
		users:     users,
		sms:       sms,
		email:     email,
	}
}
