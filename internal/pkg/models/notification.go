package models

import "time"

// NotificationType tags the in-app notification category.
type NotificationType string

const (
	NotificationTransactionUpdate NotificationType = "TRANSACTION_UPDATE"
	NotificationRateAlert         NotificationType = "RATE_ALERT"
)

// Notification is an append-only user-facing message row.
type Notification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Message   string           `json:"message" db:"message"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// AuditEntry is an append-only record of a privileged action.
type AuditEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Details   string    `json:"details" db:"details"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
