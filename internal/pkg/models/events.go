package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event subjects published on NATS. The notify service is the only consumer;
// state transitions never wait on these.
const (
	SubjectTransactionAccepted  = "transaction.accepted"
	SubjectTransactionCompleted = "transaction.completed"
	SubjectStatusOverridden     = "transaction.status_overridden"
	SubjectRateAlertTriggered   = "rate.alert.triggered"
)

// TransactionEvent describes a lifecycle transition for downstream consumers
// (audit log, in-app notification, SMS, email).
type TransactionEvent struct {
	EventID        string            `json:"event_id"`
	TransactionID  int64             `json:"transaction_id"`
	UserID         int64             `json:"user_id"`
	ActorID        int64             `json:"actor_id"`
	Status         TransactionStatus `json:"status"`
	Type           string            `json:"type"`
	AmountReceived decimal.Decimal   `json:"amount_received"`
	RecipientName  string            `json:"recipient_name"`
	IPAddress      string            `json:"ip_address"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

// RateAlertEvent describes a fired rate alert.
type RateAlertEvent struct {
	EventID     string          `json:"event_id"`
	AlertID     int64           `json:"alert_id"`
	UserID      int64           `json:"user_id"`
	CurrentRate decimal.Decimal `json:"current_rate"`
	TargetRate  decimal.Decimal `json:"target_rate"`
	Direction   AlertDirection  `json:"direction"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
