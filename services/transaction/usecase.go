package transaction

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kdarko/sikaflow/services/transaction TransactionUC,RateQuoter,EventPublisher

// TransactionUC defines transfer lifecycle operations initiated by users and
// admins. Vendor-side claim/complete lives in the vendor service.
type TransactionUC interface {
	// Create validates the request, enforces the daily limit, locks the
	// current rate and persists a pending transaction. Nothing is written
	// when validation or the limit check fails.
	Create(ctx context.Context, actorID int64, req models.CreateTransactionRequest) (*models.Transaction, error)

	// List returns the actor's own transactions, or all of them for roles
	// holding CapViewAllTransactions.
	List(ctx context.Context, actorID int64, role models.Role) ([]*models.Transaction, error)

	// OverrideStatus is the admin escape hatch: any status value is written
	// without transition validation.
	OverrideStatus(ctx context.Context, actorID, id int64, status models.TransactionStatus, ip string) (*models.Transaction, error)

	// AttachProof records the payment-proof URL on the actor's transaction.
	AttachProof(ctx context.Context, actorID, id int64, url string) error

	// UpdateConfig upserts a system configuration value. The tiered-limits key
	// takes effect on the next limit check; no restart required.
	UpdateConfig(ctx context.Context, actorID int64, key, value string) error
}

// RateQuoter supplies the sell rate locked into a new transaction.
type RateQuoter interface {
	RateForCreation(ctx context.Context, pair string) (decimal.Decimal, error)
}

// EventPublisher publishes lifecycle events to the outbound bus.
type EventPublisher interface {
	StatusOverridden(ctx context.Context, event models.TransactionEvent) error
}
