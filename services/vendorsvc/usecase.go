package vendor

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kdarko/sikaflow/services/vendorsvc VendorUC,EventPublisher

// VendorUC defines the vendor fulfillment operations.
type VendorUC interface {
	// SetAvailability toggles whether the vendor is taking work.
	SetAvailability(ctx context.Context, vendorID int64, online bool) error

	// Pool returns the pending unclaimed transactions visible to the vendor
	// under the regional routing rule.
	Pool(ctx context.Context, vendorID int64) ([]*models.Transaction, error)

	// Handled returns the transactions the vendor has claimed.
	Handled(ctx context.Context, vendorID int64) ([]*models.Transaction, error)

	// Accept atomically claims a pending transaction for the vendor.
	Accept(ctx context.Context, vendorID, txID int64, ip string) (*models.Transaction, error)

	// Complete marks the vendor's own processing transaction as sent.
	Complete(ctx context.Context, vendorID, txID int64, ip string) (*models.Transaction, error)
}

// EventPublisher publishes claim and completion events to the outbound bus.
type EventPublisher interface {
	TransactionAccepted(ctx context.Context, event models.TransactionEvent) error
	TransactionCompleted(ctx context.Context, event models.TransactionEvent) error
}
