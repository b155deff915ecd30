package vendor

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kdarko/sikaflow/services/vendorsvc PoolRepo,PresenceRepo,UserReader

// PoolRepo defines the vendor-facing transaction operations. Claim and
// Complete are the only code paths that move a transaction through the
// pending -> processing -> sent lifecycle.
type PoolRepo interface {
	// AvailablePool lists pending unclaimed transactions, optionally filtered
	// to types starting with prefix (empty prefix = all).
	AvailablePool(ctx context.Context, prefix string) ([]*models.Transaction, error)

	// HandledByVendor lists transactions the vendor has claimed, newest first.
	HandledByVendor(ctx context.Context, vendorID int64) ([]*models.Transaction, error)

	// Claim atomically assigns a pending unclaimed transaction to the vendor
	// and moves it to processing. Precondition failure, including losing a
	// race to another vendor, returns ErrClaimConflict with no mutation.
	Claim(ctx context.Context, txID, vendorID int64) (*models.Transaction, error)

	// Complete moves the vendor's own processing transaction to sent and
	// stamps sent_at. Returns ErrNotFound when the transaction is not in
	// processing or is assigned to someone else.
	Complete(ctx context.Context, txID, vendorID int64) (*models.Transaction, error)
}

// PresenceRepo tracks which vendors are currently taking work.
type PresenceRepo interface {
	SetOnline(ctx context.Context, vendorID int64, online bool) error
	IsOnline(ctx context.Context, vendorID int64) (bool, error)
}

// UserReader loads vendor accounts for regional routing and flips the
// persistent availability flag.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	SetOnline(ctx context.Context, id int64, online bool) error
}
