package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kdarko/sikaflow/services/transaction TransactionRepo,ConfigRepo,UserReader

// TransactionRepo defines persistence for transfer records. Rows are never
// hard-deleted; every state change leaves the audit trail intact.
type TransactionRepo interface {
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Transaction, error)
	ListAll(ctx context.Context) ([]*models.Transaction, error)

	// SetStatus is the unconditional admin override; it validates nothing
	// about the transition.
	SetStatus(ctx context.Context, id int64, status models.TransactionStatus) (*models.Transaction, error)

	// AttachProof sets proof_url at any status. Last write wins; concurrent
	// uploads are not guarded.
	AttachProof(ctx context.Context, id, userID int64, url string) error

	// DailyUsageByCurrency sums amount_sent per source currency for the
	// user's transactions created at or after `since`.
	DailyUsageByCurrency(ctx context.Context, userID int64, since time.Time) (map[string]decimal.Decimal, error)
}

// ConfigRepo exposes the key/value system configuration with upsert-by-key
// semantics.
type ConfigRepo interface {
	GetValue(ctx context.Context, key string) (string, bool, error)
	Upsert(ctx context.Context, key, value string) error
}

// UserReader narrows user access to what transaction creation needs.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
