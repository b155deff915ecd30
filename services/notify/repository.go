package notify

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kdarko/sikaflow/services/notify NotificationRepo,AuditRepo,UserReader

// NotificationRepo persists in-app notification rows.
type NotificationRepo interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

// AuditRepo persists the append-only audit trail of privileged actions.
type AuditRepo interface {
	Record(ctx context.Context, entry *models.AuditEntry) error
	List(ctx context.Context) ([]*models.AuditEntry, error)
}

// UserReader loads users for contact details on outbound messages.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
