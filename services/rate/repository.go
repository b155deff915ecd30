package rate

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kdarko/sikaflow/services/rate RateRepo,AlertRepo

// RateRepo defines persistence for per-pair sell rates and the short-lived
// market-rate cache.
type RateRepo interface {
	// UpsertRate stores the sell rate for a pair, one row per pair.
	UpsertRate(ctx context.Context, pair string, rate decimal.Decimal) error
	// GetRate returns the last persisted rate for a pair.
	GetRate(ctx context.Context, pair string) (*models.Rate, error)

	// CacheMarketRate stores a fetched market rate with a TTL.
	CacheMarketRate(ctx context.Context, base, target string, rate decimal.Decimal) error
	// GetCachedMarketRate returns the cached market rate, if still fresh.
	GetCachedMarketRate(ctx context.Context, base, target string) (decimal.Decimal, bool, error)
}

// AlertRepo defines persistence for user rate alerts.
type AlertRepo interface {
	CreateAlert(ctx context.Context, alert *models.RateAlert) (*models.RateAlert, error)
	ListAlertsByUser(ctx context.Context, userID int64) ([]*models.RateAlert, error)
	ListActiveAlerts(ctx context.Context) ([]*models.RateAlert, error)
	// DeactivateAlert flips is_active off after an alert fires.
	DeactivateAlert(ctx context.Context, id int64) error
	// DeleteAlert removes an alert owned by userID.
	DeleteAlert(ctx context.Context, id, userID int64) error
}
