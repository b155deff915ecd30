package rate

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kdarko/sikaflow/services/rate RateUC

// RateUC defines the rate provider and alert operations.
type RateUC interface {
	// GetQuote returns the current sell rate for a pair, refreshing from the
	// market source when possible and falling back to the cached row.
	GetQuote(ctx context.Context, pair string) (*models.RateQuote, error)
	// RateForCreation returns the rate to lock into a new transaction. Never
	// fails on provider errors: it degrades to the persisted rate, then to
	// the documented default.
	RateForCreation(ctx context.Context, pair string) (decimal.Decimal, error)

	CreateAlert(ctx context.Context, userID int64, req models.CreateRateAlertRequest) (*models.RateAlert, error)
	ListAlerts(ctx context.Context, userID int64) ([]*models.RateAlert, error)
	DeleteAlert(ctx context.Context, id, userID int64) error

	// CheckAlerts runs one alert sweep: fetch the CAD->GHS market rate and
	// fire every active alert whose threshold is met.
	CheckAlerts(ctx context.Context) error
}
