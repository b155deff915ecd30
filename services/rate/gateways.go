package rate

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/kdarko/sikaflow/services/rate MarketSource,EventPublisher

// MarketSource fetches live market rates for a base currency from the
// external provider.
type MarketSource interface {
	FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// EventPublisher publishes alert events to the outbound bus. Failures are
// logged by callers, never propagated.
type EventPublisher interface {
	RateAlertTriggered(ctx context.Context, event models.RateAlertEvent) error
}
