package usecase

import (
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/services/rate"
)

// RateUC implements the rate use case interface
type RateUC struct {
	cfg       *models.Config
	rateRepo  rate.RateRepo
	alertRepo rate.AlertRepo
	market    rate.MarketSource
	eventGW   rate.EventPublisher
}

// NewRateUC creates a new rate use case
func NewRateUC(
	cfg *models.Config,
	rateRepo rate.RateRepo,
	alertRepo rate.AlertRepo,
	market rate.MarketSource,
	eventGW rate.EventPublisher,
) *RateUC {
	return &RateUC{
		cfg:       cfg,
		rateRepo:  rateRepo,
		alertRepo: alertRepo,
		market:    market,
		eventGW:   eventGW,
	}
}
