package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/logger"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// splitPair breaks "GHS-CAD" into base and target legs.
func splitPair(pair string) (base, target string, err error) {
	parts := strings.SplitN(pair, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", apperr.Validation("pair", fmt.Sprintf("malformed currency pair %q", pair))
	}
	return parts[0], parts[1], nil
}

// marketRate returns the live base->target rate, consulting the short-TTL
// cache before the external source.
func (uc *RateUC) marketRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	if cached, ok, err := uc.rateRepo.GetCachedMarketRate(ctx, base, target); err == nil && ok {
		return cached, nil
	} else if err != nil {
		// Cache trouble is not fatal; go to the source.
		logger.Warn("Market-rate cache read failed", logger.Err(err))
	}

	rates, err := uc.market.FetchRates(ctx, base)
	if err != nil {
		return decimal.Zero, err
	}

	market, ok := rates[target]
	if !ok {
		return decimal.Zero, fmt.Errorf("market source has no %s rate for base %s", target, base)
	}

	if err := uc.rateRepo.CacheMarketRate(ctx, base, target, market); err != nil {
		logger.Warn("Failed to cache market rate", logger.Err(err))
	}

	return market, nil
}

// GetQuote returns the current sell rate for a pair. On market-source failure
// it serves the last persisted rate tagged as cached; with nothing persisted
// it returns ErrRateUnavailable.
func (uc *RateUC) GetQuote(ctx context.Context, pair string) (*models.RateQuote, error) {
	base, target, err := splitPair(pair)
	if err != nil {
		return nil, err
	}

	market, err := uc.marketRate(ctx, base, target)
	if err != nil {
		logger.Error("Market rate unavailable, falling back to persisted rate",
			logger.String("pair", pair),
			logger.Err(err))

		cached, repoErr := uc.rateRepo.GetRate(ctx, pair)
		if repoErr != nil {
			return nil, apperr.ErrRateUnavailable
		}

		return &models.RateQuote{
			Pair:          pair,
			Rate:          cached.Rate,
			FeePercentage: uc.cfg.Rates.FeePercentage,
			Note:          "Using cached rate",
		}, nil
	}

	// The spread is our margin: buying the source currency, paying out less
	// of the target currency than the market rate.
	sell := market.Sub(decimal.NewFromFloat(uc.cfg.Rates.Spread))

	if err := uc.rateRepo.UpsertRate(ctx, pair, sell); err != nil {
		logger.Error("Failed to persist refreshed rate",
			logger.String("pair", pair),
			logger.Err(err))
	}

	return &models.RateQuote{
		Pair:          pair,
		Rate:          sell,
		MarketRate:    &market,
		FeePercentage: uc.cfg.Rates.FeePercentage,
	}, nil
}

// RateForCreation returns the rate locked into a new transaction. Provider
// failure degrades to the persisted rate, then to the configured default:
// transaction creation must never fail on rate availability.
func (uc *RateUC) RateForCreation(ctx context.Context, pair string) (decimal.Decimal, error) {
	quote, err := uc.GetQuote(ctx, pair)
	if err == nil {
		return quote.Rate, nil
	}
	if apperr.IsValidation(err) {
		return decimal.Zero, err
	}

	logger.Warn("No rate available for transaction creation, using default",
		logger.String("pair", pair),
		logger.Float64("default_rate", uc.cfg.Rates.DefaultRate),
		logger.Err(err))

	return decimal.NewFromFloat(uc.cfg.Rates.DefaultRate), nil
}
