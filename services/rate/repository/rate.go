package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/database"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

const marketCacheKey = "rates:market:%s:%s"

// RateRepo persists sell rates in Postgres and caches market rates in Redis.
type RateRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cacheTTL    time.Duration
}

// NewRateRepository creates a new rate repository
func NewRateRepository(db *sqlx.DB, redisClient *database.RedisClient, cacheTTL time.Duration) *RateRepo {
	return &RateRepo{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// UpsertRate stores the sell rate for a pair, one row per pair.
func (r *RateRepo) UpsertRate(ctx context.Context, pair string, rate decimal.Decimal) error {
	query := `
		INSERT INTO rates (pair, rate, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (pair) DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, pair, rate, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert rate: %w", err)
	}

	return nil
}

// GetRate returns the last persisted rate for a pair.
func (r *RateRepo) GetRate(ctx context.Context, pair string) (*models.Rate, error) {
	query := `SELECT pair, rate, updated_at FROM rates WHERE pair = $1`

	var rate models.Rate
	if err := r.db.GetContext(ctx, &rate, query, pair); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rate: %w", err)
	}

	return &rate, nil
}

// CacheMarketRate stores a fetched market rate with a TTL.
func (r *RateRepo) CacheMarketRate(ctx context.Context, base, target string, rate decimal.Decimal) error {
	key := fmt.Sprintf(marketCacheKey, base, target)
	return r.redisClient.Set(ctx, key, rate.String(), r.cacheTTL)
}

// GetCachedMarketRate returns the cached market rate, if still fresh.
func (r *RateRepo) GetCachedMarketRate(ctx context.Context, base, target string) (decimal.Decimal, bool, error) {
	key := fmt.Sprintf(marketCacheKey, base, target)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to read market-rate cache: %w", err)
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt market-rate cache entry: %w", err)
	}

	return rate, true, nil
}
