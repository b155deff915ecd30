package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/database"
)

func setupRateRepo(t *testing.T) (*RateRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := database.NewRedisClientFromExisting(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return NewRateRepository(sqlxDB, redisClient, time.Minute), mock, mr
}

func TestUpsertRate(t *testing.T) {
	repo, mock, _ := setupRateRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO rates (pair, rate, updated_at)`)).
		WithArgs("GHS-CAD", decimal.RequireFromString("0.0912"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertRate(context.Background(), "GHS-CAD", decimal.RequireFromString("0.0912"))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRate_NotFound(t *testing.T) {
	repo, mock, _ := setupRateRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT pair, rate, updated_at FROM rates WHERE pair = $1`)).
		WithArgs("GHS-CAD").
		WillReturnRows(sqlmock.NewRows([]string{"pair", "rate", "updated_at"}))

	rate, err := repo.GetRate(context.Background(), "GHS-CAD")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRateCache_RoundTrip(t *testing.T) {
	repo, _, _ := setupRateRepo(t)
	ctx := context.Background()

	rate, found, err := repo.GetCachedMarketRate(ctx, "GHS", "CAD")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.True(t, rate.IsZero())

	err = repo.CacheMarketRate(ctx, "GHS", "CAD", decimal.RequireFromString("0.0962"))
	assert.NoError(t, err)

	rate, found, err = repo.GetCachedMarketRate(ctx, "GHS", "CAD")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.0962")))
}

func TestMarketRateCache_Expiry(t *testing.T) {
	repo, _, mr := setupRateRepo(t)
	ctx := context.Background()

	err := repo.CacheMarketRate(ctx, "GHS", "CAD", decimal.RequireFromString("0.0962"))
	assert.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, found, err := repo.GetCachedMarketRate(ctx, "GHS", "CAD")
	assert.NoError(t, err)
	assert.False(t, found)
}
