package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/services/rate/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Rates: models.RatesConfig{
			Spread:        0.005,
			FeePercentage: 1.0,
			DefaultRate:   0.10,
		},
	}
}

type rateUCMocks struct {
	rateRepo  *mocks.MockRateRepo
	alertRepo *mocks.MockAlertRepo
	market    *mocks.MockMarketSource
	eventGW   *mocks.MockEventPublisher
}

func newRateUC(ctrl *gomock.Controller) (*RateUC, rateUCMocks) {
	m := rateUCMocks{
		rateRepo:  mocks.NewMockRateRepo(ctrl),
		alertRepo: mocks.NewMockAlertRepo(ctrl),
		market:    mocks.NewMockMarketSource(ctrl),
		eventGW:   mocks.NewMockEventPublisher(ctrl),
	}
	return NewRateUC(testConfig(), m.rateRepo, m.alertRepo, m.market, m.eventGW), m
}

func TestGetQuote_Success_AppliesSpread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRateUC(ctrl)

	m.rateRepo.EXPECT().GetCachedMarketRate(gomock.Any(), "GHS", "CAD").
		Return(decimal.Zero, false, nil)
	m.market.EXPECT().FetchRates(gomock.Any(), "GHS").
		Return(map[string]decimal.Decimal{"CAD": decimal.RequireFromString("0.0962")}, nil)
	m.rateRepo.EXPECT().CacheMarketRate(gomock.Any(), "GHS", "CAD", decimal.RequireFromString("0.0962")).
		Return(nil)
	m.rateRepo.EXPECT().UpsertRate(gomock.Any(), "GHS-CAD", decimal.RequireFromString("0.0912")).
		Return(nil)

	quote, err := uc.GetQuote(context.Background(), "GHS-CAD")

	assert.NoError(t, err)
	assert.True(t, quote.Rate.Equal(decimal.RequireFromString("0.0912")))
	assert.NotNil(t, quote.MarketRate)
	assert.Empty(t, quote.Note)
}

func TestGetQuote_SourceDown_UsesCachedRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRateUC(ctrl)

	m.rateRepo.EXPECT().GetCachedMarketRate(gomock.Any(), "GHS", "CAD").
		Return(decimal.Zero, false, nil)
	m.market.EXPECT().FetchRates(gomock.Any(), "GHS").
		Return(nil, errors.New("connection refused"))
	m.rateRepo.EXPECT().GetRate(gomock.Any(), "GHS-CAD").
		Return(&models.Rate{
			Pair:      "GHS-CAD",
			Rate:      decimal.RequireFromString("0.0912"),
			UpdatedAt: time.Now().Add(-2 * time.Hour),
		}, nil)

	quote, err := uc.GetQuote(context.Background(), "GHS-CAD")

	assert.NoError(t, err)
	assert.Equal(t, "GHS-CAD", quote.Pair)
	assert.True(t, quote.Rate.Equal(decimal.RequireFromString("0.0912")))
	assert.Equal(t, "Using cached rate", quote.Note)
}

func TestGetQuote_SourceDown_NothingPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRateUC(ctrl)

	m.rateRepo.EXPECT().GetCachedMarketRate(gomock.Any(), "GHS", "CAD").
		Return(decimal.Zero, false, nil)
	m.market.EXPECT().FetchRates(gomock.Any(), "GHS").
		Return(nil, errors.New("connection refused"))
	m.rateRepo.EXPECT().GetRate(gomock.Any(), "GHS-CAD").
		Return(nil, apperr.ErrNotFound)

	quote, err := uc.GetQuote(context.Background(), "GHS-CAD")

	assert.ErrorIs(t, err, apperr.ErrRateUnavailable)
	assert.Nil(t, quote)
}

func TestGetQuote_MalformedPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newRateUC(ctrl)

	quote, err := uc.GetQuote(context.Background(), "GHSCAD")

	assert.True(t, apperr.IsValidation(err))
	assert.Nil(t, quote)
}

func TestRateForCreation_FallsBackToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRateUC(ctrl)

	// Source down and nothing persisted: creation still gets a rate.
	m.rateRepo.EXPECT().GetCachedMarketRate(gomock.Any(), "GHS", "CAD").
		Return(decimal.Zero, false, nil)
	m.market.EXPECT().FetchRates(gomock.Any(), "GHS").
		Return(nil, errors.New("connection refused"))
	m.rateRepo.EXPECT().GetRate(gomock.Any(), "GHS-CAD").
		Return(nil, apperr.ErrNotFound)

	rate, err := uc.RateForCreation(context.Background(), "GHS-CAD")

	assert.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.10)))
}
