package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

func cadRates(value string) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{"GHS": decimal.RequireFromString(value)}
}

func TestCheckAlerts_FiresExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRateUC(ctrl)
	ctx := context.Background()

	alert := &models.RateAlert{
		ID:         5,
		UserID:     3,
		TargetRate: decimal.NewFromInt(15),
		Direction:  models.AlertAbove,
		IsActive:   true,
	}

	// Tick 1: rate 14.0, below target, nothing fires.
	m.market.EXPECT().FetchRates(gomock.Any(), "CAD").Return(cadRates("14.0"), nil)
	m.alertRepo.EXPECT().ListActiveAlerts(gomock.Any()).Return([]*models.RateAlert{alert}, nil)

	assert.NoError(t, uc.CheckAlerts(ctx))

	// Tick 2: rate 15.0 meets the threshold. The alert fires once and is
	// deactivated before the event goes out.
	m.market.EXPECT().FetchRates(gomock.Any(), "CAD").Return(cadRates("15.0"), nil)
	m.alertRepo.EXPECT().ListActiveAlerts(gomock.Any()).Return([]*models.RateAlert{alert}, nil)
	gomock.InOrder(
		m.alertRepo.EXPECT().DeactivateAlert(gomock.Any(), int64(5)).Return(nil),
		m.eventGW.EXPECT().
			RateAlertTriggered(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event models.RateAlertEvent) error {
				assert.Equal(t, int64(5), event.AlertID)
				assert.True(t, event.CurrentRate.Equal(decimal.NewFromInt(15)))
				return nil
			}),
	)

	assert.NoError(t, uc.CheckAlerts(ctx))

	// Tick 3: rate 16.0, but the alert is no longer active. No second fire.
	m.market.EXPECT().FetchRates(gomock.Any(), "CAD").Return(cadRates("16.0"), nil)
	m.alertRepo.EXPECT().ListActiveAlerts(gomock.Any()).Return([]*models.RateAlert{}, nil)

	assert.NoError(t, uc.CheckAlerts(ctx))
}

func TestCheckAlerts_SourceFailureAbortsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRateUC(ctrl)

	// No alert is read or touched when the source is unreachable.
	m.market.EXPECT().FetchRates(gomock.Any(), "CAD").Return(nil, errors.New("timeout"))

	assert.Error(t, uc.CheckAlerts(context.Background()))
}

func TestCheckAlerts_DirectionBelow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRateUC(ctrl)

	alert := &models.RateAlert{
		ID:         6,
		UserID:     3,
		TargetRate: decimal.NewFromInt(14),
		Direction:  models.AlertBelow,
		IsActive:   true,
	}

	m.market.EXPECT().FetchRates(gomock.Any(), "CAD").Return(cadRates("13.5"), nil)
	m.alertRepo.EXPECT().ListActiveAlerts(gomock.Any()).Return([]*models.RateAlert{alert}, nil)
	m.alertRepo.EXPECT().DeactivateAlert(gomock.Any(), int64(6)).Return(nil)
	m.eventGW.EXPECT().RateAlertTriggered(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, uc.CheckAlerts(context.Background()))
}

func TestCreateAlert_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRateUC(ctrl)

	m.alertRepo.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.RateAlert) (*models.RateAlert, error) {
			assert.Equal(t, models.AlertAbove, alert.Direction)
			alert.ID = 9
			return alert, nil
		})

	alert, err := uc.CreateAlert(context.Background(), 3, models.CreateRateAlertRequest{
		TargetRate: decimal.NewFromInt(15),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), alert.ID)
}

func TestCreateAlert_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newRateUC(ctrl)

	_, err := uc.CreateAlert(context.Background(), 3, models.CreateRateAlertRequest{
		TargetRate: decimal.Zero,
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.CreateAlert(context.Background(), 3, models.CreateRateAlertRequest{
		TargetRate: decimal.NewFromInt(15),
		Direction:  "sideways",
	})
	assert.True(t, apperr.IsValidation(err))
}
