package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/services/transaction/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Limits: models.LimitsConfig{GHSDivisor: 15.0},
		Rates:  models.RatesConfig{DefaultRate: 0.10},
	}
}

func newLimitEvaluator(ctrl *gomock.Controller) (*LimitEvaluator, *mocks.MockTransactionRepo, *mocks.MockConfigRepo) {
	txRepo := mocks.NewMockTransactionRepo(ctrl)
	configRepo := mocks.NewMockConfigRepo(ctrl)
	return NewLimitEvaluator(testConfig(), txRepo, configRepo), txRepo, configRepo
}

func TestLimit_BaseTier_FirstTransactionOfDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator, txRepo, configRepo := newLimitEvaluator(ctrl)

	user := &models.User{ID: 3, Role: models.RoleUser, KYCStatus: models.KYCPending}

	// No transactions yet today: usage is zero and the full cap applies.
	txRepo.EXPECT().DailyUsageByCurrency(gomock.Any(), int64(3), gomock.Any()).
		Return(map[string]decimal.Decimal{}, nil)
	configRepo.EXPECT().GetValue(gomock.Any(), "tiered_limits").Return("", false, nil)

	// 600 GHS / 15 = 40 reference units, inside the base cap of 50.
	err := evaluator.Check(context.Background(), user, "GHS", decimal.NewFromInt(600))
	assert.NoError(t, err)
}

func TestLimit_BaseTier_Rejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator, txRepo, configRepo := newLimitEvaluator(ctrl)

	user := &models.User{ID: 3, Role: models.RoleUser, KYCStatus: models.KYCPending}

	txRepo.EXPECT().DailyUsageByCurrency(gomock.Any(), int64(3), gomock.Any()).
		Return(map[string]decimal.Decimal{"GHS": decimal.NewFromInt(600)}, nil)
	configRepo.EXPECT().GetValue(gomock.Any(), "tiered_limits").Return("", false, nil)

	// Usage 40 + prospective 15 = 55 > 50.
	err := evaluator.Check(context.Background(), user, "GHS", decimal.NewFromInt(225))

	assert.True(t, apperr.IsLimitExceeded(err))
	var le *apperr.LimitExceededError
	assert.ErrorAs(t, err, &le)
	assert.True(t, le.Cap.Equal(decimal.NewFromInt(50)))
	assert.True(t, le.Usage.Equal(decimal.NewFromInt(40)))
	assert.Contains(t, le.NextStep, "email")
}

func TestLimit_EmailVerifiedTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator, txRepo, configRepo := newLimitEvaluator(ctrl)

	user := &models.User{ID: 3, Role: models.RoleUser, EmailVerified: true, KYCStatus: models.KYCPending}

	txRepo.EXPECT().DailyUsageByCurrency(gomock.Any(), int64(3), gomock.Any()).
		Return(map[string]decimal.Decimal{"CAD": decimal.NewFromInt(400)}, nil)
	configRepo.EXPECT().GetValue(gomock.Any(), "tiered_limits").Return("", false, nil)

	// CAD counts 1:1. 400 + 90 = 490, inside 500.
	err := evaluator.Check(context.Background(), user, "CAD", decimal.NewFromInt(90))
	assert.NoError(t, err)
}

func TestLimit_KYCOverridesEmailFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator, txRepo, configRepo := newLimitEvaluator(ctrl)

	// KYC verified with the email flag unset still gets the top cap.
	user := &models.User{ID: 3, Role: models.RoleUser, EmailVerified: false, KYCStatus: models.KYCVerified}

	txRepo.EXPECT().DailyUsageByCurrency(gomock.Any(), int64(3), gomock.Any()).
		Return(map[string]decimal.Decimal{"CAD": decimal.NewFromInt(3000)}, nil)
	configRepo.EXPECT().GetValue(gomock.Any(), "tiered_limits").Return("", false, nil)

	err := evaluator.Check(context.Background(), user, "CAD", decimal.NewFromInt(1500))
	assert.NoError(t, err)
}

func TestLimit_ConfigOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator, txRepo, configRepo := newLimitEvaluator(ctrl)

	user := &models.User{ID: 3, Role: models.RoleUser, KYCStatus: models.KYCPending}

	txRepo.EXPECT().DailyUsageByCurrency(gomock.Any(), int64(3), gomock.Any()).
		Return(map[string]decimal.Decimal{}, nil)
	configRepo.EXPECT().GetValue(gomock.Any(), "tiered_limits").
		Return(`{"base": 100, "email_verified": 1000, "kyc_verified": 10000}`, true, nil)

	// 90 CAD would breach the default base cap of 50 but fits the override.
	err := evaluator.Check(context.Background(), user, "CAD", decimal.NewFromInt(90))
	assert.NoError(t, err)
}
