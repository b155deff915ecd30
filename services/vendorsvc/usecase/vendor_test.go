package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/services/vendorsvc/mocks"
)

func newVendorUC(ctrl *gomock.Controller) (*VendorUC, *mocks.MockPoolRepo, *mocks.MockPresenceRepo, *mocks.MockUserReader, *mocks.MockEventPublisher) {
	poolRepo := mocks.NewMockPoolRepo(ctrl)
	presence := mocks.NewMockPresenceRepo(ctrl)
	users := mocks.NewMockUserReader(ctrl)
	eventGW := mocks.NewMockEventPublisher(ctrl)
	return NewVendorUC(poolRepo, presence, users, eventGW), poolRepo, presence, users, eventGW
}

func TestPool_RegionRouting(t *testing.T) {
	tests := []struct {
		name       string
		country    string
		wantPrefix string
	}{
		{"canadian vendor sees CAD pairs", "Canada", "CAD-"},
		{"ghanaian vendor sees GHS pairs", "Ghana", "GHS-"},
		{"vendor without country sees all", "", ""},
		{"unknown country sees all", "Nigeria", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, poolRepo, _, users, _ := newVendorUC(ctrl)

			users.EXPECT().
				GetByID(gomock.Any(), int64(7)).
				Return(&models.User{ID: 7, Role: models.RoleVendor, Country: tt.country}, nil)
			poolRepo.EXPECT().
				AvailablePool(gomock.Any(), tt.wantPrefix).
				Return([]*models.Transaction{}, nil)

			_, err := uc.Pool(context.Background(), 7)
			assert.NoError(t, err)
		})
	}
}

func TestAccept_Success_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, poolRepo, _, _, eventGW := newVendorUC(ctrl)

	vendorID := int64(7)
	claimed := &models.Transaction{
		ID:       42,
		UserID:   3,
		VendorID: &vendorID,
		Type:     "GHS-CAD",
		Status:   models.TransactionProcessing,
	}

	poolRepo.EXPECT().Claim(gomock.Any(), int64(42), vendorID).Return(claimed, nil)
	eventGW.EXPECT().
		TransactionAccepted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.TransactionEvent) error {
			assert.Equal(t, int64(42), event.TransactionID)
			assert.Equal(t, vendorID, event.ActorID)
			assert.Equal(t, models.TransactionProcessing, event.Status)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	tx, err := uc.Accept(context.Background(), vendorID, 42, "203.0.113.9")

	assert.NoError(t, err)
	assert.Equal(t, claimed, tx)
}

func TestAccept_ConflictPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, poolRepo, _, _, _ := newVendorUC(ctrl)

	poolRepo.EXPECT().Claim(gomock.Any(), int64(42), int64(7)).Return(nil, apperr.ErrClaimConflict)

	tx, err := uc.Accept(context.Background(), 7, 42, "")

	assert.ErrorIs(t, err, apperr.ErrClaimConflict)
	assert.Nil(t, tx)
}

func TestAccept_EventFailureDoesNotUndoClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, poolRepo, _, _, eventGW := newVendorUC(ctrl)

	vendorID := int64(7)
	claimed := &models.Transaction{ID: 42, UserID: 3, VendorID: &vendorID, Status: models.TransactionProcessing}

	poolRepo.EXPECT().Claim(gomock.Any(), int64(42), vendorID).Return(claimed, nil)
	eventGW.EXPECT().TransactionAccepted(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	tx, err := uc.Accept(context.Background(), vendorID, 42, "")

	assert.NoError(t, err)
	assert.Equal(t, claimed, tx)
}

func TestComplete_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, poolRepo, _, _, eventGW := newVendorUC(ctrl)

	vendorID := int64(7)
	sent := &models.Transaction{ID: 42, UserID: 3, VendorID: &vendorID, Status: models.TransactionSent}

	poolRepo.EXPECT().Complete(gomock.Any(), int64(42), vendorID).Return(sent, nil)
	eventGW.EXPECT().
		TransactionCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.TransactionEvent) error {
			assert.Equal(t, models.TransactionSent, event.Status)
			return nil
		})

	tx, err := uc.Complete(context.Background(), vendorID, 42, "")

	assert.NoError(t, err)
	assert.Equal(t, sent, tx)
}

func TestSetAvailability_PresenceFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, presence, users, _ := newVendorUC(ctrl)

	users.EXPECT().SetOnline(gomock.Any(), int64(7), true).Return(nil)
	presence.EXPECT().SetOnline(gomock.Any(), int64(7), true).Return(errors.New("redis down"))

	assert.NoError(t, uc.SetAvailability(context.Background(), 7, true))
}
