package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/services/notify/mocks"
)

type notifyUCMocks struct {
	notifRepo *mocks.MockNotificationRepo
	auditRepo *mocks.MockAuditRepo
	users     *mocks.MockUserReader
	sms       *mocks.MockSMSSender
	email     *mocks.MockEmailSender
}

func newNotifyUC(ctrl *gomock.Controller) (*NotifyUC, notifyUCMocks) {
	m := notifyUCMocks{
		notifRepo: mocks.NewMockNotificationRepo(ctrl),
		auditRepo: mocks.NewMockAuditRepo(ctrl),
		users:     mocks.NewMockUserReader(ctrl),
		sms:       mocks.NewMockSMSSender(ctrl),
		email:     mocks.NewMockEmailSender(ctrl),
	}
	return NewNotifyUC(m.notifRepo, m.auditRepo, m.users, m.sms, m.email), m
}

func completedEvent() models.TransactionEvent {
	return models.TransactionEvent{
		EventID:        "evt-1",
		TransactionID:  42,
		UserID:         3,
		ActorID:        7,
		Status:         models.TransactionSent,
		Type:           "GHS-CAD",
		AmountReceived: decimal.RequireFromString("9.12"),
		RecipientName:  "Ama Mensah",
		IPAddress:      "203.0.113.9",
	}
}

func TestHandleTransactionCompleted_FullDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newNotifyUC(ctrl)

	user := &models.User{ID: 3, Phone: "+233244000000", Email: "kofi@example.com"}

	m.auditRepo.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditEntry) error {
			assert.Equal(t, int64(7), entry.UserID)
			assert.Equal(t, "VENDOR_COMPLETE_TRANSACTION", entry.Action)
			assert.Equal(t, "203.0.113.9", entry.IPAddress)
			return nil
		})
	m.notifRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, int64(3), n.UserID)
			assert.Equal(t, models.NotificationTransactionUpdate, n.Type)
			assert.Contains(t, n.Message, "#42")
			return nil
		})
	m.users.EXPECT().GetByID(gomock.Any(), int64(3)).Return(user, nil)
	m.sms.EXPECT().SendSMS(gomock.Any(), "+233244000000", gomock.Any()).Return(nil)
	m.email.EXPECT().SendEmail(gomock.Any(), "kofi@example.com", gomock.Any(), gomock.Any()).Return(nil)

	uc.HandleTransactionCompleted(context.Background(), completedEvent())
}

func TestHandleTransactionCompleted_AuditFailureDoesNotBlockRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newNotifyUC(ctrl)

	user := &models.User{ID: 3, Phone: "+233244000000", Email: "kofi@example.com"}

	m.auditRepo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	m.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.users.EXPECT().GetByID(gomock.Any(), int64(3)).Return(user, nil)
	m.sms.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.email.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// Must not panic or stop early.
	uc.HandleTransactionCompleted(context.Background(), completedEvent())
}

func TestHandleTransactionAccepted_NoSMS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newNotifyUC(ctrl)

	user := &models.User{ID: 3, Phone: "+233244000000", Email: "kofi@example.com"}

	m.auditRepo.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditEntry) error {
			assert.Equal(t, "VENDOR_ACCEPT_TRANSACTION", entry.Action)
			return nil
		})
	m.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.users.EXPECT().GetByID(gomock.Any(), int64(3)).Return(user, nil)
	// Acceptance sends email only; no SMS expectation.
	m.email.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	event := completedEvent()
	event.Status = models.TransactionProcessing
	uc.HandleTransactionAccepted(context.Background(), event)
}

func TestHandleRateAlertTriggered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newNotifyUC(ctrl)

	user := &models.User{ID: 3, Phone: "+233244000000"}

	m.notifRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, models.NotificationRateAlert, n.Type)
			return nil
		})
	m.users.EXPECT().GetByID(gomock.Any(), int64(3)).Return(user, nil)
	m.sms.EXPECT().SendSMS(gomock.Any(), "+233244000000", gomock.Any()).Return(nil)

	uc.HandleRateAlertTriggered(context.Background(), models.RateAlertEvent{
		EventID:     "evt-2",
		AlertID:     5,
		UserID:      3,
		CurrentRate: decimal.NewFromInt(15),
		TargetRate:  decimal.NewFromInt(15),
		Direction:   models.AlertAbove,
	})
}
