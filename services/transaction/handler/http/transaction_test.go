package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/middleware"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/services/transaction/mocks"
)

func setupContext(t *testing.T, method, target, body string, actorID int64, role models.Role) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, actorID)
	c.Set(middleware.ContextRole, role)
	return c, rec
}

func TestCreateTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, models.JWTConfig{})

	body := `{
		"amount_sent": "100",
		"type": "GHS-CAD",
		"recipient_details": {"kind": "momo", "name": "Ama Mensah", "account": "0244000000"}
	}`
	c, rec := setupContext(t, http.MethodPost, "/transactions", body, 3, models.RoleUser)

	mockUC.EXPECT().
		Create(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, req models.CreateTransactionRequest) (*models.Transaction, error) {
			assert.True(t, req.AmountSent.Equal(decimal.NewFromInt(100)))
			assert.Equal(t, "GHS-CAD", req.Type)
			return &models.Transaction{ID: 42, UserID: 3, Status: models.TransactionPending}, nil
		})

	err := handler.Create(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestCreateTransaction_LimitExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, models.JWTConfig{})

	body := `{"amount_sent": "9000", "type": "GHS-CAD", "recipient_details": {"kind": "momo", "name": "A", "account": "1"}}`
	c, rec := setupContext(t, http.MethodPost, "/transactions", body, 3, models.RoleUser)

	mockUC.EXPECT().
		Create(gomock.Any(), int64(3), gomock.Any()).
		Return(nil, &apperr.LimitExceededError{
			Usage:       decimal.NewFromInt(40),
			Prospective: decimal.NewFromInt(600),
			Cap:         decimal.NewFromInt(50),
			NextStep:    "Verify your email address to raise your daily limit.",
		})

	err := handler.Create(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "daily limit exceeded")
	assert.Contains(t, rec.Body.String(), "Verify your email")
}

func TestListTransactions_AdminSeesAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, models.JWTConfig{})

	c, rec := setupContext(t, http.MethodGet, "/transactions", "", 9, models.RoleAdmin)

	mockUC.EXPECT().
		List(gomock.Any(), int64(9), models.RoleAdmin).
		Return([]*models.Transaction{{ID: 1}, {ID: 2}}, nil)

	err := handler.List(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOverrideStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, models.JWTConfig{})

	c, rec := setupContext(t, http.MethodPatch, "/transactions/99/status", `{"status": "sent"}`, 9, models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("99")

	mockUC.EXPECT().
		OverrideStatus(gomock.Any(), int64(9), int64(99), models.TransactionSent, gomock.Any()).
		Return(nil, apperr.ErrNotFound)

	err := handler.OverrideStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttachProof_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC, models.JWTConfig{})

	c, rec := setupContext(t, http.MethodPatch, "/transactions/42/proof",
		`{"proof_url": "https://cdn.example.com/proof.png"}`, 3, models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("42")

	mockUC.EXPECT().
		AttachProof(gomock.Any(), int64(3), int64(42), "https://cdn.example.com/proof.png").
		Return(nil)

	err := handler.AttachProof(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
