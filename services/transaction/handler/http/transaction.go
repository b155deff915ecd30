package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/middleware"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/internal/utils"
	"github.com/kdarko/sikaflow/services/transaction"
)

// TransactionHandler handles HTTP requests for the transfer lifecycle
type TransactionHandler struct {
	txUC   transaction.TransactionUC
	jwtCfg models.JWTConfig
}

// NewTransactionHandler creates a new transaction HTTP handler
func NewTransactionHandler(txUC transaction.TransactionUC, jwtCfg models.JWTConfig) *TransactionHandler {
	return &TransactionHandler{txUC: txUC, jwtCfg: jwtCfg}
}

// RegisterRoutes registers the transaction handler routes
func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.jwtCfg)

	txs := e.Group("/transactions", auth)
	txs.POST("", h.Create, middleware.RequireCapability(models.CapCreateTransaction))
	txs.GET("", h.List)
	txs.PATCH("/:id/status", h.OverrideStatus, middleware.RequireCapability(models.CapOverrideStatus))
	txs.PATCH("/:id/proof", h.AttachProof)

	cfg := e.Group("/config", auth, middleware.RequireCapability(models.CapOverrideStatus))
	cfg.PUT("/:key", h.UpdateConfig)
}

// Create submits a new transfer intent for the authenticated user.
func (h *TransactionHandler) Create(c echo.Context) error {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	tx, err := h.txUC.Create(c.Request().Context(), middleware.ActorID(c), req)
	if err != nil {
		if apperr.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if apperr.IsLimitExceeded(err) {
			return utils.UnprocessableResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to create transaction")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created", tx)
}

// List returns transactions scoped by the actor's role.
func (h *TransactionHandler) List(c echo.Context) error {
	txs, err := h.txUC.List(c.Request().Context(), middleware.ActorID(c), middleware.ActorRole(c))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", txs)
}

// OverrideStatus is the admin escape hatch for stuck transfers.
func (h *TransactionHandler) OverrideStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	tx, err := h.txUC.OverrideStatus(c.Request().Context(), middleware.ActorID(c), id, req.Status, c.RealIP())
	if err != nil {
		if apperr.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to update status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status updated", tx)
}

// AttachProof records a payment-proof URL on the actor's own transaction.
func (h *TransactionHandler) AttachProof(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	var req models.AttachProofRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.txUC.AttachProof(c.Request().Context(), middleware.ActorID(c), id, req.ProofURL); err != nil {
		if apperr.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to attach proof")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Proof attached", nil)
}

// UpdateConfig upserts a system configuration value (admin only).
func (h *TransactionHandler) UpdateConfig(c echo.Context) error {
	var req models.UpdateConfigRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.txUC.UpdateConfig(c.Request().Context(), middleware.ActorID(c), c.Param("key"), req.Value); err != nil {
		if apperr.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to update config")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Config updated", nil)
}
