package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/middleware"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/internal/utils"
	"github.com/kdarko/sikaflow/services/vendorsvc"
)

// VendorHandler handles HTTP requests for vendor fulfillment
type VendorHandler struct {
	vendorUC vendor.VendorUC
	jwtCfg   models.JWTConfig
}

// NewVendorHandler creates a new vendor HTTP handler
func NewVendorHandler(vendorUC vendor.VendorUC, jwtCfg models.JWTConfig) *VendorHandler {
	return &VendorHandler{vendorUC: vendorUC, jwtCfg: jwtCfg}
}

// availabilityRequest toggles the vendor's online flag.
type availabilityRequest struct {
	Online bool `json:"online"`
}

// RegisterRoutes registers the vendor handler routes
func (h *VendorHandler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.jwtCfg)
	claim := middleware.RequireCapability(models.CapClaimTransaction)

	grp := e.Group("/vendor", auth, claim)
	grp.POST("/status", h.SetAvailability)
	grp.GET("/pool", h.Pool)
	grp.GET("/transactions", h.Handled)
	grp.POST("/accept", h.Accept)
	grp.POST("/complete", h.Complete)
}

// SetAvailability toggles whether the vendor is taking work.
func (h *VendorHandler) SetAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.vendorUC.SetAvailability(c.Request().Context(), middleware.ActorID(c), req.Online); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Vendor not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to update availability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", map[string]bool{"online": req.Online})
}

// Pool returns the vendor's claimable transactions.
func (h *VendorHandler) Pool(c echo.Context) error {
	txs, err := h.vendorUC.Pool(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list pool")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", txs)
}

// Handled returns the transactions the vendor has claimed.
func (h *VendorHandler) Handled(c echo.Context) error {
	txs, err := h.vendorUC.Handled(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", txs)
}

// Accept claims a pending transaction for the vendor.
func (h *VendorHandler) Accept(c echo.Context) error {
	var req models.ClaimRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	tx, err := h.vendorUC.Accept(c.Request().Context(), middleware.ActorID(c), req.TransactionID, c.RealIP())
	if err != nil {
		if errors.Is(err, apperr.ErrClaimConflict) {
			return utils.ConflictResponse(c, "Transaction already accepted or unavailable")
		}
		return utils.InternalServerErrorResponse(c, "Failed to accept transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction accepted", tx)
}

// Complete marks the vendor's processing transaction as sent.
func (h *VendorHandler) Complete(c echo.Context) error {
	var req models.ClaimRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	tx, err := h.vendorUC.Complete(c.Request().Context(), middleware.ActorID(c), req.TransactionID, c.RealIP())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found or not assigned to you")
		}
		return utils.InternalServerErrorResponse(c, "Failed to complete transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction completed", tx)
}
