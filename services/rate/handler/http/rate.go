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
	"github.com/kdarko/sikaflow/services/rate"
)

// RateHandler handles HTTP requests for rates and rate alerts
type RateHandler struct {
	rateUC rate.RateUC
	jwtCfg models.JWTConfig
}

// NewRateHandler creates a new rate HTTP handler
func NewRateHandler(rateUC rate.RateUC, jwtCfg models.JWTConfig) *RateHandler {
	return &RateHandler{rateUC: rateUC, jwtCfg: jwtCfg}
}

// RegisterRoutes registers the rate handler routes
func (h *RateHandler) RegisterRoutes(e *echo.Echo) {
	// Current rate is public; alerts require authentication.
	e.GET("/rates", h.GetRate)

	auth := middleware.JWTAuthMiddleware(h.jwtCfg)
	alerts := e.Group("/rate-alerts", auth)
	alerts.POST("", h.CreateAlert)
	alerts.GET("", h.ListAlerts)
	alerts.DELETE("/:id", h.DeleteAlert)
}

// GetRate returns the current sell rate for a pair (default GHS-CAD).
func (h *RateHandler) GetRate(c echo.Context) error {
	pair := c.QueryParam("pair")
	if pair == "" {
		pair = models.DefaultPair
	}

	quote, err := h.rateUC.GetQuote(c.Request().Context(), pair)
	if err != nil {
		if apperr.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, apperr.ErrRateUnavailable) {
			return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Exchange rate temporarily unavailable")
		}
		return utils.InternalServerErrorResponse(c, "Failed to fetch rate")
	}

	return c.JSON(http.StatusOK, quote)
}

// CreateAlert registers a rate alert for the authenticated user.
func (h *RateHandler) CreateAlert(c echo.Context) error {
	var req models.CreateRateAlertRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	alert, err := h.rateUC.CreateAlert(c.Request().Context(), middleware.ActorID(c), req)
	if err != nil {
		if apperr.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to create alert")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Rate alert created", alert)
}

// ListAlerts returns the authenticated user's alerts.
func (h *RateHandler) ListAlerts(c echo.Context) error {
	alerts, err := h.rateUC.ListAlerts(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list alerts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", alerts)
}

// DeleteAlert removes one of the authenticated user's alerts.
func (h *RateHandler) DeleteAlert(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid alert id")
	}

	if err := h.rateUC.DeleteAlert(c.Request().Context(), id, middleware.ActorID(c)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Alert not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to delete alert")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert deleted", nil)
}
