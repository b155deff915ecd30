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
	"github.com/kdarko/sikaflow/services/notify"
)

// NotifyHandler handles HTTP requests for notifications and the audit trail
type NotifyHandler struct {
	notifyUC notify.NotifyUC
	jwtCfg   models.JWTConfig
}

// NewNotifyHandler creates a new notify HTTP handler
func NewNotifyHandler(notifyUC notify.NotifyUC, jwtCfg models.JWTConfig) *NotifyHandler {
	return &NotifyHandler{notifyUC: notifyUC, jwtCfg: jwtCfg}
}

// RegisterRoutes registers the notify handler routes
func (h *NotifyHandler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.jwtCfg)

	notifications := e.Group("/notifications", auth)
	notifications.GET("", h.List)
	notifications.PATCH("/:id/read", h.MarkRead)

	e.GET("/audit", h.ListAudit, auth, middleware.RequireCapability(models.CapViewAllTransactions))
}

// List returns the authenticated user's notifications.
func (h *NotifyHandler) List(c echo.Context) error {
	notifications, err := h.notifyUC.ListNotifications(c.Request().Context(), middleware.ActorID(c))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list notifications")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", notifications)
}

// MarkRead flags one of the user's notifications as read.
func (h *NotifyHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification id")
	}

	if err := h.notifyUC.MarkRead(c.Request().Context(), id, middleware.ActorID(c)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Notification not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to mark notification read")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked read", nil)
}

// ListAudit returns the audit trail for admins.
func (h *NotifyHandler) ListAudit(c echo.Context) error {
	entries, err := h.notifyUC.ListAudit(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list audit entries")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}
