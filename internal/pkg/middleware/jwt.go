package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/kdarko/sikaflow/internal/pkg/jwt"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/internal/utils"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			rawID, ok := claims["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}
			// Numeric JSON claims decode as float64.
			idFloat, ok := rawID.(float64)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not numeric")
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}
			role := models.Role(roleStr)
			if !role.Valid() {
				return utils.UnauthorizedResponse(c, fmt.Sprintf("Invalid token: unknown role %q", roleStr))
			}

			c.Set(ContextUserID, int64(idFloat))
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}

// RequireCapability gates a route on the actor's role capabilities.
func RequireCapability(cap models.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(models.Role)
			if !ok || !role.Can(cap) {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

// ActorID returns the authenticated user id from the Echo context.
func ActorID(c echo.Context) int64 {
	id, _ := c.Get(ContextUserID).(int64)
	return id
}

// ActorRole returns the authenticated role from the Echo context.
func ActorRole(c echo.Context) models.Role {
	role, _ := c.Get(ContextRole).(models.Role)
	return role
}
