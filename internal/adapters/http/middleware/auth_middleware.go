package middleware

import (
	"strings"

	"fitcenter/internal/config"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/core/services"
	"fitcenter/internal/pkg/jwt"
	"fitcenter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID = "userID"
	LocalEmail  = "email"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity on the request context
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)

		return c.Next()
	}
}

// RequireRole gates a route on the authorization predicate. Every
// request runs a fresh role lookup — roles are read from the store, not
// from token claims, so a revoked assignment takes effect immediately.
func RequireRole(authService *services.AuthService, role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(LocalUserID).(uuid.UUID)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		has, err := authService.HasRole(c.Context(), userID, role)
		if err != nil {
			return response.InternalServerError(c, "Role check failed")
		}
		if !has {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// CallerID returns the authenticated caller's identity token
func CallerID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals(LocalUserID).(uuid.UUID)
	return userID, ok
}
