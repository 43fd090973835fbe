package handlers

import (
	"fitcenter/internal/core/services"
	"fitcenter/internal/pkg/response"
	"fitcenter/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"

	"fitcenter/internal/adapters/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Login successful", result)
}

// RefreshRequest represents refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Token refreshed", result)
}

// Me returns the caller's identity and current roles
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	roles, err := h.authService.RolesOf(c.Context(), userID)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Current user", fiber.Map{
		"user_id": userID,
		"email":   c.Locals(middleware.LocalEmail),
		"roles":   roles,
	})
}
