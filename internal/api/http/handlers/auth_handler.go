package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/deskmetrics/helpdesk-reports/internal/api/dto"
	"github.com/deskmetrics/helpdesk-reports/internal/service"
)

// AuthHandler exchanges credentials for bearer tokens.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token handles GET /api/v1/auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	identity, token, exp, err := h.authService.IssueToken(c.UserContext(), c.Query("login"), c.Query("code"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTokenResponse(identity, token, exp))
}
