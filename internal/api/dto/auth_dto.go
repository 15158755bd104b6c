package dto

import (
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

// TokenResponse is returned by the token exchange.
type TokenResponse struct {
	Token     string           `json:"token"`
	TokenType string           `json:"token_type"`
	ExpiresAt time.Time        `json:"expires_at"`
	StaffID   int64            `json:"staff_id"`
	Name      string           `json:"name"`
	Role      domain.StaffRole `json:"role"`
}

// NewTokenResponse builds the response for a bearer token.
func NewTokenResponse(identity domain.StaffIdentity, token string, expiresAt time.Time) TokenResponse {
	return TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		StaffID:   identity.StaffID,
		Name:      identity.Name,
		Role:      identity.Role,
	}
}
