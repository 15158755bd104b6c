package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	apperrors "github.com/deskmetrics/helpdesk-reports/pkg/util/errorutil"
)

const identityKey = "auth_identity"

// Authenticator verifies a login/code pair.
type Authenticator interface {
	Authenticate(ctx context.Context, login, code string) (domain.StaffIdentity, error)
}

// AuthMiddleware resolves the caller from a bearer token or from the login
// and code query parameters.
type AuthMiddleware struct {
	tokens        *TokenManager
	authenticator Authenticator
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, authenticator: authenticator}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperrors.NewAuthenticationFailure(nil)
		}
		claims, err := m.tokens.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return apperrors.NewAuthenticationFailure(err)
		}
		c.Locals(identityKey, claims.Identity())
		return c.Next()
	}

	identity, err := m.authenticator.Authenticate(c.UserContext(), c.Query("login"), c.Query("code"))
	if err != nil {
		return err
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated staff identity.
func IdentityFromContext(c *fiber.Ctx) (domain.StaffIdentity, bool) {
	identity, ok := c.Locals(identityKey).(domain.StaffIdentity)
	return identity, ok
}
