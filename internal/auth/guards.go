package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/deskmetrics/helpdesk-reports/pkg/util/errorutil"
)

// ReadOnly rejects every method other than GET and HEAD.
func ReadOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead:
			return c.Next()
		}
		return apperrors.NewMethodNotAllowed("only GET requests are allowed")
	}
}

// RequireIdentity ensures a staff identity was resolved.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return apperrors.NewAuthenticationFailure(nil)
		}
		return c.Next()
	}
}
