package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/deskmetrics/helpdesk-reports/internal/api/http/handlers"
	"github.com/deskmetrics/helpdesk-reports/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Reports        *handlers.ReportsHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Authentication is attached per route so
// unknown paths answer 404 rather than 401.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	v1 := app.Group("/api/v1")
	v1.Get("/health", cfg.Health.Summary)
	v1.Get("/auth/token", cfg.Auth.Token)

	secured := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireIdentity(), h}
	}
	v1.Get("/profile", secured(cfg.Reports.Profile)...)
	v1.Get("/departments", secured(cfg.Reports.Departments)...)
	v1.Get("/tickets", secured(cfg.Reports.Tickets)...)
	v1.Get("/tickets/:id", secured(cfg.Reports.TicketDetail)...)
	v1.Get("/staff", secured(cfg.Reports.Staff)...)
	v1.Get("/metrics", secured(cfg.Reports.Metrics)...)
	v1.Get("/timeline", secured(cfg.Reports.Timeline)...)
	v1.Get("/comparison", secured(cfg.Reports.Comparison)...)
	v1.Get("/forecast", secured(cfg.Reports.Forecast)...)
	v1.Get("/categories", secured(cfg.Reports.Categories)...)
}
