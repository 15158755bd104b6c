package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/deskmetrics/helpdesk-reports/internal/api/dto"
	"github.com/deskmetrics/helpdesk-reports/internal/auth"
	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/service"
	apperrors "github.com/deskmetrics/helpdesk-reports/pkg/util/errorutil"
)

// ReportsHandler serves the staff reports.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Profile GET /api/v1/profile.
func (h *ReportsHandler) Profile(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProfileResponse(h.service.Profile(identity)))
}

// Departments GET /api/v1/departments.
func (h *ReportsHandler) Departments(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDepartmentResponses(h.service.Departments(identity)))
}

// Tickets GET /api/v1/tickets.
func (h *ReportsHandler) Tickets(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponses(h.service.Tickets(identity)))
}

// TicketDetail GET /api/v1/tickets/:id.
func (h *ReportsHandler) TicketDetail(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	ticketID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || ticketID <= 0 {
		return apperrors.NewValidationError("invalid ticket id", map[string]any{"id": c.Params("id")})
	}
	detail, err := h.service.TicketDetail(c.UserContext(), identity, ticketID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketDetailResponse(detail))
}

// Staff GET /api/v1/staff.
func (h *ReportsHandler) Staff(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStaffResponses(h.service.Staff(identity)))
}

// Metrics GET /api/v1/metrics.
func (h *ReportsHandler) Metrics(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMetricsResponse(h.service.Metrics(identity)))
}

// Timeline GET /api/v1/timeline?days=N. A missing or non-numeric days falls
// back to the configured default; out-of-range values are clamped.
func (h *ReportsHandler) Timeline(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	days := c.QueryInt("days", h.service.DefaultTimelineDays())
	return c.JSON(dto.NewTimelineResponse(h.service.Timeline(identity, days)))
}

// Comparison GET /api/v1/comparison.
func (h *ReportsHandler) Comparison(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewComparisonResponse(h.service.Comparison(identity)))
}

// Forecast GET /api/v1/forecast.
func (h *ReportsHandler) Forecast(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewForecastResponse(h.service.Forecast(identity)))
}

// Categories GET /api/v1/categories.
func (h *ReportsHandler) Categories(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoryResponses(h.service.Categories(identity)))
}

func identityFrom(c *fiber.Ctx) (domain.StaffIdentity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return domain.StaffIdentity{}, apperrors.NewAuthenticationFailure(nil)
	}
	return identity, nil
}
