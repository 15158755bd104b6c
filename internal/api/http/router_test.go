package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/deskmetrics/helpdesk-reports/internal/api/http/handlers"
	"github.com/deskmetrics/helpdesk-reports/internal/auth"
	"github.com/deskmetrics/helpdesk-reports/internal/config"
	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/events"
	"github.com/deskmetrics/helpdesk-reports/internal/observability"
	"github.com/deskmetrics/helpdesk-reports/internal/report"
	"github.com/deskmetrics/helpdesk-reports/internal/service"
)

func ptr(v int64) *int64 { return &v }

func testSnapshot() *domain.Snapshot {
	created := time.Now().Add(-2 * time.Hour)
	closed := created.Add(90 * time.Minute)
	return &domain.Snapshot{
		Users: []domain.User{{ID: 1, FullName: "Maria Ivanova"}},
		Staff: []domain.StaffMember{
			{ID: 7, Username: "osidorov", FullName: "Oleg Sidorov", Department: "IT", IsActive: true},
			{ID: 8, Username: "porlov", FullName: "Pavel Orlov", Department: "IT", IsActive: true},
			{ID: 9, Username: "ikozlova", FullName: "Irina Kozlova", Department: "HR", IsActive: true},
		},
		Statuses:   []domain.TicketStatus{{ID: domain.StatusNew, Name: "New"}, {ID: domain.StatusResolved, Name: "Resolved"}},
		Categories: []domain.ProblemCategory{{ID: 1, Name: "Hardware"}, {ID: 2, Name: "Network"}},
		Tickets: []domain.Ticket{
			{ID: 1, Subject: "Printer", UserID: 1, AssignedStaffID: ptr(7), StatusID: domain.StatusResolved, CategoryID: 1, CreatedAt: created, ClosedAt: &closed},
			{ID: 2, Subject: "VPN", UserID: 1, AssignedStaffID: ptr(7), StatusID: domain.StatusNew, CategoryID: 2, CreatedAt: created},
			{ID: 3, Subject: "Disk", UserID: 1, AssignedStaffID: ptr(8), StatusID: domain.StatusNew, CategoryID: 1, CreatedAt: created},
		},
		Comments: []domain.TicketComment{{ID: 1, TicketID: 1, AuthorID: 1, AuthorType: domain.AuthorTypeUser, Text: "help"}},
		Logs:     []domain.TicketLog{{ID: 1, TicketID: 1, Action: "created"}},
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()

	hash, err := auth.HashCode("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	store, err := auth.NewCredentialStore([]auth.Account{{
		Login: "osidorov", CodeHash: hash, Name: "Oleg Sidorov",
		Role: domain.StaffRoleManager, StaffID: 7, Departments: []string{"IT"},
	}}, bcrypt.MinCost)
	require.NoError(t, err)
	verifier, err := auth.NewCodeVerifier(bcrypt.MinCost)
	require.NoError(t, err)

	dispatcher := events.NewInMemoryDispatcher()
	tokens := auth.NewTokenManager("test-secret", 5)
	authService := service.NewAuthService(service.AuthDependencies{
		Credentials: store,
		Verifier:    verifier,
		Tokens:      tokens,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	reportService := service.NewReportService(testSnapshot(), report.NewRandomEstimator(), dispatcher, logger, config.ReportConfig{DefaultTimelineDays: 30})
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{BodyLimit: 4096})
	RegisterMiddlewares(app, logger, metrics, time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("helpdesk-reports", "1.0.0", reportService, metrics, nil),
		Reports:        handlers.NewReportsHandler(reportService),
		Auth:           handlers.NewAuthHandler(authService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, authService),
	})
	return app
}

const creds = "login=osidorov&code=s3cret"

func doRequest(t *testing.T, app *fiber.App, method, target string, header map[string]string) (*nethttp.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func errorCode(t *testing.T, body []byte) (string, string) {
	t.Helper()
	payload := decode[struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}](t, body)
	return payload.Error.Code, payload.Error.Message
}

func TestHealthIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, nethttp.MethodGet, "/api/v1/health", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	health := decode[map[string]any](t, body)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "1.0.0", health["version"])
	assert.EqualValues(t, 3, health["data_counts"].(map[string]any)["tickets"])
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp, _ = doRequest(t, app, nethttp.MethodGet, "/health/ready", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestReportsRequireCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, nethttp.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	_, missingMsg := errorCode(t, body)

	resp, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/profile?login=osidorov&code=wrong", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	_, wrongMsg := errorCode(t, body)

	resp, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/profile?login=ghost&code=s3cret", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	_, unknownMsg := errorCode(t, body)

	assert.Equal(t, "access denied", wrongMsg)
	assert.Equal(t, wrongMsg, unknownMsg)
	assert.Equal(t, wrongMsg, missingMsg)

	resp, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/profile?login=bad%20login&code=x", nil)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	code, _ := errorCode(t, body)
	assert.Equal(t, "VALIDATION_FAILED", code)
}

func TestProfileAndTickets(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, nethttp.MethodGet, "/api/v1/profile?"+creds, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	profile := decode[map[string]any](t, body)
	assert.EqualValues(t, 7, profile["staff_id"])
	assert.EqualValues(t, 2, profile["assigned_tickets_count"])
	assert.EqualValues(t, 1, profile["active_tickets_count"])

	resp, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/tickets?"+creds, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	tickets := decode[[]map[string]any](t, body)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Resolved", tickets[0]["status_name"])
	assert.Equal(t, "Maria Ivanova", tickets[0]["user_name"])
	assert.EqualValues(t, 1, tickets[0]["comments_count"])
}

func TestTicketDetailStatuses(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{name: "own ticket", target: "/api/v1/tickets/1?" + creds, status: nethttp.StatusOK},
		{name: "colleague ticket", target: "/api/v1/tickets/3?" + creds, status: nethttp.StatusForbidden, code: "FORBIDDEN"},
		{name: "missing ticket", target: "/api/v1/tickets/404?" + creds, status: nethttp.StatusNotFound, code: "NOT_FOUND"},
		{name: "malformed id", target: "/api/v1/tickets/abc?" + creds, status: nethttp.StatusBadRequest, code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, app, nethttp.MethodGet, tt.target, nil)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.code != "" {
				code, _ := errorCode(t, body)
				assert.Equal(t, tt.code, code)
				return
			}
			detail := decode[map[string]any](t, body)
			assert.Equal(t, "Oleg Sidorov", detail["assigned_staff_name"])
			assert.Len(t, detail["comments"], 1)
			assert.Len(t, detail["logs"], 1)
		})
	}
}

func TestAggregateReports(t *testing.T) {
	app := newTestApp(t)

	_, body := doRequest(t, app, nethttp.MethodGet, "/api/v1/metrics?"+creds, nil)
	metrics := decode[dtoMetrics](t, body)
	assert.Equal(t, "50.0%", metrics.PersonalMetrics.ResolutionRate)
	assert.Equal(t, "1.5 hours", metrics.PersonalMetrics.AvgResolutionTime)
	assert.Equal(t, 3, metrics.DepartmentMetrics.TotalTickets)
	assert.Equal(t, "Hardware", metrics.DepartmentMetrics.MostCommonCategory)

	_, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/timeline?days=400&"+creds, nil)
	timeline := decode[map[string]any](t, body)
	assert.EqualValues(t, 365, timeline["period_days"])
	assert.Len(t, timeline["data"], 365)

	_, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/timeline?days=abc&"+creds, nil)
	assert.EqualValues(t, 30, decode[map[string]any](t, body)["period_days"])

	_, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/categories?"+creds, nil)
	categories := decode[[]map[string]any](t, body)
	require.Len(t, categories, 2)
	assert.Equal(t, "100.0%", categories[0]["resolution_rate"])
	assert.Equal(t, "0.0%", categories[1]["resolution_rate"])

	_, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/departments?"+creds, nil)
	departments := decode[[]map[string]any](t, body)
	require.Len(t, departments, 1)
	assert.Equal(t, "IT", departments[0]["name"])
	assert.EqualValues(t, 2, departments[0]["staff_count"])

	_, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/staff?"+creds, nil)
	assert.Len(t, decode[[]map[string]any](t, body), 2)

	_, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/comparison?"+creds, nil)
	comparison := decode[map[string]map[string]any](t, body)
	assert.Equal(t, "Ivan Petrov", comparison["top_performer"]["staff_name"])

	_, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/forecast?"+creds, nil)
	forecast := decode[map[string]map[string]any](t, body)
	assert.Equal(t, "improvement", forecast["trend_analysis"]["resolution_trend"])
}

type dtoMetrics struct {
	PersonalMetrics struct {
		ResolutionRate    string `json:"resolution_rate"`
		AvgResolutionTime string `json:"avg_resolution_time"`
	} `json:"personal_metrics"`
	DepartmentMetrics struct {
		TotalTickets       int    `json:"total_tickets"`
		MostCommonCategory string `json:"most_common_category"`
	} `json:"department_metrics"`
}

func TestBearerTokenFlow(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, nethttp.MethodGet, "/api/v1/auth/token?"+creds, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	token := decode[map[string]any](t, body)
	assert.Equal(t, "Bearer", token["token_type"])

	resp, _ = doRequest(t, app, nethttp.MethodGet, "/api/v1/profile", map[string]string{
		fiber.HeaderAuthorization: "Bearer " + token["token"].(string),
	})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, nethttp.MethodGet, "/api/v1/auth/token?login=osidorov&code=nope", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestReadOnlyAndUnknownRoutes(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, nethttp.MethodPost, "/api/v1/tickets?"+creds, nil)
	assert.Equal(t, nethttp.StatusMethodNotAllowed, resp.StatusCode)
	_, msg := errorCode(t, body)
	assert.Equal(t, "only GET requests are allowed", msg)

	resp, body = doRequest(t, app, nethttp.MethodGet, "/api/v1/nowhere", nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	_, msg = errorCode(t, body)
	assert.Equal(t, "endpoint not found", msg)

	resp, body = doRequest(t, app, nethttp.MethodGet, "/health/metrics", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "total_requests")
}
