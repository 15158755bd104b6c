package dto

import (
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/report"
	"github.com/deskmetrics/helpdesk-reports/internal/service"
)

// ProfileResponse payload.
type ProfileResponse struct {
	StaffID              int64            `json:"staff_id"`
	Name                 string           `json:"name"`
	Role                 domain.StaffRole `json:"role"`
	DepartmentsAccess    []string         `json:"departments_access"`
	AssignedTicketsCount int              `json:"assigned_tickets_count"`
	ActiveTicketsCount   int              `json:"active_tickets_count"`
}

// NewProfileResponse maps a profile.
func NewProfileResponse(p service.Profile) ProfileResponse {
	departments := p.Departments
	if departments == nil {
		departments = []string{}
	}
	return ProfileResponse{
		StaffID:              p.StaffID,
		Name:                 p.Name,
		Role:                 p.Role,
		DepartmentsAccess:    departments,
		AssignedTicketsCount: p.AssignedTickets,
		ActiveTicketsCount:   p.ActiveTickets,
	}
}

// DepartmentResponse payload.
type DepartmentResponse struct {
	Name          string `json:"name"`
	TicketCount   int    `json:"ticket_count"`
	ActiveTickets int    `json:"active_tickets"`
	StaffCount    int    `json:"staff_count"`
}

// NewDepartmentResponses maps department statistics.
func NewDepartmentResponses(stats []report.DepartmentStat) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, DepartmentResponse{
			Name:          s.Department,
			TicketCount:   s.TicketCount,
			ActiveTickets: s.ActiveTicketCount,
			StaffCount:    s.ActiveStaffCount,
		})
	}
	return out
}

// TicketResponse is an enriched ticket.
type TicketResponse struct {
	TicketID          int64      `json:"ticket_id"`
	Subject           string     `json:"subject"`
	Description       string     `json:"description"`
	CreatedAt         *time.Time `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
	ClosedAt          *time.Time `json:"closed_at"`
	UserID            int64      `json:"user_id"`
	AssignedStaffID   *int64     `json:"assigned_staff_id"`
	StatusID          int        `json:"status_id"`
	CategoryID        int64      `json:"category_id"`
	StatusName        string     `json:"status_name"`
	CategoryName      string     `json:"category_name"`
	UserName          string     `json:"user_name"`
	AssignedStaffName string     `json:"assigned_staff_name"`
	CommentsCount     int        `json:"comments_count"`
}

// NewTicketResponse maps an enriched ticket.
func NewTicketResponse(t report.EnrichedTicket) TicketResponse {
	return TicketResponse{
		TicketID:          t.ID,
		Subject:           t.Subject,
		Description:       t.Description,
		CreatedAt:         optionalTime(t.CreatedAt),
		UpdatedAt:         optionalTime(t.UpdatedAt),
		ClosedAt:          t.ClosedAt,
		UserID:            t.UserID,
		AssignedStaffID:   t.AssignedStaffID,
		StatusID:          int(t.StatusID),
		CategoryID:        t.CategoryID,
		StatusName:        t.StatusName,
		CategoryName:      t.CategoryName,
		UserName:          t.SubmitterName,
		AssignedStaffName: t.AssigneeName,
		CommentsCount:     t.CommentsCount,
	}
}

// NewTicketResponses maps a ticket list.
func NewTicketResponses(tickets []report.EnrichedTicket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketResponse(t))
	}
	return out
}

// CommentResponse payload.
type CommentResponse struct {
	CommentID   int64      `json:"comment_id"`
	TicketID    int64      `json:"ticket_id"`
	AuthorID    int64      `json:"author_id"`
	AuthorType  string     `json:"author_type"`
	CommentText string     `json:"comment_text"`
	CreatedAt   *time.Time `json:"created_at"`
	AuthorName  string     `json:"author_name"`
}

// LogResponse payload.
type LogResponse struct {
	LogID              int64      `json:"log_id"`
	TicketID           int64      `json:"ticket_id"`
	Action             string     `json:"action"`
	PerformedByStaffID *int64     `json:"performed_by_staff_id"`
	PerformedAt        *time.Time `json:"performed_at"`
}

// TicketDetailResponse is a ticket with its comment thread and logs.
type TicketDetailResponse struct {
	TicketResponse
	Comments []CommentResponse `json:"comments"`
	Logs     []LogResponse     `json:"logs"`
}

// NewTicketDetailResponse maps a ticket detail.
func NewTicketDetailResponse(d report.EnrichedTicketDetail) TicketDetailResponse {
	out := TicketDetailResponse{
		TicketResponse: NewTicketResponse(d.EnrichedTicket),
		Comments:       make([]CommentResponse, 0, len(d.Comments)),
		Logs:           make([]LogResponse, 0, len(d.Logs)),
	}
	for _, c := range d.Comments {
		out.Comments = append(out.Comments, CommentResponse{
			CommentID:   c.ID,
			TicketID:    c.TicketID,
			AuthorID:    c.AuthorID,
			AuthorType:  string(c.AuthorType),
			CommentText: c.Text,
			CreatedAt:   optionalTime(c.CreatedAt),
			AuthorName:  c.AuthorName,
		})
	}
	for _, l := range d.Logs {
		out.Logs = append(out.Logs, LogResponse{
			LogID:              l.ID,
			TicketID:           l.TicketID,
			Action:             l.Action,
			PerformedByStaffID: l.PerformedByStaffID,
			PerformedAt:        optionalTime(l.PerformedAt),
		})
	}
	return out
}

// StaffResponse is a roster entry with workload.
type StaffResponse struct {
	StaffID         int64  `json:"staff_id"`
	Username        string `json:"username"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Department      string `json:"department"`
	IsActive        bool   `json:"is_active"`
	AssignedTickets int    `json:"assigned_tickets"`
	ActiveTickets   int    `json:"active_tickets"`
	ResolvedTickets int    `json:"resolved_tickets"`
}

// NewStaffResponses maps the roster.
func NewStaffResponses(workloads []report.StaffWorkload) []StaffResponse {
	out := make([]StaffResponse, 0, len(workloads))
	for _, w := range workloads {
		out = append(out, StaffResponse{
			StaffID:         w.ID,
			Username:        w.Username,
			FullName:        w.FullName,
			Email:           w.Email,
			Department:      w.Department,
			IsActive:        w.IsActive,
			AssignedTickets: w.Total,
			ActiveTickets:   w.Active,
			ResolvedTickets: w.Resolved,
		})
	}
	return out
}

// PersonalMetricsResponse payload.
type PersonalMetricsResponse struct {
	TotalTickets      int    `json:"total_tickets"`
	ResolvedTickets   int    `json:"resolved_tickets"`
	ActiveTickets     int    `json:"active_tickets"`
	ResolutionRate    string `json:"resolution_rate"`
	AvgResolutionTime string `json:"avg_resolution_time"`
	SatisfactionRate  string `json:"satisfaction_rate"`
}

// DepartmentMetricsResponse payload.
type DepartmentMetricsResponse struct {
	TotalTickets         int    `json:"total_tickets"`
	ResolvedTickets      int    `json:"resolved_tickets"`
	AvgFirstResponseTime string `json:"avg_first_response_time"`
	MostCommonCategory   string `json:"most_common_category"`
}

// MetricsResponse payload.
type MetricsResponse struct {
	PersonalMetrics   PersonalMetricsResponse   `json:"personal_metrics"`
	DepartmentMetrics DepartmentMetricsResponse `json:"department_metrics"`
}

// NewMetricsResponse maps metrics.
func NewMetricsResponse(m service.Metrics) MetricsResponse {
	return MetricsResponse{
		PersonalMetrics: PersonalMetricsResponse{
			TotalTickets:      m.Personal.Total,
			ResolvedTickets:   m.Personal.Resolved,
			ActiveTickets:     m.Personal.Active,
			ResolutionRate:    Percent(m.Personal.ResolutionRate),
			AvgResolutionTime: Hours(m.Personal.AvgResolutionHours),
			SatisfactionRate:  WholePercent(m.Personal.SatisfactionRate),
		},
		DepartmentMetrics: DepartmentMetricsResponse{
			TotalTickets:         m.Department.Total,
			ResolvedTickets:      m.Department.Resolved,
			AvgFirstResponseTime: Hours(m.Department.AvgFirstResponseHours),
			MostCommonCategory:   m.Department.MostCommonCategory,
		},
	}
}

// TimelineEntry is one day of the timeline.
type TimelineEntry struct {
	Date             string `json:"date"`
	TicketsCreated   int    `json:"tickets_created"`
	TicketsResolved  int    `json:"tickets_resolved"`
	SatisfactionRate int    `json:"satisfaction_rate"`
}

// TimelineResponse payload.
type TimelineResponse struct {
	PeriodDays int             `json:"period_days"`
	Data       []TimelineEntry `json:"data"`
}

// NewTimelineResponse maps the timeline.
func NewTimelineResponse(t service.TimelineReport) TimelineResponse {
	out := TimelineResponse{PeriodDays: t.PeriodDays, Data: make([]TimelineEntry, 0, len(t.Days))}
	for _, d := range t.Days {
		out.Data = append(out.Data, TimelineEntry{
			Date:             d.Date.Format(time.DateOnly),
			TicketsCreated:   d.Created,
			TicketsResolved:  d.Resolved,
			SatisfactionRate: d.SatisfactionRate,
		})
	}
	return out
}

// PerformanceResponse is one side of the comparison.
type PerformanceResponse struct {
	ResolutionRate   string `json:"resolution_rate"`
	AvgResponseTime  string `json:"avg_response_time"`
	SatisfactionRate string `json:"satisfaction_rate"`
}

// TopPerformerResponse payload.
type TopPerformerResponse struct {
	StaffName       string `json:"staff_name"`
	ResolutionRate  string `json:"resolution_rate"`
	AvgResponseTime string `json:"avg_response_time"`
}

// ComparisonResponse payload.
type ComparisonResponse struct {
	YourPerformance   PerformanceResponse  `json:"your_performance"`
	DepartmentAverage PerformanceResponse  `json:"department_average"`
	TopPerformer      TopPerformerResponse `json:"top_performer"`
}

// NewComparisonResponse maps the comparison.
func NewComparisonResponse(c service.Comparison) ComparisonResponse {
	b := c.Baseline
	return ComparisonResponse{
		YourPerformance: PerformanceResponse{
			ResolutionRate:   Percent(c.YourResolutionRate),
			AvgResponseTime:  Hours(b.YourAvgResponseHours),
			SatisfactionRate: WholePercent(b.YourSatisfactionRate),
		},
		DepartmentAverage: PerformanceResponse{
			ResolutionRate:   Percent(c.DepartmentResolutionRate),
			AvgResponseTime:  Hours(b.DepartmentAvgResponseHours),
			SatisfactionRate: WholePercent(b.DepartmentSatisfactionRate),
		},
		TopPerformer: TopPerformerResponse{
			StaffName:       b.TopPerformer.StaffName,
			ResolutionRate:  Percent(b.TopPerformer.ResolutionRate),
			AvgResponseTime: Hours(b.TopPerformer.AvgResponseHours),
		},
	}
}

// CategoryResponse payload.
type CategoryResponse struct {
	CategoryID     int64  `json:"category_id"`
	CategoryName   string `json:"category_name"`
	TicketCount    int    `json:"ticket_count"`
	ResolutionRate string `json:"resolution_rate"`
}

// NewCategoryResponses maps category statistics.
func NewCategoryResponses(stats []report.CategoryStat) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, CategoryResponse{
			CategoryID:     s.CategoryID,
			CategoryName:   s.CategoryName,
			TicketCount:    s.TicketCount,
			ResolutionRate: Percent(s.ResolutionRate),
		})
	}
	return out
}

// NextWeekForecast payload.
type NextWeekForecast struct {
	ExpectedTickets        int    `json:"expected_tickets"`
	ExpectedResolutionRate string `json:"expected_resolution_rate"`
	BusiestDay             string `json:"busiest_day"`
}

// TrendAnalysis payload.
type TrendAnalysis struct {
	TicketGrowth    string   `json:"ticket_growth"`
	ResolutionTrend string   `json:"resolution_trend"`
	RiskFactors     []string `json:"risk_factors"`
}

// ForecastResponse payload.
type ForecastResponse struct {
	NextWeekForecast NextWeekForecast `json:"next_week_forecast"`
	TrendAnalysis    TrendAnalysis    `json:"trend_analysis"`
}

// NewForecastResponse maps the forecast.
func NewForecastResponse(f report.Forecast) ForecastResponse {
	risks := f.RiskFactors
	if risks == nil {
		risks = []string{}
	}
	return ForecastResponse{
		NextWeekForecast: NextWeekForecast{
			ExpectedTickets:        f.ExpectedTickets,
			ExpectedResolutionRate: WholePercent(f.ExpectedResolutionRate),
			BusiestDay:             f.BusiestDay,
		},
		TrendAnalysis: TrendAnalysis{
			TicketGrowth:    Growth(f.TicketGrowthPercent),
			ResolutionTrend: f.ResolutionTrend,
			RiskFactors:     risks,
		},
	}
}

// DataCounts reports snapshot sizes.
type DataCounts struct {
	Users    int `json:"users"`
	Staff    int `json:"staff"`
	Tickets  int `json:"tickets"`
	Comments int `json:"comments"`
	Logs     int `json:"logs"`
}

// HealthResponse payload.
type HealthResponse struct {
	Status     string     `json:"status"`
	Timestamp  time.Time  `json:"timestamp"`
	Version    string     `json:"version"`
	DataCounts DataCounts `json:"data_counts"`
}

// NewHealthResponse maps snapshot counts.
func NewHealthResponse(version string, counts domain.SnapshotCounts, now time.Time) HealthResponse {
	return HealthResponse{
		Status:    "healthy",
		Timestamp: now,
		Version:   version,
		DataCounts: DataCounts{
			Users:    counts.Users,
			Staff:    counts.Staff,
			Tickets:  counts.Tickets,
			Comments: counts.Comments,
			Logs:     counts.Logs,
		},
	}
}
