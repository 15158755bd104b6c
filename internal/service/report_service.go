package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/deskmetrics/helpdesk-reports/internal/access"
	"github.com/deskmetrics/helpdesk-reports/internal/config"
	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/events"
	"github.com/deskmetrics/helpdesk-reports/internal/index"
	"github.com/deskmetrics/helpdesk-reports/internal/report"
	apperrors "github.com/deskmetrics/helpdesk-reports/pkg/util/errorutil"
)

// Profile summarises the caller and their own workload.
type Profile struct {
	StaffID         int64
	Name            string
	Role            domain.StaffRole
	Departments     []string
	AssignedTickets int
	ActiveTickets   int
}

// PersonalMetrics covers tickets assigned to the caller.
type PersonalMetrics struct {
	report.StatusCounts
	ResolutionRate     float64
	AvgResolutionHours float64
	SatisfactionRate   int
}

// DepartmentMetrics covers tickets assigned to anyone in the caller's
// departments.
type DepartmentMetrics struct {
	report.StatusCounts
	AvgFirstResponseHours float64
	MostCommonCategory    string
}

// Metrics is the performance report.
type Metrics struct {
	Personal   PersonalMetrics
	Department DepartmentMetrics
}

// TimelineDay is one day of the timeline report.
type TimelineDay struct {
	report.TimelineBucket
	SatisfactionRate int
}

// TimelineReport is the per-day activity of the caller's tickets.
type TimelineReport struct {
	PeriodDays int
	Days       []TimelineDay
}

// Comparison sets the caller against their departments.
type Comparison struct {
	YourResolutionRate       float64
	DepartmentResolutionRate float64
	Baseline                 report.ComparisonBaseline
}

// ReportService answers every report over one immutable snapshot. It holds
// no mutable state and is safe for concurrent use.
type ReportService struct {
	idx         *index.Indexer
	departments []string
	estimator   report.Estimator
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	defaultDays int
	now         func() time.Time
}

// NewReportService indexes the snapshot and builds the service.
func NewReportService(snap *domain.Snapshot, estimator report.Estimator, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.ReportConfig) *ReportService {
	defaultDays := cfg.DefaultTimelineDays
	if defaultDays <= 0 {
		defaultDays = 30
	}
	return &ReportService{
		idx:         index.New(snap),
		departments: snap.Departments(),
		estimator:   estimator,
		dispatcher:  dispatcher,
		logger:      logger,
		defaultDays: defaultDays,
		now:         time.Now,
	}
}

// DefaultTimelineDays is the window used when the caller names none.
func (s *ReportService) DefaultTimelineDays() int {
	return s.defaultDays
}

// SnapshotCounts reports collection sizes for health probes.
func (s *ReportService) SnapshotCounts() domain.SnapshotCounts {
	return s.idx.Snapshot().Counts()
}

// SnapshotLoadedAt reports when the snapshot was read.
func (s *ReportService) SnapshotLoadedAt() time.Time {
	return s.idx.Snapshot().LoadedAt
}

// Profile returns the caller's identity and workload.
func (s *ReportService) Profile(identity domain.StaffIdentity) Profile {
	counts := report.CountByStatusBucket(s.ownedTickets(identity))
	s.logger.Info("profile sent", zap.String("staff", identity.Name))
	return Profile{
		StaffID:         identity.StaffID,
		Name:            identity.Name,
		Role:            identity.Role,
		Departments:     append([]string(nil), identity.Departments...),
		AssignedTickets: counts.Total,
		ActiveTickets:   counts.Active,
	}
}

// Departments returns statistics for each department the caller may see.
func (s *ReportService) Departments(identity domain.StaffIdentity) []report.DepartmentStat {
	snap := s.idx.Snapshot()
	stats := report.DepartmentBreakdown(identity, snap.Staff, snap.Tickets, s.departments)
	s.logger.Info("departments sent", zap.String("staff", identity.Name), zap.Int("count", len(stats)))
	return stats
}

// Tickets returns the caller's own tickets, enriched.
func (s *ReportService) Tickets(identity domain.StaffIdentity) []report.EnrichedTicket {
	tickets := report.EnrichTickets(s.ownedTickets(identity), s.idx)
	s.logger.Info("tickets sent", zap.String("staff", identity.Name), zap.Int("count", len(tickets)))
	return tickets
}

// TicketDetail returns one ticket with its comments and logs. Only the
// assignee may view it.
func (s *ReportService) TicketDetail(ctx context.Context, identity domain.StaffIdentity, ticketID int64) (report.EnrichedTicketDetail, error) {
	ticket, ok := s.idx.TicketByID(ticketID)
	if !ok {
		return report.EnrichedTicketDetail{}, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}
	if !access.CanViewTicket(identity, ticket) {
		s.publishDenied(ctx, identity, "ticket", ticketID)
		return report.EnrichedTicketDetail{}, apperrors.NewForbidden()
	}

	detail := report.EnrichTicketDetail(ticket, s.idx)
	s.logger.Info("ticket detail sent",
		zap.String("staff", identity.Name),
		zap.Int64("ticket_id", ticketID),
		zap.Int("comments", len(detail.Comments)),
		zap.Int("logs", len(detail.Logs)),
	)
	return detail, nil
}

// Staff returns active staff in the caller's departments with their
// workload.
func (s *ReportService) Staff(identity domain.StaffIdentity) []report.StaffWorkload {
	members := access.VisibleStaff(identity, s.idx.Snapshot().Staff)
	workloads := report.StaffWorkloads(members, s.idx)
	s.logger.Info("staff sent", zap.String("staff", identity.Name), zap.Int("count", len(workloads)))
	return workloads
}

// Metrics returns personal and department performance figures.
func (s *ReportService) Metrics(identity domain.StaffIdentity) Metrics {
	owned := s.ownedTickets(identity)
	dept := s.departmentTickets(identity)

	m := Metrics{
		Personal: PersonalMetrics{
			StatusCounts:       report.CountByStatusBucket(owned),
			ResolutionRate:     report.ResolutionRate(owned),
			AvgResolutionHours: report.AverageResolutionHours(owned),
			SatisfactionRate:   s.estimator.SatisfactionRate(),
		},
		Department: DepartmentMetrics{
			StatusCounts:          report.CountByStatusBucket(dept),
			AvgFirstResponseHours: s.estimator.AvgFirstResponseHours(),
			MostCommonCategory:    report.MostCommonCategory(dept, s.idx),
		},
	}
	s.logger.Info("metrics sent", zap.String("staff", identity.Name))
	return m
}

// Timeline returns per-day created and resolved counts for the caller's
// tickets, ending today. days is clamped to [1, 365].
func (s *ReportService) Timeline(identity domain.StaffIdentity, days int) TimelineReport {
	buckets := report.Timeline(s.ownedTickets(identity), days, s.now())
	out := TimelineReport{PeriodDays: len(buckets), Days: make([]TimelineDay, 0, len(buckets))}
	for _, b := range buckets {
		out.Days = append(out.Days, TimelineDay{TimelineBucket: b, SatisfactionRate: s.estimator.DailySatisfactionRate()})
	}
	s.logger.Info("timeline sent", zap.String("staff", identity.Name), zap.Int("days", out.PeriodDays))
	return out
}

// Comparison compares the caller's resolution rate with their departments'.
func (s *ReportService) Comparison(identity domain.StaffIdentity) Comparison {
	c := Comparison{
		YourResolutionRate:       report.ResolutionRate(s.ownedTickets(identity)),
		DepartmentResolutionRate: report.ResolutionRate(s.departmentTickets(identity)),
		Baseline:                 s.estimator.Comparison(),
	}
	s.logger.Info("comparison sent", zap.String("staff", identity.Name))
	return c
}

// Categories breaks the caller's tickets down by every known category.
func (s *ReportService) Categories(identity domain.StaffIdentity) []report.CategoryStat {
	stats := report.CategoryBreakdown(s.ownedTickets(identity), s.idx.Snapshot().Categories)
	s.logger.Info("categories sent", zap.String("staff", identity.Name), zap.Int("count", len(stats)))
	return stats
}

// Forecast returns the next-week outlook.
func (s *ReportService) Forecast(identity domain.StaffIdentity) report.Forecast {
	f := s.estimator.Forecast()
	s.logger.Info("forecast sent", zap.String("staff", identity.Name))
	return f
}

func (s *ReportService) ownedTickets(identity domain.StaffIdentity) []domain.Ticket {
	return access.OwnedTickets(identity, s.idx.Snapshot().Tickets)
}

func (s *ReportService) departmentTickets(identity domain.StaffIdentity) []domain.Ticket {
	snap := s.idx.Snapshot()
	return access.DepartmentTickets(identity, snap.Staff, snap.Tickets)
}

func (s *ReportService) publishDenied(ctx context.Context, identity domain.StaffIdentity, resource string, id int64) {
	if s.dispatcher == nil {
		return
	}
	event := events.NewEvent(events.EventAccessDenied, actorOf(identity), events.AccessDeniedPayload{Resource: resource, ResourceID: id})
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("audit handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
