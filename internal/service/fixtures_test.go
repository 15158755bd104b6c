package service

import (
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/report"
)

var day0 = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func ptr(v int64) *int64 { return &v }

func at(t time.Time) *time.Time { return &t }

func fixtureSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Users: []domain.User{{ID: 1, FullName: "Maria Ivanova"}},
		Staff: []domain.StaffMember{
			{ID: 7, FullName: "Oleg Sidorov", Department: "IT", IsActive: true},
			{ID: 8, FullName: "Pavel Orlov", Department: "IT", IsActive: false},
			{ID: 9, FullName: "Irina Kozlova", Department: "HR", IsActive: true},
			{ID: 10, FullName: "Anton Belov", Department: "Sales", IsActive: true},
		},
		Statuses: []domain.TicketStatus{
			{ID: domain.StatusNew, Name: "New"},
			{ID: domain.StatusInProgress, Name: "In progress"},
			{ID: domain.StatusResolved, Name: "Resolved"},
			{ID: domain.StatusClosed, Name: "Closed"},
		},
		Categories: []domain.ProblemCategory{
			{ID: 1, Name: "Hardware"},
			{ID: 2, Name: "Software"},
		},
		Tickets: []domain.Ticket{
			{ID: 1, Subject: "Printer", UserID: 1, AssignedStaffID: ptr(7), StatusID: domain.StatusResolved, CategoryID: 2,
				CreatedAt: day0, ClosedAt: at(day0.Add(5 * time.Hour))},
			{ID: 2, Subject: "VPN", UserID: 1, AssignedStaffID: ptr(7), StatusID: domain.StatusNew, CategoryID: 2, CreatedAt: day0},
			{ID: 3, Subject: "Disk", UserID: 1, AssignedStaffID: ptr(8), StatusID: domain.StatusInProgress, CategoryID: 1, CreatedAt: day0},
			{ID: 4, Subject: "Payroll", UserID: 1, AssignedStaffID: ptr(9), StatusID: domain.StatusClosed, CategoryID: 1,
				CreatedAt: day0, ClosedAt: at(day0.Add(2 * time.Hour))},
			{ID: 5, Subject: "Leads", UserID: 1, AssignedStaffID: ptr(10), StatusID: domain.StatusNew, CategoryID: 1, CreatedAt: day0},
		},
		Comments: []domain.TicketComment{
			{ID: 11, TicketID: 1, AuthorID: 1, AuthorType: domain.AuthorTypeUser, Text: "Broken"},
			{ID: 12, TicketID: 1, AuthorID: 7, AuthorType: domain.AuthorTypeStaff, Text: "Fixed"},
		},
		Logs: []domain.TicketLog{
			{ID: 21, TicketID: 1, Action: "created"},
			{ID: 22, TicketID: 1, Action: "closed", PerformedByStaffID: ptr(7)},
		},
	}
}

// identityIT sees departments IT and HR and owns tickets 1 and 2.
func identityIT() domain.StaffIdentity {
	return domain.StaffIdentity{
		StaffID:     7,
		Login:       "osidorov",
		Name:        "Oleg Sidorov",
		Role:        domain.StaffRoleManager,
		Departments: []string{"IT", "HR"},
	}
}

type fixedEstimator struct{}

func (fixedEstimator) SatisfactionRate() int          { return 90 }
func (fixedEstimator) DailySatisfactionRate() int     { return 91 }
func (fixedEstimator) AvgFirstResponseHours() float64 { return 2.1 }
func (fixedEstimator) Comparison() report.ComparisonBaseline {
	return report.ComparisonBaseline{YourAvgResponseHours: 1.8, YourSatisfactionRate: 92}
}
func (fixedEstimator) Forecast() report.Forecast {
	return report.Forecast{ExpectedTickets: 20, BusiestDay: "Monday"}
}
