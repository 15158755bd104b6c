package report

import (
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

var day0 = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func ptr(v int64) *int64 { return &v }

func at(t time.Time) *time.Time { return &t }

func fixtureSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Users: []domain.User{{ID: 1, FullName: "Maria Ivanova"}},
		Staff: []domain.StaffMember{
			{ID: 7, FullName: "Oleg Sidorov", Department: "X", IsActive: true},
			{ID: 8, FullName: "Pavel Orlov", Department: "X", IsActive: false},
			{ID: 9, FullName: "Irina Kozlova", Department: "Y", IsActive: true},
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
			{ID: 3, Name: "Network"},
		},
		Tickets: []domain.Ticket{
			{ID: 1, Subject: "Printer", UserID: 1, AssignedStaffID: ptr(7), StatusID: domain.StatusResolved, CategoryID: 2,
				CreatedAt: day0, ClosedAt: at(day0.Add(5 * time.Hour))},
			{ID: 2, Subject: "VPN", UserID: 1, AssignedStaffID: ptr(7), StatusID: domain.StatusNew, CategoryID: 2, CreatedAt: day0},
			{ID: 3, Subject: "Disk", UserID: 42, AssignedStaffID: ptr(8), StatusID: domain.StatusInProgress, CategoryID: 1, CreatedAt: day0},
			{ID: 4, Subject: "Ghost", UserID: 1, AssignedStaffID: ptr(99), StatusID: 77, CategoryID: 404, CreatedAt: day0},
			{ID: 5, Subject: "Mail", UserID: 1, AssignedStaffID: ptr(9), StatusID: domain.StatusClosed, CategoryID: 3,
				CreatedAt: day0, ClosedAt: at(day0.Add(24 * time.Hour))},
		},
		Comments: []domain.TicketComment{
			{ID: 11, TicketID: 1, AuthorID: 1, AuthorType: domain.AuthorTypeUser, Text: "It is broken"},
			{ID: 12, TicketID: 1, AuthorID: 7, AuthorType: domain.AuthorTypeStaff, Text: "Fixed"},
			{ID: 13, TicketID: 1, AuthorID: 500, AuthorType: domain.AuthorTypeStaff, Text: "?"},
			{ID: 14, TicketID: 1, AuthorID: 500, AuthorType: domain.AuthorTypeUser, Text: "??"},
		},
		Logs: []domain.TicketLog{
			{ID: 21, TicketID: 1, Action: "created", PerformedByStaffID: ptr(7)},
			{ID: 22, TicketID: 1, Action: "closed"},
			{ID: 23, TicketID: 2, Action: "created"},
		},
	}
}
