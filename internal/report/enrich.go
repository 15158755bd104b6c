// Package report shapes snapshot data into denormalized views and aggregates.
// Every function here is pure: it reads the snapshot through an Indexer and
// returns freshly allocated values.
package report

import (
	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/index"
)

// UnknownName substitutes for any reference that does not resolve.
const UnknownName = "Unknown"

// EnrichedTicket is a ticket joined with human-readable names.
type EnrichedTicket struct {
	domain.Ticket
	StatusName    string
	CategoryName  string
	SubmitterName string
	AssigneeName  string
	CommentsCount int
}

// EnrichedComment is a comment with its author resolved.
type EnrichedComment struct {
	domain.TicketComment
	AuthorName string
}

// EnrichedTicketDetail adds the full comment thread and log trail.
type EnrichedTicketDetail struct {
	EnrichedTicket
	Comments []EnrichedComment
	Logs     []domain.TicketLog
}

// EnrichTicket resolves a ticket's foreign keys. It never fails: dangling
// references become UnknownName.
func EnrichTicket(ticket domain.Ticket, idx *index.Indexer) EnrichedTicket {
	enriched := EnrichedTicket{
		Ticket:        detach(ticket),
		StatusName:    UnknownName,
		CategoryName:  UnknownName,
		SubmitterName: UnknownName,
		AssigneeName:  UnknownName,
		CommentsCount: idx.CommentCount(ticket.ID),
	}
	if status, ok := idx.StatusByID(ticket.StatusID); ok {
		enriched.StatusName = status.Name
	}
	if category, ok := idx.CategoryByID(ticket.CategoryID); ok {
		enriched.CategoryName = category.Name
	}
	if user, ok := idx.UserByID(ticket.UserID); ok {
		enriched.SubmitterName = user.FullName
	}
	if ticket.AssignedStaffID != nil {
		if staff, ok := idx.StaffByID(*ticket.AssignedStaffID); ok {
			enriched.AssigneeName = staff.FullName
		}
	}
	return enriched
}

// EnrichTickets enriches every ticket, preserving order.
func EnrichTickets(tickets []domain.Ticket, idx *index.Indexer) []EnrichedTicket {
	result := make([]EnrichedTicket, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, EnrichTicket(t, idx))
	}
	return result
}

// EnrichTicketDetail attaches every comment and log of the ticket in snapshot
// order. No sorting or filtering is applied.
func EnrichTicketDetail(ticket domain.Ticket, idx *index.Indexer) EnrichedTicketDetail {
	comments := idx.CommentsByTicket(ticket.ID)
	enrichedComments := make([]EnrichedComment, 0, len(comments))
	for _, c := range comments {
		enrichedComments = append(enrichedComments, EnrichedComment{
			TicketComment: c,
			AuthorName:    commentAuthorName(c, idx),
		})
	}

	logs := idx.LogsByTicket(ticket.ID)
	for i := range logs {
		logs[i].PerformedByStaffID = cloneID(logs[i].PerformedByStaffID)
	}

	return EnrichedTicketDetail{
		EnrichedTicket: EnrichTicket(ticket, idx),
		Comments:       enrichedComments,
		Logs:           logs,
	}
}

// commentAuthorName resolves user authors against users and everything else
// against staff.
func commentAuthorName(c domain.TicketComment, idx *index.Indexer) string {
	if c.AuthorType == domain.AuthorTypeUser {
		if user, ok := idx.UserByID(c.AuthorID); ok {
			return user.FullName
		}
		return UnknownName
	}
	if staff, ok := idx.StaffByID(c.AuthorID); ok {
		return staff.FullName
	}
	return UnknownName
}

// detach copies the pointer fields so the result shares nothing with the
// snapshot.
func detach(t domain.Ticket) domain.Ticket {
	t.AssignedStaffID = cloneID(t.AssignedStaffID)
	if t.ClosedAt != nil {
		closed := *t.ClosedAt
		t.ClosedAt = &closed
	}
	return t
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
