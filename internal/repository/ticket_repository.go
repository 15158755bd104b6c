package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

// TicketRepository reads tickets.
type TicketRepository interface {
	ListAll(ctx context.Context) ([]domain.Ticket, error)
}

type ticketRepository struct {
	q Querier
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(q Querier) TicketRepository {
	return &ticketRepository{q: q}
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT ticket_id, subject, description, created_at, updated_at, closed_at,
               user_id, assigned_staff_id, status_id, category_id
        FROM Tickets
        ORDER BY ticket_id`

	tickets, err := collect(ctx, r.q, query, scanTicket)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func scanTicket(rows Rows) (domain.Ticket, error) {
	var (
		t                    domain.Ticket
		description          *string
		createdAt, updatedAt *time.Time
		status               int64
	)
	err := rows.Scan(
		&t.ID,
		&t.Subject,
		&description,
		&createdAt,
		&updatedAt,
		&t.ClosedAt,
		&t.UserID,
		&t.AssignedStaffID,
		&status,
		&t.CategoryID,
	)
	if err != nil {
		return t, err
	}
	if description != nil {
		t.Description = *description
	}
	if createdAt != nil {
		t.CreatedAt = *createdAt
	}
	if updatedAt != nil {
		t.UpdatedAt = *updatedAt
	}
	t.StatusID = domain.StatusID(status)
	return t, nil
}
