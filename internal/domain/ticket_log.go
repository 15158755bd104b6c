package domain

import "time"

// TicketLog is an append-only audit entry for a ticket.
type TicketLog struct {
	ID                 int64
	TicketID           int64
	Action             string
	PerformedByStaffID *int64
	PerformedAt        time.Time
}
