package domain

import "time"

// StatusID identifies a ticket status. The numeric ranges are load-bearing:
// 1-3 are active, 4-5 are resolved.
type StatusID int

const (
	StatusNew        StatusID = 1
	StatusInProgress StatusID = 2
	StatusWaiting    StatusID = 3
	StatusResolved   StatusID = 4
	StatusClosed     StatusID = 5
)

// IsActive reports whether the status is new, in progress or waiting.
func (s StatusID) IsActive() bool {
	return s >= StatusNew && s <= StatusWaiting
}

// IsResolved reports whether the status is resolved or closed.
func (s StatusID) IsResolved() bool {
	return s == StatusResolved || s == StatusClosed
}

// Known reports whether the status falls in either bucket.
func (s StatusID) Known() bool {
	return s.IsActive() || s.IsResolved()
}

// TicketStatus is the lookup row for a StatusID.
type TicketStatus struct {
	ID   StatusID
	Name string
}

// ProblemCategory classifies tickets.
type ProblemCategory struct {
	ID   int64
	Name string
}

// Ticket is a support request. AssignedStaffID is nil for unassigned tickets
// and ClosedAt is nil until the ticket is resolved. A zero CreatedAt means the
// source row carried no creation time.
type Ticket struct {
	ID              int64
	Subject         string
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ClosedAt        *time.Time
	UserID          int64
	AssignedStaffID *int64
	StatusID        StatusID
	CategoryID      int64
}

// AssignedTo reports whether the ticket is assigned to staffID.
func (t Ticket) AssignedTo(staffID int64) bool {
	return t.AssignedStaffID != nil && *t.AssignedStaffID == staffID
}
