package domain

import "time"

// AuthorType indicates which table a comment author resolves against.
type AuthorType string

const (
	AuthorTypeUser  AuthorType = "user"
	AuthorTypeStaff AuthorType = "staff"
)

// TicketComment is a message in a ticket thread.
type TicketComment struct {
	ID         int64
	TicketID   int64
	AuthorID   int64
	AuthorType AuthorType
	Text       string
	CreatedAt  time.Time
}
