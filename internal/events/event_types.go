package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded EventType = "login_succeeded"
	EventLoginFailed    EventType = "login_failed"
	EventAccessDenied   EventType = "access_denied"
)

// Login failure reasons. They are recorded in the audit log only; callers
// always see the same generic failure.
const (
	ReasonUnknownLogin = "unknown_login"
	ReasonBadCode      = "bad_code"
	ReasonLocked       = "locked"
)

// Actor identifies who triggered a security event.
type Actor struct {
	Login   string `json:"login"`
	StaffID *int64 `json:"staff_id,omitempty"`
}

// Event represents a security event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, actor Actor, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// LoginFailedPayload payload.
type LoginFailedPayload struct {
	Reason string `json:"reason"`
}

// AccessDeniedPayload payload.
type AccessDeniedPayload struct {
	Resource   string `json:"resource"`
	ResourceID int64  `json:"resource_id"`
}
