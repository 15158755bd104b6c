package domain

import (
	"sort"
	"time"
)

// Snapshot holds every entity collection loaded at startup. It is never
// mutated after construction and is shared by all requests.
type Snapshot struct {
	Users      []User
	Staff      []StaffMember
	Statuses   []TicketStatus
	Categories []ProblemCategory
	Tickets    []Ticket
	Comments   []TicketComment
	Logs       []TicketLog
	LoadedAt   time.Time
}

// SnapshotCounts summarises collection sizes for health reporting.
type SnapshotCounts struct {
	Users      int
	Staff      int
	Statuses   int
	Categories int
	Tickets    int
	Comments   int
	Logs       int
}

// Counts returns the size of every collection.
func (s *Snapshot) Counts() SnapshotCounts {
	if s == nil {
		return SnapshotCounts{}
	}
	return SnapshotCounts{
		Users:      len(s.Users),
		Staff:      len(s.Staff),
		Statuses:   len(s.Statuses),
		Categories: len(s.Categories),
		Tickets:    len(s.Tickets),
		Comments:   len(s.Comments),
		Logs:       len(s.Logs),
	}
}

// Departments returns the distinct staff departments in ascending order.
func (s *Snapshot) Departments() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, member := range s.Staff {
		if _, ok := seen[member.Department]; ok {
			continue
		}
		seen[member.Department] = struct{}{}
		result = append(result, member.Department)
	}
	sort.Strings(result)
	return result
}
