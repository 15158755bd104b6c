// Package index builds id lookups and foreign-key joins over a Snapshot.
package index

import "github.com/deskmetrics/helpdesk-reports/internal/domain"

// Indexer answers lookups against a Snapshot. Positions into the snapshot
// slices are stored rather than pointers, and every accessor returns copies,
// so callers can never reach the shared records.
type Indexer struct {
	snap *domain.Snapshot

	users      map[int64]int
	staff      map[int64]int
	statuses   map[domain.StatusID]int
	categories map[int64]int
	tickets    map[int64]int

	ticketsByStaff   map[int64][]int
	commentsByTicket map[int64][]int
	logsByTicket     map[int64][]int
}

// New indexes snap. A nil snapshot behaves like an empty one. When ids repeat
// the first record wins.
func New(snap *domain.Snapshot) *Indexer {
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	idx := &Indexer{
		snap:             snap,
		users:            make(map[int64]int, len(snap.Users)),
		staff:            make(map[int64]int, len(snap.Staff)),
		statuses:         make(map[domain.StatusID]int, len(snap.Statuses)),
		categories:       make(map[int64]int, len(snap.Categories)),
		tickets:          make(map[int64]int, len(snap.Tickets)),
		ticketsByStaff:   make(map[int64][]int),
		commentsByTicket: make(map[int64][]int),
		logsByTicket:     make(map[int64][]int),
	}

	for i, u := range snap.Users {
		putFirst(idx.users, u.ID, i)
	}
	for i, s := range snap.Staff {
		putFirst(idx.staff, s.ID, i)
	}
	for i, s := range snap.Statuses {
		putFirst(idx.statuses, s.ID, i)
	}
	for i, c := range snap.Categories {
		putFirst(idx.categories, c.ID, i)
	}
	for i, t := range snap.Tickets {
		putFirst(idx.tickets, t.ID, i)
		if t.AssignedStaffID != nil {
			idx.ticketsByStaff[*t.AssignedStaffID] = append(idx.ticketsByStaff[*t.AssignedStaffID], i)
		}
	}
	for i, c := range snap.Comments {
		idx.commentsByTicket[c.TicketID] = append(idx.commentsByTicket[c.TicketID], i)
	}
	for i, l := range snap.Logs {
		idx.logsByTicket[l.TicketID] = append(idx.logsByTicket[l.TicketID], i)
	}
	return idx
}

func putFirst[K comparable](m map[K]int, key K, pos int) {
	if _, exists := m[key]; !exists {
		m[key] = pos
	}
}

// Snapshot returns the indexed snapshot.
func (idx *Indexer) Snapshot() *domain.Snapshot {
	return idx.snap
}

// UserByID resolves a user.
func (idx *Indexer) UserByID(id int64) (domain.User, bool) {
	pos, ok := idx.users[id]
	if !ok {
		return domain.User{}, false
	}
	return idx.snap.Users[pos], true
}

// StaffByID resolves a staff member.
func (idx *Indexer) StaffByID(id int64) (domain.StaffMember, bool) {
	pos, ok := idx.staff[id]
	if !ok {
		return domain.StaffMember{}, false
	}
	return idx.snap.Staff[pos], true
}

// StatusByID resolves a ticket status.
func (idx *Indexer) StatusByID(id domain.StatusID) (domain.TicketStatus, bool) {
	pos, ok := idx.statuses[id]
	if !ok {
		return domain.TicketStatus{}, false
	}
	return idx.snap.Statuses[pos], true
}

// CategoryByID resolves a problem category.
func (idx *Indexer) CategoryByID(id int64) (domain.ProblemCategory, bool) {
	pos, ok := idx.categories[id]
	if !ok {
		return domain.ProblemCategory{}, false
	}
	return idx.snap.Categories[pos], true
}

// TicketByID resolves a ticket.
func (idx *Indexer) TicketByID(id int64) (domain.Ticket, bool) {
	pos, ok := idx.tickets[id]
	if !ok {
		return domain.Ticket{}, false
	}
	return idx.snap.Tickets[pos], true
}

// TicketsByAssignedStaff lists the tickets assigned to staffID in snapshot
// order.
func (idx *Indexer) TicketsByAssignedStaff(staffID int64) []domain.Ticket {
	positions := idx.ticketsByStaff[staffID]
	result := make([]domain.Ticket, 0, len(positions))
	for _, pos := range positions {
		result = append(result, idx.snap.Tickets[pos])
	}
	return result
}

// CommentsByTicket lists a ticket's comments in snapshot order.
func (idx *Indexer) CommentsByTicket(ticketID int64) []domain.TicketComment {
	positions := idx.commentsByTicket[ticketID]
	result := make([]domain.TicketComment, 0, len(positions))
	for _, pos := range positions {
		result = append(result, idx.snap.Comments[pos])
	}
	return result
}

// CommentCount returns the number of comments on a ticket.
func (idx *Indexer) CommentCount(ticketID int64) int {
	return len(idx.commentsByTicket[ticketID])
}

// LogsByTicket lists a ticket's log entries in snapshot order.
func (idx *Indexer) LogsByTicket(ticketID int64) []domain.TicketLog {
	positions := idx.logsByTicket[ticketID]
	result := make([]domain.TicketLog, 0, len(positions))
	for _, pos := range positions {
		result = append(result, idx.snap.Logs[pos])
	}
	return result
}
