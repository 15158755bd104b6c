package repository

// Repositories bundles every reader the snapshot loader needs.
type Repositories struct {
	Users      UserRepository
	Staff      StaffRepository
	Statuses   StatusRepository
	Categories CategoryRepository
	Tickets    TicketRepository
	Comments   CommentRepository
	Logs       LogRepository
}

// NewRepositories wires all repositories against one querier.
func NewRepositories(q Querier) Repositories {
	return Repositories{
		Users:      NewUserRepository(q),
		Staff:      NewStaffRepository(q),
		Statuses:   NewStatusRepository(q),
		Categories: NewCategoryRepository(q),
		Tickets:    NewTicketRepository(q),
		Comments:   NewCommentRepository(q),
		Logs:       NewLogRepository(q),
	}
}
