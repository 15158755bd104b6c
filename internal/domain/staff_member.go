package domain

// StaffRole enumerates the roles carried by an authenticated identity.
type StaffRole string

const (
	StaffRoleAdmin   StaffRole = "admin"
	StaffRoleManager StaffRole = "manager"
	StaffRoleAnalyst StaffRole = "analyst"
)

// StaffMember models a support agent. A staff member belongs to exactly one
// department.
type StaffMember struct {
	ID         int64
	Username   string
	FullName   string
	Email      string
	Department string
	IsActive   bool
}
