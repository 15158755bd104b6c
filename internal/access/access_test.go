package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

func ptr(v int64) *int64 { return &v }

var staff = []domain.StaffMember{
	{ID: 1, FullName: "Alice", Department: "A", IsActive: true},
	{ID: 2, FullName: "Bob", Department: "A", IsActive: true},
	{ID: 3, FullName: "Carol", Department: "B", IsActive: true},
	{ID: 4, FullName: "Dave", Department: "A", IsActive: false},
}

var tickets = []domain.Ticket{
	{ID: 100, AssignedStaffID: ptr(1)},
	{ID: 101, AssignedStaffID: ptr(2)},
	{ID: 102, AssignedStaffID: ptr(3)},
	{ID: 103, AssignedStaffID: ptr(4)},
	{ID: 104},
}

func TestVisibleDepartments(t *testing.T) {
	identity := domain.StaffIdentity{Departments: []string{"C", "A"}}
	assert.Equal(t, []string{"A"}, VisibleDepartments(identity, []string{"A", "B"}))
	assert.Empty(t, VisibleDepartments(domain.StaffIdentity{}, []string{"A"}))
}

func TestVisibleStaffNeverCrossesDepartments(t *testing.T) {
	identity := domain.StaffIdentity{StaffID: 1, Departments: []string{"A"}}
	visible := VisibleStaff(identity, staff)

	require.Len(t, visible, 2)
	for _, member := range visible {
		assert.Equal(t, "A", member.Department)
		assert.True(t, member.IsActive)
	}
}

func TestCanViewTicketIsAssigneeOnly(t *testing.T) {
	identity := domain.StaffIdentity{StaffID: 1, Departments: []string{"A"}}

	assert.True(t, CanViewTicket(identity, tickets[0]))
	// same department, different assignee
	assert.False(t, CanViewTicket(identity, tickets[1]))
	assert.False(t, CanViewTicket(identity, tickets[2]))
	assert.False(t, CanViewTicket(identity, tickets[4]))
}

func TestOwnedTickets(t *testing.T) {
	owned := OwnedTickets(domain.StaffIdentity{StaffID: 2}, tickets)
	require.Len(t, owned, 1)
	assert.Equal(t, int64(101), owned[0].ID)

	assert.Empty(t, OwnedTickets(domain.StaffIdentity{StaffID: 9}, tickets))
}

func TestDepartmentTicketsIncludeInactiveAssignees(t *testing.T) {
	identity := domain.StaffIdentity{Departments: []string{"A"}}
	deptTickets := DepartmentTickets(identity, staff, tickets)

	ids := make([]int64, 0, len(deptTickets))
	for _, tk := range deptTickets {
		ids = append(ids, tk.ID)
	}
	assert.Equal(t, []int64{100, 101, 103}, ids)
}
