// Package access decides which staff, tickets and departments an identity may
// see. Two rules coexist: a ticket and the personal lists belong to the
// assignee alone, while rosters and department aggregates are scoped by
// department membership.
package access

import "github.com/deskmetrics/helpdesk-reports/internal/domain"

// VisibleDepartments intersects the identity's departments with all, keeping
// the order of all.
func VisibleDepartments(identity domain.StaffIdentity, all []string) []string {
	scope := identity.DepartmentSet()
	result := make([]string, 0, len(all))
	for _, dept := range all {
		if _, ok := scope[dept]; ok {
			result = append(result, dept)
		}
	}
	return result
}

// VisibleStaff returns the active staff members whose department is in scope.
func VisibleStaff(identity domain.StaffIdentity, staff []domain.StaffMember) []domain.StaffMember {
	scope := identity.DepartmentSet()
	result := make([]domain.StaffMember, 0)
	for _, member := range staff {
		if !member.IsActive {
			continue
		}
		if _, ok := scope[member.Department]; ok {
			result = append(result, member)
		}
	}
	return result
}

// CanViewTicket grants ticket detail access to the assignee only. Sharing a
// department with the assignee is not enough.
func CanViewTicket(identity domain.StaffIdentity, ticket domain.Ticket) bool {
	return ticket.AssignedTo(identity.StaffID)
}

// OwnedTickets returns the tickets assigned to the identity.
func OwnedTickets(identity domain.StaffIdentity, tickets []domain.Ticket) []domain.Ticket {
	result := make([]domain.Ticket, 0)
	for _, t := range tickets {
		if t.AssignedTo(identity.StaffID) {
			result = append(result, t)
		}
	}
	return result
}

// DepartmentStaffIDs returns the ids of every staff member, active or not,
// whose department is in scope.
func DepartmentStaffIDs(identity domain.StaffIdentity, staff []domain.StaffMember) map[int64]struct{} {
	scope := identity.DepartmentSet()
	ids := make(map[int64]struct{})
	for _, member := range staff {
		if _, ok := scope[member.Department]; ok {
			ids[member.ID] = struct{}{}
		}
	}
	return ids
}

// DepartmentTickets returns the tickets whose assignee belongs to a department
// in scope. Tickets have no department of their own; attribution goes through
// the assignee.
func DepartmentTickets(identity domain.StaffIdentity, staff []domain.StaffMember, tickets []domain.Ticket) []domain.Ticket {
	return TicketsAssignedToAny(DepartmentStaffIDs(identity, staff), tickets)
}

// TicketsAssignedToAny filters tickets to those assigned to one of ids.
func TicketsAssignedToAny(ids map[int64]struct{}, tickets []domain.Ticket) []domain.Ticket {
	result := make([]domain.Ticket, 0)
	for _, t := range tickets {
		if t.AssignedStaffID == nil {
			continue
		}
		if _, ok := ids[*t.AssignedStaffID]; ok {
			result = append(result, t)
		}
	}
	return result
}
