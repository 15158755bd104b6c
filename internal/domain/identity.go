package domain

// StaffIdentity is the authenticated principal. Its department set is the
// access scope and may span several departments, unlike StaffMember.Department.
type StaffIdentity struct {
	StaffID     int64
	Login       string
	Name        string
	Role        StaffRole
	Departments []string
}

// HasDepartment reports whether dept is within the identity's scope.
func (i StaffIdentity) HasDepartment(dept string) bool {
	for _, d := range i.Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// DepartmentSet returns the identity's departments as a set.
func (i StaffIdentity) DepartmentSet() map[string]struct{} {
	set := make(map[string]struct{}, len(i.Departments))
	for _, d := range i.Departments {
		set[d] = struct{}{}
	}
	return set
}
