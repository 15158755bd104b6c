package repository

import (
	"context"
	"fmt"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

// StaffRepository reads staff members.
type StaffRepository interface {
	ListAll(ctx context.Context) ([]domain.StaffMember, error)
}

type staffRepository struct {
	q Querier
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(q Querier) StaffRepository {
	return &staffRepository{q: q}
}

func (r *staffRepository) ListAll(ctx context.Context) ([]domain.StaffMember, error) {
	const query = `
        SELECT staff_id, username, full_name, email, department, is_active
        FROM Staff
        ORDER BY staff_id`

	staff, err := collect(ctx, r.q, query, func(rows Rows) (domain.StaffMember, error) {
		var m domain.StaffMember
		err := rows.Scan(&m.ID, &m.Username, &m.FullName, &m.Email, &m.Department, &m.IsActive)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}
