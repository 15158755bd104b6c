package repository

import (
	"context"
	"fmt"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

// StatusRepository reads the ticket status lookup table.
type StatusRepository interface {
	ListAll(ctx context.Context) ([]domain.TicketStatus, error)
}

// CategoryRepository reads problem categories.
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]domain.ProblemCategory, error)
}

type statusRepository struct {
	q Querier
}

// NewStatusRepository instantiates the repository.
func NewStatusRepository(q Querier) StatusRepository {
	return &statusRepository{q: q}
}

func (r *statusRepository) ListAll(ctx context.Context) ([]domain.TicketStatus, error) {
	const query = `SELECT status_id, status_name FROM TicketStatuses ORDER BY status_id`

	statuses, err := collect(ctx, r.q, query, func(rows Rows) (domain.TicketStatus, error) {
		var (
			s  domain.TicketStatus
			id int64
		)
		if err := rows.Scan(&id, &s.Name); err != nil {
			return s, err
		}
		s.ID = domain.StatusID(id)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return statuses, nil
}

type categoryRepository struct {
	q Querier
}

// NewCategoryRepository instantiates the repository.
func NewCategoryRepository(q Querier) CategoryRepository {
	return &categoryRepository{q: q}
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]domain.ProblemCategory, error) {
	const query = `SELECT category_id, category_name FROM ProblemCategories ORDER BY category_id`

	categories, err := collect(ctx, r.q, query, func(rows Rows) (domain.ProblemCategory, error) {
		var c domain.ProblemCategory
		err := rows.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
