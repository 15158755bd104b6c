package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

// UserRepository reads end users.
type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	q Querier
}

// NewUserRepository instantiates the repository.
func NewUserRepository(q Querier) UserRepository {
	return &userRepository{q: q}
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT user_id, email, full_name, registration_date
        FROM Users
        ORDER BY user_id`

	users, err := collect(ctx, r.q, query, func(rows Rows) (domain.User, error) {
		var (
			u          domain.User
			registered *time.Time
		)
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &registered); err != nil {
			return u, err
		}
		u.RegistrationDate = registered
		return u, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
