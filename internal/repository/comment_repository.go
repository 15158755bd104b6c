package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

// CommentRepository reads ticket comments.
type CommentRepository interface {
	ListAll(ctx context.Context) ([]domain.TicketComment, error)
}

type commentRepository struct {
	q Querier
}

// NewCommentRepository instantiates the repository.
func NewCommentRepository(q Querier) CommentRepository {
	return &commentRepository{q: q}
}

func (r *commentRepository) ListAll(ctx context.Context) ([]domain.TicketComment, error) {
	const query = `
        SELECT comment_id, ticket_id, author_id, author_type, comment_text, created_at
        FROM TicketComments
        ORDER BY created_at, comment_id`

	comments, err := collect(ctx, r.q, query, func(rows Rows) (domain.TicketComment, error) {
		var (
			c          domain.TicketComment
			authorType string
			createdAt  *time.Time
		)
		if err := rows.Scan(&c.ID, &c.TicketID, &c.AuthorID, &authorType, &c.Text, &createdAt); err != nil {
			return c, err
		}
		c.AuthorType = domain.AuthorType(authorType)
		if createdAt != nil {
			c.CreatedAt = *createdAt
		}
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
