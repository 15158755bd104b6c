package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

// LogRepository reads ticket audit logs.
type LogRepository interface {
	ListAll(ctx context.Context) ([]domain.TicketLog, error)
}

type logRepository struct {
	q Querier
}

// NewLogRepository instantiates the repository.
func NewLogRepository(q Querier) LogRepository {
	return &logRepository{q: q}
}

func (r *logRepository) ListAll(ctx context.Context) ([]domain.TicketLog, error) {
	const query = `
        SELECT log_id, ticket_id, action, performed_by_staff_id, performed_at
        FROM TicketLogs
        ORDER BY performed_at, log_id`

	logs, err := collect(ctx, r.q, query, func(rows Rows) (domain.TicketLog, error) {
		var (
			l           domain.TicketLog
			performedAt *time.Time
		)
		if err := rows.Scan(&l.ID, &l.TicketID, &l.Action, &l.PerformedByStaffID, &performedAt); err != nil {
			return l, err
		}
		if performedAt != nil {
			l.PerformedAt = *performedAt
		}
		return l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list ticket logs: %w", err)
	}
	return logs, nil
}
