package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/repository"
)

// Load reads every collection once and returns the immutable snapshot served
// for the life of the process. Any read error aborts the load; empty
// collections are only warned about.
func Load(ctx context.Context, repos repository.Repositories, logger *zap.Logger) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}
	var err error

	if snap.Users, err = repos.Users.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Staff, err = repos.Staff.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Statuses, err = repos.Statuses.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Categories, err = repos.Categories.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Tickets, err = repos.Tickets.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Comments, err = repos.Comments.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Logs, err = repos.Logs.ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	snap.LoadedAt = time.Now()

	counts := snap.Counts()
	warnEmpty(logger, "users", counts.Users)
	warnEmpty(logger, "staff", counts.Staff)
	warnEmpty(logger, "statuses", counts.Statuses)
	warnEmpty(logger, "categories", counts.Categories)
	warnEmpty(logger, "tickets", counts.Tickets)
	warnEmpty(logger, "comments", counts.Comments)
	warnEmpty(logger, "logs", counts.Logs)

	unknown := 0
	for _, t := range snap.Tickets {
		if !t.StatusID.Known() {
			unknown++
		}
	}
	if unknown > 0 {
		logger.Warn("tickets with status outside known buckets", zap.Int("count", unknown))
	}

	logger.Info("snapshot loaded",
		zap.Int("users", counts.Users),
		zap.Int("staff", counts.Staff),
		zap.Int("statuses", counts.Statuses),
		zap.Int("categories", counts.Categories),
		zap.Int("tickets", counts.Tickets),
		zap.Int("comments", counts.Comments),
		zap.Int("logs", counts.Logs),
	)
	return snap, nil
}

func warnEmpty(logger *zap.Logger, collection string, n int) {
	if n == 0 {
		logger.Warn("snapshot collection is empty", zap.String("collection", collection))
	}
}
