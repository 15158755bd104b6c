package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/deskmetrics/helpdesk-reports/internal/config"
)

// SQLite wraps a database/sql handle on a modernc sqlite file, used for local
// runs without Postgres.
type SQLite struct {
	DB *sql.DB
}

// NewSQLite opens and pings the configured database file.
func NewSQLite(ctx context.Context, cfg config.SQLiteConfig, logger *zap.Logger) (*SQLite, error) {
	if cfg.Path == "" {
		return nil, errors.New("SQLITE_PATH not provided")
	}
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	logger.Info("opened sqlite database", zap.String("path", cfg.Path))
	return &SQLite{DB: db}, nil
}

// Close closes the handle.
func (s *SQLite) Close() {
	if s != nil && s.DB != nil {
		_ = s.DB.Close()
	}
}

// Ping verifies the file is still reachable.
func (s *SQLite) Ping(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("sqlite not configured")
	}
	return s.DB.PingContext(ctx)
}

// Exec runs a statement without arguments, used for migrations.
func (s *SQLite) Exec(ctx context.Context, query string) error {
	if s == nil || s.DB == nil {
		return errors.New("sqlite not configured")
	}
	_, err := s.DB.ExecContext(ctx, query)
	return err
}
