package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Rows is the cursor shape shared by pgx and database/sql.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier runs read queries. Repositories depend on it rather than a concrete
// driver so the snapshot can come from Postgres or SQLite.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

type pgxQuerier struct {
	pool *pgxpool.Pool
}

// FromPgxPool adapts a pgx pool.
func FromPgxPool(pool *pgxpool.Pool) Querier {
	return pgxQuerier{pool: pool}
}

func (q pgxQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := q.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type sqlQuerier struct {
	db *sql.DB
}

// FromSQLDB adapts a database/sql handle.
func FromSQLDB(db *sql.DB) Querier {
	return sqlQuerier{db: db}
}

func (q sqlQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{Rows: rows}, nil
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}

// collect runs query and scans every row with scan.
func collect[T any](ctx context.Context, q Querier, query string, scan func(Rows) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

