package persistence

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingExecer struct {
	scripts []string
	failOn  string
}

func (r *recordingExecer) Exec(_ context.Context, sql string) error {
	if r.failOn != "" && sql == r.failOn {
		return errors.New("syntax error")
	}
	r.scripts = append(r.scripts, sql)
	return nil
}

func TestRunMigrationsAppliesInOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_b.sql": {Data: []byte("B")},
		"migrations/001_a.sql": {Data: []byte("A")},
		"migrations/README.md": {Data: []byte("skip")},
		"migrations/sub/x.sql": {Data: []byte("nested")},
	}
	exec := &recordingExecer{}

	require.NoError(t, runMigrations(context.Background(), exec, fsys, zap.NewNop()))
	assert.Equal(t, []string{"A", "B"}, exec.scripts)
}

func TestRunMigrationsStopsOnError(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/001_a.sql": {Data: []byte("A")},
		"migrations/002_b.sql": {Data: []byte("B")},
	}
	exec := &recordingExecer{failOn: "A"}

	err := runMigrations(context.Background(), exec, fsys, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_a.sql")
	assert.Empty(t, exec.scripts)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	exec := &recordingExecer{}
	require.NoError(t, RunMigrations(context.Background(), exec, zap.NewNop()))
	require.Len(t, exec.scripts, 2)
	assert.Contains(t, exec.scripts[0], "CREATE TABLE IF NOT EXISTS Tickets")
}

func TestSchemaMatchesHelpdeskDatabase(t *testing.T) {
	exec := &recordingExecer{}
	require.NoError(t, RunMigrations(context.Background(), exec, zap.NewNop()))
	schema := exec.scripts[0]

	for _, table := range []string{"Users", "Staff", "TicketStatuses", "ProblemCategories", "Tickets", "TicketComments", "TicketLogs"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
	assert.Regexp(t, `(?m)^\s+description\s+TEXT,$`, schema)
	assert.Contains(t, exec.scripts[1], "INSERT INTO TicketStatuses")
}

func TestRunMigrationsWithoutDatabase(t *testing.T) {
	assert.NoError(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}
