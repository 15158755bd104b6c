package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/repository"
)

type fakeUsers struct{}

func (fakeUsers) ListAll(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: 1, FullName: "Anna"}}, nil
}

type fakeStaff struct{}

func (fakeStaff) ListAll(context.Context) ([]domain.StaffMember, error) {
	return []domain.StaffMember{{ID: 10, FullName: "Ivan", Department: "IT", IsActive: true}}, nil
}

type fakeStatuses struct{}

func (fakeStatuses) ListAll(context.Context) ([]domain.TicketStatus, error) {
	return []domain.TicketStatus{{ID: domain.StatusNew, Name: "New"}}, nil
}

type fakeCategories struct{}

func (fakeCategories) ListAll(context.Context) ([]domain.ProblemCategory, error) {
	return nil, nil
}

type fakeTickets struct {
	err error
}

func (f fakeTickets) ListAll(context.Context) ([]domain.Ticket, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Ticket{
		{ID: 100, StatusID: domain.StatusNew},
		{ID: 101, StatusID: 9},
	}, nil
}

type fakeComments struct{}

func (fakeComments) ListAll(context.Context) ([]domain.TicketComment, error) {
	return []domain.TicketComment{{ID: 1, TicketID: 100}}, nil
}

type fakeLogs struct{}

func (fakeLogs) ListAll(context.Context) ([]domain.TicketLog, error) {
	return []domain.TicketLog{{ID: 1, TicketID: 100}}, nil
}

func fakeRepositories(tickets fakeTickets) repository.Repositories {
	return repository.Repositories{
		Users:      fakeUsers{},
		Staff:      fakeStaff{},
		Statuses:   fakeStatuses{},
		Categories: fakeCategories{},
		Tickets:    tickets,
		Comments:   fakeComments{},
		Logs:       fakeLogs{},
	}
}

func TestLoadBuildsSnapshot(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	snap, err := Load(context.Background(), fakeRepositories(fakeTickets{}), zap.New(core))
	require.NoError(t, err)

	counts := snap.Counts()
	assert.Equal(t, 2, counts.Tickets)
	assert.Equal(t, 0, counts.Categories)
	assert.False(t, snap.LoadedAt.IsZero())

	assert.Equal(t, 1, logs.FilterMessage("snapshot collection is empty").Len())
	outOfRange := logs.FilterMessage("tickets with status outside known buckets").All()
	require.Len(t, outOfRange, 1)
	assert.EqualValues(t, 1, outOfRange[0].ContextMap()["count"])
	assert.Equal(t, 1, logs.FilterMessage("snapshot loaded").Len())
}

func TestLoadFailsOnRepositoryError(t *testing.T) {
	snap, err := Load(context.Background(), fakeRepositories(fakeTickets{err: errors.New("relation does not exist")}), zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), "relation does not exist")
}
