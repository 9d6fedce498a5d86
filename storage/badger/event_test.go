package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/storage"
)

func newTestRepos(t *testing.T) (storage.EventRepository, storage.AuditRepository) {
	t.Helper()
	eventRepo, auditRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		eventRepo.Close()
		auditRepo.Close()
		backend.Close()
	})
	return eventRepo, auditRepo
}

func TestAddAndGetEvent(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	event := &core.Event{
		Name:        "Fintech Happy Hour",
		Description: "Casual drinks for fintech founders",
		DateTime:    "Wed, Oct 7, 5 PM",
		UsageTags:   []string{"networking"},
	}

	added, err := repo.AddEvents(ctx, event)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.NotZero(t, added[0].Id)
	assert.False(t, added[0].InsertedAt.IsZero())
	assert.Equal(t, added[0].InsertedAt, added[0].UpdatedAt)

	got, err := repo.GetEvent(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "Fintech Happy Hour", got.Name)
	assert.Equal(t, []string{"networking"}, got.UsageTags)
	// Tag lists are normalized, never nil.
	assert.NotNil(t, got.IndustryTags)
	assert.NotNil(t, got.EventTags)
}

func TestAddEventsUpsertsByContent(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	first, err := repo.AddEvents(ctx, &core.Event{
		Name:        "Demo Day",
		DateTime:    "Fri, Oct 9, 10 AM",
		Description: "original description",
	})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	second, err := repo.AddEvents(ctx, &core.Event{
		Name:        "Demo Day",
		DateTime:    "Fri, Oct 9, 10 AM",
		Description: "updated description",
	})
	require.NoError(t, err)

	// Same identity content resolves to the same ID.
	assert.Equal(t, first[0].Id, second[0].Id)
	assert.Equal(t, first[0].InsertedAt, second[0].InsertedAt)
	assert.True(t, second[0].UpdatedAt.After(first[0].UpdatedAt))

	recent, err := repo.GetRecentEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "updated description", recent[0].Description)
}

func TestGetEventNotFound(t *testing.T) {
	repo, _ := newTestRepos(t)

	_, err := repo.GetEvent(context.Background(), 12345)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetEventsSkipsMissing(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	added, err := repo.AddEvents(ctx, &core.Event{Name: "Only Event", DateTime: "Sat"})
	require.NoError(t, err)

	got, err := repo.GetEvents(ctx, added[0].Id, 99999)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Only Event", got[0].Name)
}

func TestGetRecentEventsOrderAndLimit(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := repo.AddEvents(ctx, &core.Event{Name: name, DateTime: name})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	recent, err := repo.GetRecentEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Third", recent[0].Name)
	assert.Equal(t, "Second", recent[1].Name)
}

func TestGetRecentEventsByDemographic(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := repo.AddEvents(ctx,
		&core.Event{Name: "Women Founders Brunch", DateTime: "Sun", WomenFocused: true},
		&core.Event{Name: "Open Mixer", DateTime: "Mon"},
	)
	require.NoError(t, err)

	focused, err := repo.GetRecentEventsByDemographic(ctx, true, 10)
	require.NoError(t, err)
	require.Len(t, focused, 1)
	assert.Equal(t, "Women Founders Brunch", focused[0].Name)

	rest, err := repo.GetRecentEventsByDemographic(ctx, false, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "Open Mixer", rest[0].Name)
}

func TestDeleteEvents(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	added, err := repo.AddEvents(ctx, &core.Event{Name: "Doomed", DateTime: "Tue"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteEvents(ctx, added[0].Id))

	_, err = repo.GetEvent(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	recent, err := repo.GetRecentEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)

	assert.ErrorIs(t, repo.DeleteEvents(ctx, added[0].Id), storage.ErrNotFound)
}

func TestAddEventsValidates(t *testing.T) {
	repo, _ := newTestRepos(t)

	_, err := repo.AddEvents(context.Background(), &core.Event{Description: "no name"})
	assert.ErrorIs(t, err, core.ErrInvalidEvent)
}
