package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/ai/mock"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/storage"
	"github.com/poiesic/eventmatch/storage/badger"
)

type countingRecorder struct {
	ingested int
	failures int
}

func (r *countingRecorder) EventsIngested(count int) { r.ingested += count }
func (r *countingRecorder) TaggingFailure()          { r.failures++ }

func newTestPipeline(t *testing.T, tagger ai.EventTagger, opts ...Option) (*Pipeline, storage.EventRepository) {
	t.Helper()
	eventRepo, auditRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		eventRepo.Close()
		auditRepo.Close()
		backend.Close()
	})

	// Pool size 1 keeps the mock tagger's call counting race-free.
	opts = append([]Option{WithPoolSize(1)}, opts...)
	pipeline, err := NewPipeline(eventRepo, tagger, opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)
	return pipeline, eventRepo
}

func TestIngestEventsTagsUntagged(t *testing.T) {
	tagger := mock.NewMockEventTagger()
	tagger.TagEventFunc = func(ctx context.Context, name, hostedBy, description string) (*ai.TagSet, error) {
		return &ai.TagSet{
			EventTags:    []string{"dinner"},
			UsageTags:    []string{"find-angels"},
			IndustryTags: []string{"wellness"},
			WomenFocused: true,
		}, nil
	}
	pipeline, repo := newTestPipeline(t, tagger)

	report, err := pipeline.IngestEvents(context.Background(), []*core.Event{
		{Name: "Wellness Founders Dinner", DateTime: "Thu, Oct 8, 7 PM"},
		{Name: "Pitch Night", DateTime: "Fri, Oct 9", UsageTags: []string{"find-investors"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Tagged)
	assert.Zero(t, report.TagFailures)
	assert.Equal(t, 1, tagger.CallCount())

	stored, err := repo.GetRecentEvents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, event := range stored {
		if event.Name == "Wellness Founders Dinner" {
			assert.Equal(t, []string{"find-angels"}, event.UsageTags)
			assert.Equal(t, []string{"wellness"}, event.IndustryTags)
			assert.True(t, event.WomenFocused)
		}
		if event.Name == "Pitch Night" {
			assert.Equal(t, []string{"find-investors"}, event.UsageTags)
		}
	}
}

func TestIngestEventsTaggingFailureStoresUntagged(t *testing.T) {
	tagger := mock.NewMockEventTagger()
	tagger.TagEventFunc = func(ctx context.Context, name, hostedBy, description string) (*ai.TagSet, error) {
		return nil, errors.New("tagger unavailable")
	}
	recorder := &countingRecorder{}
	pipeline, repo := newTestPipeline(t, tagger, WithRecorder(recorder))

	report, err := pipeline.IngestEvents(context.Background(), []*core.Event{
		{Name: "Mystery Mixer", DateTime: "Sat"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Zero(t, report.Tagged)
	assert.Equal(t, 1, report.TagFailures)
	assert.Equal(t, 1, recorder.failures)
	assert.Equal(t, 1, recorder.ingested)

	stored, err := repo.GetRecentEvents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Empty(t, stored[0].UsageTags)
}

func TestIngestEventsSkipsInvalid(t *testing.T) {
	pipeline, repo := newTestPipeline(t, nil)

	report, err := pipeline.IngestEvents(context.Background(), []*core.Event{
		{Description: "no name"},
		{Name: "Valid Event", DateTime: "Mon"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Skipped)

	stored, err := repo.GetRecentEvents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Valid Event", stored[0].Name)
}

func TestIngestEventsNilTaggerStoresAsIs(t *testing.T) {
	pipeline, repo := newTestPipeline(t, nil)

	report, err := pipeline.IngestEvents(context.Background(), []*core.Event{
		{Name: "Untagged Meetup", DateTime: "Tue"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Zero(t, report.Tagged)

	stored, err := repo.GetRecentEvents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Empty(t, stored[0].UsageTags)
}

func TestIngestEventsEmptyBatch(t *testing.T) {
	pipeline, _ := newTestPipeline(t, nil)

	report, err := pipeline.IngestEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, report.Total)
}

func TestNewPipelineRequiresRepository(t *testing.T) {
	_, err := NewPipeline(nil, nil)
	assert.ErrorIs(t, err, ErrEventRepositoryRequired)
}
