package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/ai/mock"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/rank"
	"github.com/poiesic/eventmatch/storage"
	"github.com/poiesic/eventmatch/storage/badger"
	"github.com/poiesic/eventmatch/taxonomy"
)

func newTestRecommender(t *testing.T, provider ai.Provider) (*Recommender, storage.EventRepository, storage.AuditRepository) {
	t.Helper()
	eventRepo, auditRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		eventRepo.Close()
		auditRepo.Close()
		backend.Close()
	})

	recommender, err := NewRecommender(taxonomy.Default(), provider, eventRepo, auditRepo)
	require.NoError(t, err)
	return recommender, eventRepo, auditRepo
}

func seedEvents(t *testing.T, repo storage.EventRepository) {
	t.Helper()
	_, err := repo.AddEvents(context.Background(),
		&core.Event{
			Name:         "Wellness Founders Dinner",
			Description:  "An evening dinner connecting wellness founders with angel investors.",
			DateTime:     "Thu, Oct 8, 7 PM",
			Price:        "Free",
			UsageTags:    []string{"find-angels", "networking"},
			IndustryTags: []string{"wellness"},
			WomenFocused: true,
		},
		&core.Event{
			Name:         "Crypto Gaming Night",
			Description:  "Arcade night for web3 gamers",
			DateTime:     "Fri, Oct 9, 8 PM",
			UsageTags:    []string{"networking"},
			IndustryTags: []string{"web3", "gaming"},
		},
		&core.Event{
			Name:        "Community Picnic",
			Description: "Bring your own blanket",
			DateTime:    "Sat, Oct 10, noon",
		},
	)
	require.NoError(t, err)
}

func TestRecommendDeterministicPipeline(t *testing.T) {
	recommender, eventRepo, auditRepo := newTestRecommender(t, nil)
	seedEvents(t, eventRepo)

	rec, err := recommender.Recommend(context.Background(), &Request{
		Query: "I'm a female founder seeking angel investors for my wellness startup",
	})
	require.NoError(t, err)

	require.Equal(t, 1, rec.Count)
	result := rec.Results[0]
	assert.Equal(t, "Wellness Founders Dinner", result.Event.Name)
	assert.Equal(t, rank.FallbackJustification, result.Justification)
	assert.Equal(t, rank.CategoryStrongMatch, result.Category)
	assert.Positive(t, result.Score)
	assert.Empty(t, rec.Message)

	records, err := auditRepo.GetRecentQueryRecords(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ResultCount)
	assert.Contains(t, records[0].Goals, "find-angels")
}

func TestRecommendEmptyCatalog(t *testing.T) {
	recommender, _, auditRepo := newTestRecommender(t, nil)

	rec, err := recommender.Recommend(context.Background(), &Request{Query: "any networking event"})
	require.NoError(t, err)

	assert.Zero(t, rec.Count)
	assert.Empty(t, rec.Results)
	assert.Equal(t, NoMatchesMessage, rec.Message)

	records, err := auditRepo.GetRecentQueryRecords(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Zero(t, records[0].ResultCount)
}

func TestRecommendDemographicHardFilterCanEmpty(t *testing.T) {
	recommender, eventRepo, _ := newTestRecommender(t, nil)
	_, err := eventRepo.AddEvents(context.Background(),
		&core.Event{Name: "General Mixer", DateTime: "Mon", UsageTags: []string{"networking"}},
	)
	require.NoError(t, err)

	rec, err := recommender.Recommend(context.Background(), &Request{
		Query: "women in tech networking",
	})
	require.NoError(t, err)

	assert.Zero(t, rec.Count)
	assert.Equal(t, NoMatchesMessage, rec.Message)
}

func TestRecommendWithAIServices(t *testing.T) {
	intentSvc := mock.NewMockIntentService()
	intentSvc.ExtractIntentFunc = func(ctx context.Context, query string, cat ai.TagCatalogue) (*ai.IntentResult, error) {
		return &ai.IntentResult{
			GoalPhrases:     []string{"networking"},
			IndustryPhrases: []string{"web3"},
			Rationale:       "wants to meet people in web3",
		}, nil
	}
	rankSvc := mock.NewMockRankingService()
	rankSvc.RankCandidatesFunc = func(ctx context.Context, req *ai.RankRequest) (*ai.RankOutcome, error) {
		return &ai.RankOutcome{
			Selections: []ai.RankedSelection{{Index: 0, Justification: "the closest fit for web3 networking"}},
			Rationale:  "picked the strongest combined match",
		}, nil
	}
	provider := mock.NewMockProviderWithServices(intentSvc, rankSvc, mock.NewMockEventTagger())

	recommender, eventRepo, _ := newTestRecommender(t, provider)
	seedEvents(t, eventRepo)

	rec, err := recommender.Recommend(context.Background(), &Request{
		Query: "meet web3 people",
		TopK:  1,
		UseAI: true,
	})
	require.NoError(t, err)

	require.Equal(t, 1, rec.Count)
	assert.Equal(t, "Crypto Gaming Night", rec.Results[0].Event.Name)
	assert.Equal(t, "the closest fit for web3 networking", rec.Results[0].Justification)
	assert.Equal(t, "picked the strongest combined match", rec.Rationale)
	assert.Equal(t, 1, intentSvc.CallCount())
	assert.Equal(t, 1, rankSvc.CallCount())
}

func TestRecommendAIFailureDegradesToFallback(t *testing.T) {
	intentSvc := mock.NewMockIntentService()
	intentSvc.ExtractIntentFunc = func(ctx context.Context, query string, cat ai.TagCatalogue) (*ai.IntentResult, error) {
		return nil, errors.New("intent service down")
	}
	rankSvc := mock.NewMockRankingService()
	rankSvc.RankCandidatesFunc = func(ctx context.Context, req *ai.RankRequest) (*ai.RankOutcome, error) {
		return nil, errors.New("ranking service down")
	}
	provider := mock.NewMockProviderWithServices(intentSvc, rankSvc, mock.NewMockEventTagger())

	recommender, eventRepo, _ := newTestRecommender(t, provider)
	seedEvents(t, eventRepo)

	rec, err := recommender.Recommend(context.Background(), &Request{
		Query: "angel investors for my wellness startup",
		UseAI: true,
	})
	require.NoError(t, err)

	require.NotZero(t, rec.Count)
	assert.Equal(t, "Wellness Founders Dinner", rec.Results[0].Event.Name)
	assert.Equal(t, rank.FallbackJustification, rec.Results[0].Justification)
}

type recordingObserver struct {
	calls  int
	lastAI bool
	lastN  int
}

func (o *recordingObserver) ObserveQuery(useAI bool, resultCount int) {
	o.calls++
	o.lastAI = useAI
	o.lastN = resultCount
}

func TestRecommendNotifiesQueryObserver(t *testing.T) {
	eventRepo, auditRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		eventRepo.Close()
		auditRepo.Close()
		backend.Close()
	})
	seedEvents(t, eventRepo)

	observer := &recordingObserver{}
	recommender, err := NewRecommender(taxonomy.Default(), nil, eventRepo, auditRepo,
		WithQueryObserver(observer))
	require.NoError(t, err)

	rec, err := recommender.Recommend(context.Background(), &Request{Query: "networking events"})
	require.NoError(t, err)

	assert.Equal(t, 1, observer.calls)
	assert.False(t, observer.lastAI)
	assert.Equal(t, rec.Count, observer.lastN)
}

func TestRecommendInvalidQuery(t *testing.T) {
	recommender, _, _ := newTestRecommender(t, nil)

	_, err := recommender.Recommend(context.Background(), &Request{Query: "  "})
	assert.ErrorIs(t, err, core.ErrInvalidQuery)
}

func TestRecommendRequiresEventRepository(t *testing.T) {
	_, err := NewRecommender(taxonomy.Default(), nil, nil, nil)
	assert.ErrorIs(t, err, ErrEventRepositoryRequired)
}
