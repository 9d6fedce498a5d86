package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/ai/mock"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/taxonomy"
)

func TestExtractKeywordStrategy(t *testing.T) {
	extractor := NewExtractor(taxonomy.Default(), nil)

	intent, err := extractor.Extract(context.Background(),
		"I'm a female founder looking for angel investors for my wellness startup, free evening events", false)
	require.NoError(t, err)

	assert.True(t, intent.WomenFocused)
	assert.Equal(t, []string{"find-angels", "find-investors"}, intent.Goals)
	assert.Equal(t, []string{"wellness"}, intent.Industries)
	assert.Equal(t, core.TimeEvening, intent.TimePreference)
	assert.Equal(t, core.BudgetFree, intent.Budget)
	assert.Empty(t, intent.Location)
}

func TestExtractKeywordStrategyIsDeterministic(t *testing.T) {
	extractor := NewExtractor(taxonomy.Default(), nil)
	query := "fintech networking mixer in soma"

	first, err := extractor.Extract(context.Background(), query, false)
	require.NoError(t, err)
	second, err := extractor.Extract(context.Background(), query, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractValidatesQuery(t *testing.T) {
	extractor := NewExtractor(taxonomy.Default(), nil)

	_, err := extractor.Extract(context.Background(), "   ", true)
	assert.ErrorIs(t, err, core.ErrInvalidQuery)
}

func TestExtractWithNilServiceIgnoresUseAI(t *testing.T) {
	extractor := NewExtractor(taxonomy.Default(), nil)

	intent, err := extractor.Extract(context.Background(), "looking for a cofounder", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"find-cofounder"}, intent.Goals)
}

func TestExtractCanonicalizesServiceOutput(t *testing.T) {
	service := mock.NewMockIntentService()
	service.ExtractIntentFunc = func(ctx context.Context, query string, cat ai.TagCatalogue) (*ai.IntentResult, error) {
		return &ai.IntentResult{
			GoalPhrases:     []string{"raise funding", "meet other founders"},
			IndustryPhrases: []string{"fintech", "artificial intelligence"},
			Location:        "soma",
			TimeOfDay:       "morning",
			Budget:          "paid",
			PrimaryCriteria: []string{"find-investors"},
			Rationale:       "user is fundraising",
		}, nil
	}
	extractor := NewExtractor(taxonomy.Default(), service)

	intent, err := extractor.Extract(context.Background(), "help me fundraise", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"find-investors"}, intent.Goals)
	assert.Equal(t, []string{"fintech", "ai"}, intent.Industries)
	assert.Equal(t, "soma", intent.Location)
	assert.Equal(t, core.TimeMorning, intent.TimePreference)
	assert.Equal(t, core.BudgetPaid, intent.Budget)
	assert.Equal(t, []string{"find-investors"}, intent.Hints.PrimaryCriteria)
	assert.Equal(t, "user is fundraising", intent.Hints.Rationale)
	assert.Equal(t, 1, service.CallCount())
}

func TestExtractFallsBackOnServiceError(t *testing.T) {
	service := mock.NewMockIntentService()
	service.ExtractIntentFunc = func(ctx context.Context, query string, cat ai.TagCatalogue) (*ai.IntentResult, error) {
		return nil, errors.New("service unavailable")
	}
	extractor := NewExtractor(taxonomy.Default(), service)
	query := "women in tech happy hour for hiring engineers"

	withAI, err := extractor.Extract(context.Background(), query, true)
	require.NoError(t, err)
	withoutAI, err := extractor.Extract(context.Background(), query, false)
	require.NoError(t, err)

	// A failing service degrades to exactly the keyword result.
	assert.Equal(t, withoutAI, withAI)
	assert.True(t, withAI.WomenFocused)
	assert.Contains(t, withAI.Goals, "find-talent")
}

func TestExtractKeepsQuerySignalsServiceMissed(t *testing.T) {
	service := mock.NewMockIntentService()
	service.ExtractIntentFunc = func(ctx context.Context, query string, cat ai.TagCatalogue) (*ai.IntentResult, error) {
		return &ai.IntentResult{GoalPhrases: []string{"networking"}}, nil
	}
	extractor := NewExtractor(taxonomy.Default(), service)

	intent, err := extractor.Extract(context.Background(), "women founders networking evening", true)
	require.NoError(t, err)

	assert.True(t, intent.WomenFocused)
	assert.Equal(t, core.TimeEvening, intent.TimePreference)
}

func TestBuildCatalogue(t *testing.T) {
	catalogue := BuildCatalogue(taxonomy.Default())

	assert.Len(t, catalogue.UsageTags, 10)
	assert.Len(t, catalogue.IndustryTags, 18)
	assert.Equal(t, "find-advisors", catalogue.UsageTags[0].ID)
	assert.NotEmpty(t, catalogue.UsageTags[0].Description)
}
