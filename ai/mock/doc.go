// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.IntentService,
// ai.RankingService, and ai.EventTagger for use in unit tests. The mocks
// allow tests to run without external AI service dependencies and enable
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	outcome, err := mockProvider.RankingService().RankCandidates(ctx, req)
//
//	// Custom behavior injection
//	mockIntent := mock.NewMockIntentService()
//	mockIntent.ExtractIntentFunc = func(ctx context.Context, query string, cat ai.TagCatalogue) (*ai.IntentResult, error) {
//	    return nil, errors.New("service unavailable")
//	}
//
//	// Check call counts
//	count := mockIntent.CallCount()
package mock
