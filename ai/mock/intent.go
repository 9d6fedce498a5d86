package mock

import (
	"context"

	"github.com/poiesic/eventmatch/ai"
)

// MockIntentService is a test double for ai.IntentService.
// It allows custom behavior injection via function fields.
type MockIntentService struct {
	// ExtractIntentFunc is called by ExtractIntent if set.
	// If nil, returns an empty intent result.
	ExtractIntentFunc func(ctx context.Context, query string, catalogue ai.TagCatalogue) (*ai.IntentResult, error)

	callCount int
}

// NewMockIntentService creates a mock intent service with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockIntentService() *MockIntentService {
	return &MockIntentService{}
}

// ExtractIntent returns the injected behavior's result, or an empty
// intent result by default.
func (m *MockIntentService) ExtractIntent(ctx context.Context, query string, catalogue ai.TagCatalogue) (*ai.IntentResult, error) {
	m.callCount++

	if m.ExtractIntentFunc != nil {
		return m.ExtractIntentFunc(ctx, query, catalogue)
	}

	return &ai.IntentResult{
		GoalPhrases:     []string{},
		IndustryPhrases: []string{},
	}, nil
}

// CallCount returns the number of times ExtractIntent was called.
func (m *MockIntentService) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockIntentService) Reset() {
	m.callCount = 0
	m.ExtractIntentFunc = nil
}
