package mock

import (
	"context"

	"github.com/poiesic/eventmatch/ai"
)

// MockEventTagger is a test double for ai.EventTagger.
// It allows custom behavior injection via function fields.
type MockEventTagger struct {
	// TagEventFunc is called by TagEvent if set.
	// If nil, uses default deterministic behavior.
	TagEventFunc func(ctx context.Context, name, hostedBy, description string) (*ai.TagSet, error)

	callCount int
}

// NewMockEventTagger creates a mock event tagger with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockEventTagger() *MockEventTagger {
	return &MockEventTagger{}
}

// TagEvent returns the injected behavior's result, or a default tag set
// marking the event as a networking meetup.
func (m *MockEventTagger) TagEvent(ctx context.Context, name, hostedBy, description string) (*ai.TagSet, error) {
	m.callCount++

	if m.TagEventFunc != nil {
		return m.TagEventFunc(ctx, name, hostedBy, description)
	}

	return &ai.TagSet{
		EventTags:    []string{"meetup"},
		UsageTags:    []string{"networking"},
		IndustryTags: []string{},
		EventType:    "meetup",
	}, nil
}

// CallCount returns the number of times TagEvent was called.
func (m *MockEventTagger) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEventTagger) Reset() {
	m.callCount = 0
	m.TagEventFunc = nil
}
