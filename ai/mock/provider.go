// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/poiesic/eventmatch/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock intent, ranking, and tagging service instances.
type MockProvider struct {
	intent *MockIntentService
	ranker *MockRankingService
	tagger *MockEventTagger
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockIntent()/GetMockRanker()/GetMockTagger() to access concrete
// types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		intent: NewMockIntentService(),
		ranker: NewMockRankingService(),
		tagger: NewMockEventTagger(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(intent *MockIntentService, ranker *MockRankingService, tagger *MockEventTagger) ai.Provider {
	return &MockProvider{
		intent: intent,
		ranker: ranker,
		tagger: tagger,
	}
}

// IntentService returns the mock intent service.
func (p *MockProvider) IntentService() ai.IntentService {
	return p.intent
}

// RankingService returns the mock ranking service.
func (p *MockProvider) RankingService() ai.RankingService {
	return p.ranker
}

// EventTagger returns the mock event tagger.
func (p *MockProvider) EventTagger() ai.EventTagger {
	return p.tagger
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockIntent returns the underlying mock intent service for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockIntent() *MockIntentService {
	return p.intent
}

// GetMockRanker returns the underlying mock ranking service for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockRanker() *MockRankingService {
	return p.ranker
}

// GetMockTagger returns the underlying mock event tagger for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockTagger() *MockEventTagger {
	return p.tagger
}
