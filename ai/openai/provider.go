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


package openai

import (
	"log/slog"

	"github.com/poiesic/eventmatch/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages the intent, ranking, and tagging service instances.
type Provider struct {
	config *ai.Config
	intent *IntentService
	ranker *RankingService
	tagger *EventTagger
	logger *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use. The catalogue is the
// tag vocabulary embedded in the intent and tagging prompts.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config, catalogue ai.TagCatalogue) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	intent, err := newIntentService(config)
	if err != nil {
		return nil, err
	}

	ranker, err := newRankingService(config)
	if err != nil {
		return nil, err
	}

	tagger, err := newEventTagger(config, catalogue)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config: config,
		intent: intent,
		ranker: ranker,
		tagger: tagger,
		logger: slog.Default().With("component", "openai-provider"),
	}, nil
}

// IntentService returns the intent extraction service.
func (p *Provider) IntentService() ai.IntentService {
	return p.intent
}

// RankingService returns the candidate ranking service.
func (p *Provider) RankingService() ai.RankingService {
	return p.ranker
}

// EventTagger returns the event tagging service.
func (p *Provider) EventTagger() ai.EventTagger {
	return p.tagger
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
