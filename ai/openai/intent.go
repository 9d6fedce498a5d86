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
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/poiesic/eventmatch/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrMalformedResponse indicates the model output held no parseable JSON object.
var ErrMalformedResponse = errors.New("malformed model response")

// IntentService implements ai.IntentService using OpenAI-compatible chat APIs.
type IntentService struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// newIntentService is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIntentService(config *ai.Config) (*IntentService, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &IntentService{
		client:  client,
		timeout: config.RequestTimeout,
		logger:  slog.Default().With("component", "openai-intent"),
	}, nil
}

// NewIntentService creates a new intent service using the provided configuration.
//
// Returns ai.IntentService interface to enforce abstraction.
func NewIntentService(config *ai.Config) (ai.IntentService, error) {
	return newIntentService(config)
}

// ExtractIntent extracts structured intent fields from the query using an LLM.
// The tag catalogue is embedded in the system prompt as instructions.
func (s *IntentService) ExtractIntent(ctx context.Context, query string, catalogue ai.TagCatalogue) (*ai.IntentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildIntentPrompt(catalogue)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		s.logger.Error("failed to generate content", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		s.logger.Debug("no choices returned from model")
		return nil, ErrMalformedResponse
	}

	responseText := firstJSONObject(cleanResponse(response.Choices[0].Content))
	if responseText == "" {
		s.logger.Warn("no JSON object in classifier response")
		return nil, ErrMalformedResponse
	}
	responseText = repairJSON(responseText)

	var result ai.IntentResult
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		s.logger.Warn("error parsing classifier response", "response", responseText, "err", err)
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	s.logger.Debug("extracted intent",
		"goals", len(result.GoalPhrases),
		"industries", len(result.IndustryPhrases))

	return &result, nil
}
