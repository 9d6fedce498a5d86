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

// RankingService implements ai.RankingService using OpenAI-compatible chat APIs.
type RankingService struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// newRankingService is an internal constructor that returns the concrete type.
func newRankingService(config *ai.Config) (*RankingService, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ReasonerHost),
		openai.WithToken("none"),
		openai.WithModel(config.ReasonerModel),
	)
	if err != nil {
		return nil, err
	}

	return &RankingService{
		client:  client,
		timeout: config.RequestTimeout,
		logger:  slog.Default().With("component", "openai-ranker"),
	}, nil
}

// NewRankingService creates a new ranking service using the provided configuration.
//
// Returns ai.RankingService interface to enforce abstraction.
func NewRankingService(config *ai.Config) (ai.RankingService, error) {
	return newRankingService(config)
}

// RankCandidates asks the reasoning model to select and justify the top
// candidates. The response is parsed defensively; selections referencing
// indices outside the window are the caller's problem to drop.
func (s *RankingService) RankCandidates(ctx context.Context, req *ai.RankRequest) (*ai.RankOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildRankPrompt(req.TopK)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildRankInput(req)),
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
		s.logger.Warn("no JSON object in reasoner response")
		return nil, ErrMalformedResponse
	}
	responseText = repairJSON(responseText)

	var outcome ai.RankOutcome
	if err := json.Unmarshal([]byte(responseText), &outcome); err != nil {
		s.logger.Warn("error parsing reasoner response", "response", responseText, "err", err)
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	s.logger.Debug("ranked candidates",
		"window", len(req.Candidates),
		"selected", len(outcome.Selections))

	return &outcome, nil
}
