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
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/eventmatch/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// descriptionExcerptLen bounds how much event description is sent to the model.
const descriptionExcerptLen = 800

// EventTagger implements ai.EventTagger using OpenAI-compatible chat APIs.
type EventTagger struct {
	client    llms.Model
	catalogue ai.TagCatalogue
	timeout   time.Duration
	logger    *slog.Logger
}

// newEventTagger is an internal constructor that returns the concrete type.
func newEventTagger(config *ai.Config, catalogue ai.TagCatalogue) (*EventTagger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &EventTagger{
		client:    client,
		catalogue: catalogue,
		timeout:   config.RequestTimeout,
		logger:    slog.Default().With("component", "openai-tagger"),
	}, nil
}

// NewEventTagger creates a new event tagger using the provided configuration.
// The catalogue fixes the usage-tag vocabulary the model may assign.
//
// Returns ai.EventTagger interface to enforce abstraction.
func NewEventTagger(config *ai.Config, catalogue ai.TagCatalogue) (ai.EventTagger, error) {
	return newEventTagger(config, catalogue)
}

// TagEvent categorizes one event. Usage tags outside the catalogue are
// dropped so the stored vocabulary stays canonical.
func (t *EventTagger) TagEvent(ctx context.Context, name, hostedBy, description string) (*ai.TagSet, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	input := fmt.Sprintf("Event Name: %s\nHosted By: %s\nDescription: %s",
		name, hostedBy, excerpt(description, descriptionExcerptLen))

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildTagPrompt(t.catalogue)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(input),
			},
		},
	}

	response, err := t.client.GenerateContent(ctx, content, llms.WithTemperature(0.2), llms.WithJSONMode())
	if err != nil {
		t.logger.Error("failed to generate content", "event", name, "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		t.logger.Debug("no choices returned from model", "event", name)
		return nil, ErrMalformedResponse
	}

	responseText := firstJSONObject(cleanResponse(response.Choices[0].Content))
	if responseText == "" {
		t.logger.Warn("no JSON object in tagger response", "event", name)
		return nil, ErrMalformedResponse
	}
	responseText = repairJSON(responseText)

	var tags ai.TagSet
	if err := json.Unmarshal([]byte(responseText), &tags); err != nil {
		t.logger.Warn("error parsing tagger response", "event", name, "response", responseText, "err", err)
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	tags.UsageTags = t.filterUsageTags(tags.UsageTags)

	t.logger.Debug("tagged event",
		"event", name,
		"usage", len(tags.UsageTags),
		"industry", len(tags.IndustryTags))

	return &tags, nil
}

func (t *EventTagger) filterUsageTags(tags []string) []string {
	valid := make(map[string]bool, len(t.catalogue.UsageTags))
	for _, def := range t.catalogue.UsageTags {
		valid[def.ID] = true
	}
	filtered := make([]string, 0, len(tags))
	for _, tag := range tags {
		if valid[tag] {
			filtered = append(filtered, tag)
		}
	}
	return filtered
}
