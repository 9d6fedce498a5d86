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


package intent

import (
	"context"
	"log/slog"

	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/taxonomy"
)

// Extractor turns free-text queries into structured intent. It prefers
// the AI intent service when one is available and the caller asks for
// it, and falls back to keyword extraction whenever the service fails
// or returns output it cannot canonicalize. Extraction never fails for
// a valid query; only validation errors surface.
type Extractor struct {
	taxonomy  *taxonomy.Taxonomy
	service   ai.IntentService // may be nil, extraction is then keyword-only
	catalogue ai.TagCatalogue
	logger    *slog.Logger
}

// NewExtractor creates an intent extractor over the given taxonomy.
// The service may be nil, in which case every extraction uses the
// deterministic keyword strategy.
func NewExtractor(tax *taxonomy.Taxonomy, service ai.IntentService) *Extractor {
	return &Extractor{
		taxonomy:  tax,
		service:   service,
		catalogue: BuildCatalogue(tax),
		logger:    slog.Default().With("component", "intent-extractor"),
	}
}

// Extract derives structured intent from a free-text query.
//
// When useAI is set and an intent service is configured, the service's
// structured output is canonicalized against the taxonomy. Any service
// error or unparseable output discards the AI result wholesale and
// falls back to keyword extraction, so a degraded service can only
// reduce quality, never correctness.
func (e *Extractor) Extract(ctx context.Context, query string, useAI bool) (*core.UserIntent, error) {
	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}

	if useAI && e.service != nil {
		result, err := e.service.ExtractIntent(ctx, query, e.catalogue)
		if err != nil {
			e.logger.Warn("intent service failed, falling back to keyword extraction", "err", err)
		} else {
			return e.fromServiceResult(query, result), nil
		}
	}

	return e.fromKeywords(query), nil
}

// fromKeywords is the deterministic strategy: every field is derived
// from the taxonomy's phrase tables. Same query, same intent.
func (e *Extractor) fromKeywords(query string) *core.UserIntent {
	goals := e.taxonomy.MatchGoals(query)
	industries := e.taxonomy.MatchIndustries(query)

	intent := &core.UserIntent{
		WomenFocused:   e.taxonomy.MatchesDemographic(query),
		Goals:          goals,
		Industries:     industries,
		Location:       e.taxonomy.LocationOfText(query),
		TimePreference: e.taxonomy.TimeOfText(query),
		Budget:         e.taxonomy.BudgetOfText(query),
	}
	intent.Hints = core.RelevanceHints{
		PrimaryCriteria:   append([]string(nil), goals...),
		SecondaryCriteria: append([]string(nil), industries...),
		Rationale:         "keyword-derived intent",
	}
	return intent
}

// fromServiceResult canonicalizes the service's free-text phrases into
// taxonomy identifiers. Phrases that resolve through neither the synonym
// table nor keyword matching are dropped. Demographic and time signals
// found directly in the query are kept even when the service missed
// them; the deterministic matchers are cheap and high-precision.
func (e *Extractor) fromServiceResult(query string, result *ai.IntentResult) *core.UserIntent {
	goals := e.resolveGoals(result.GoalPhrases)
	if len(goals) == 0 {
		goals = e.taxonomy.MatchGoals(query)
	}

	industries := e.resolveIndustries(result.IndustryPhrases)
	if len(industries) == 0 {
		industries = e.taxonomy.MatchIndustries(query)
	}

	location := result.Location
	if location == "" {
		location = e.taxonomy.LocationOfText(query)
	}

	intent := &core.UserIntent{
		WomenFocused:   result.WomenFocused || e.taxonomy.MatchesDemographic(query),
		Goals:          goals,
		Industries:     industries,
		Location:       location,
		TimePreference: parseTime(result.TimeOfDay, e.taxonomy.TimeOfText(query)),
		Budget:         parseBudget(result.Budget, e.taxonomy.BudgetOfText(query)),
	}
	intent.Hints = core.RelevanceHints{
		PrimaryCriteria:   append([]string(nil), result.PrimaryCriteria...),
		SecondaryCriteria: append([]string(nil), result.SecondaryCriteria...),
		Rationale:         result.Rationale,
	}
	return intent
}

// resolveGoals maps free-text goal phrases onto canonical usage tags.
// Each phrase is tried against the synonym table first, then against
// keyword matching on the phrase text itself.
func (e *Extractor) resolveGoals(phrases []string) []string {
	seen := make(map[string]bool, len(phrases))
	var goals []string
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			goals = append(goals, tag)
		}
	}

	for _, phrase := range phrases {
		if tag, ok := e.taxonomy.ResolveGoalPhrase(phrase); ok {
			add(tag)
			continue
		}
		for _, tag := range e.taxonomy.MatchGoals(phrase) {
			add(tag)
		}
	}
	return goals
}

// resolveIndustries keeps phrases that are themselves canonical industry
// tags and keyword-matches the rest.
func (e *Extractor) resolveIndustries(phrases []string) []string {
	seen := make(map[string]bool, len(phrases))
	var industries []string
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			industries = append(industries, tag)
		}
	}

	for _, phrase := range phrases {
		if _, ok := e.taxonomy.Definition(phrase, taxonomy.KindIndustry); ok {
			add(phrase)
			continue
		}
		for _, tag := range e.taxonomy.MatchIndustries(phrase) {
			add(tag)
		}
	}
	return industries
}

// parseTime maps the service's time-of-day string onto the preference
// enum, falling back to the keyword-derived signal for anything else.
func parseTime(s string, fallback core.TimePreference) core.TimePreference {
	switch s {
	case "morning":
		return core.TimeMorning
	case "evening":
		return core.TimeEvening
	default:
		return fallback
	}
}

func parseBudget(s string, fallback core.BudgetPreference) core.BudgetPreference {
	switch s {
	case "free":
		return core.BudgetFree
	case "paid":
		return core.BudgetPaid
	default:
		return fallback
	}
}
