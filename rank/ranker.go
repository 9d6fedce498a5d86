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


package rank

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/core"
)

const (
	// WindowSize caps how many scored candidates are sent to the
	// reasoning service.
	WindowSize = 50

	// FallbackJustification is assigned when ranking degrades to
	// score order.
	FallbackJustification = "selected based on relevance to your query"

	fallbackRationale = "ranked by relevance score"

	excerptLen = 200
)

// Display categories derived from the score breakdown.
const (
	CategoryStrongMatch   = "strong-match"
	CategoryGoalMatch     = "goal-match"
	CategoryIndustryMatch = "industry-match"
	CategoryGeneral       = "general"
)

// Ranker produces the final ordered, justified top-K from a pre-scored
// pool. It delegates selection and justification to a reasoning service
// and degrades to plain score order when the service is unavailable or
// its output cannot be used.
type Ranker struct {
	service ai.RankingService // may be nil, ranking is then score-order only
	logger  *slog.Logger
}

// NewRanker creates a ranker. The service may be nil, in which case
// every call takes the deterministic fallback path.
func NewRanker(service ai.RankingService) *Ranker {
	return &Ranker{
		service: service,
		logger:  slog.Default().With("component", "ranker"),
	}
}

// Rank selects and justifies the top topK results from the scored pool.
// The pool must already be sorted descending by score; score order is
// the ultimate tie-break and the complete fallback order. Rank never
// fails: any service problem degrades to the fallback.
func (r *Ranker) Rank(ctx context.Context, scored []*core.ScoredEvent, intent *core.UserIntent, query string, topK int) ([]*core.RankedResult, string) {
	if topK <= 0 || len(scored) == 0 {
		return nil, ""
	}

	window := scored
	if len(window) > WindowSize {
		window = window[:WindowSize]
	}
	if topK > len(window) {
		topK = len(window)
	}

	if r.service == nil {
		return r.fallback(window, topK), fallbackRationale
	}

	outcome, err := r.service.RankCandidates(ctx, buildRequest(window, intent, query, topK))
	if err != nil {
		r.logger.Warn("ranking service failed, falling back to score order", "err", err)
		return r.fallback(window, topK), fallbackRationale
	}

	results := r.fromOutcome(window, outcome, topK)
	if len(results) == 0 {
		r.logger.Warn("ranking service returned no usable selections, falling back to score order")
		return r.fallback(window, topK), fallbackRationale
	}
	return results, outcome.Rationale
}

// fromOutcome materializes the service's selections, dropping
// out-of-range and duplicate indices.
func (r *Ranker) fromOutcome(window []*core.ScoredEvent, outcome *ai.RankOutcome, topK int) []*core.RankedResult {
	seen := make(map[int]bool, len(outcome.Selections))
	var results []*core.RankedResult
	for _, sel := range outcome.Selections {
		if sel.Index < 0 || sel.Index >= len(window) || seen[sel.Index] {
			r.logger.Debug("dropping invalid selection", "index", sel.Index)
			continue
		}
		seen[sel.Index] = true

		candidate := window[sel.Index]
		justification := strings.TrimSpace(sel.Justification)
		if justification == "" {
			justification = FallbackJustification
		}
		results = append(results, rankedResult(candidate, justification))
		if len(results) == topK {
			break
		}
	}
	return results
}

func (r *Ranker) fallback(window []*core.ScoredEvent, topK int) []*core.RankedResult {
	results := make([]*core.RankedResult, 0, topK)
	for _, candidate := range window[:topK] {
		results = append(results, rankedResult(candidate, FallbackJustification))
	}
	return results
}

func rankedResult(candidate *core.ScoredEvent, justification string) *core.RankedResult {
	return &core.RankedResult{
		Event:         candidate.Event,
		Justification: justification,
		Category:      categoryOf(candidate.Breakdown),
		Score:         candidate.Score,
	}
}

// categoryOf derives the display category from the score breakdown.
func categoryOf(breakdown []core.ScoreContribution) string {
	goal, industry := false, false
	for _, c := range breakdown {
		switch {
		case c.Label == "combination":
			return CategoryStrongMatch
		case strings.HasPrefix(c.Label, "goal:"):
			goal = true
		case strings.HasPrefix(c.Label, "industry:"):
			industry = true
		}
	}
	switch {
	case goal:
		return CategoryGoalMatch
	case industry:
		return CategoryIndustryMatch
	default:
		return CategoryGeneral
	}
}

func buildRequest(window []*core.ScoredEvent, intent *core.UserIntent, query string, topK int) *ai.RankRequest {
	candidates := make([]ai.CandidateSummary, 0, len(window))
	for i, candidate := range window {
		event := candidate.Event
		candidates = append(candidates, ai.CandidateSummary{
			Index:        i,
			Name:         event.Name,
			DateTime:     event.DateTime,
			Location:     event.Location,
			Price:        event.Price,
			Excerpt:      excerpt(event.Description, excerptLen),
			UsageTags:    event.UsageTags,
			IndustryTags: event.IndustryTags,
			Score:        candidate.Score,
		})
	}
	return &ai.RankRequest{
		Query:        query,
		Goals:        intent.Goals,
		Industries:   intent.Industries,
		TimeOfDay:    timeOfDayString(intent.TimePreference),
		WomenFocused: intent.WomenFocused,
		TopK:         topK,
		Candidates:   candidates,
	}
}

func timeOfDayString(pref core.TimePreference) string {
	switch pref {
	case core.TimeMorning:
		return "morning"
	case core.TimeEvening:
		return "evening"
	default:
		return ""
	}
}

// excerpt truncates text at a word boundary near max.
func excerpt(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := strings.LastIndex(text[:max], " ")
	if cut <= 0 {
		cut = max
	}
	return text[:cut] + "..."
}
