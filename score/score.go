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


package score

import (
	"sort"
	"strings"

	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/taxonomy"
)

// Bonus constants. Tag weights come from the taxonomy; everything else
// scores through this fixed table.
const (
	// CombinationBonus rewards events matching both a goal and an
	// industry. It is the dominant tie-break.
	CombinationBonus = 150

	// MultiGoalBonus is added per matching goal beyond the first.
	MultiGoalBonus = 25

	// TimeBonus is added when the event's time signal matches the
	// intent's time preference.
	TimeBonus = 40

	// DemographicBonus is added when both the intent preference and the
	// event flag are set. Additive on top of the demographic filter,
	// which may have been skipped.
	DemographicBonus = 50

	// DescriptionQualityBonus and LinkQualityBonus are small
	// tie-breakers for well-described, linkable events.
	DescriptionQualityBonus = 10
	LinkQualityBonus        = 5

	// minQualityDescriptionLen is the description length that earns the
	// quality bonus.
	minQualityDescriptionLen = 100
)

// Scorer computes relevance scores from the tag taxonomy. It is
// stateless beyond the read-only taxonomy and safe for concurrent use.
type Scorer struct {
	taxonomy *taxonomy.Taxonomy
}

// NewScorer creates a scorer over the given taxonomy.
func NewScorer(tax *taxonomy.Taxonomy) *Scorer {
	return &Scorer{taxonomy: tax}
}

// Score computes an event's relevance to the intent. Pure and
// deterministic: no I/O, same inputs give the same total and breakdown.
// The breakdown is in rule-application order, for explainability.
func (s *Scorer) Score(event *core.Event, intent *core.UserIntent) (int, []core.ScoreContribution) {
	total := 0
	var breakdown []core.ScoreContribution
	add := func(label string, points int) {
		total += points
		breakdown = append(breakdown, core.ScoreContribution{Label: label, Points: points})
	}

	goalMatches := 0
	for _, goal := range intent.Goals {
		if containsFold(event.UsageTags, goal) {
			add("goal:"+goal, s.taxonomy.WeightOf(goal, taxonomy.KindUsage))
			goalMatches++
		}
	}

	industryMatches := 0
	eventIndustryText := append(append([]string(nil), event.IndustryTags...), event.EventTags...)
	for _, industry := range intent.Industries {
		if fuzzyMatchAny(eventIndustryText, industry) {
			add("industry:"+industry, s.taxonomy.WeightOf(industry, taxonomy.KindIndustry))
			industryMatches++
		}
	}

	if goalMatches > 0 && industryMatches > 0 {
		add("combination", CombinationBonus)
	}
	if goalMatches > 1 {
		add("multi-goal", (goalMatches-1)*MultiGoalBonus)
	}

	if intent.TimePreference != core.TimeNone {
		derived := s.taxonomy.TimeOfText(event.DateTime + " " + event.Name + " " + event.Description)
		if derived == intent.TimePreference {
			add("time", TimeBonus)
		}
	}

	if intent.WomenFocused && event.WomenFocused {
		add("demographic", DemographicBonus)
	}

	if len(event.Description) >= minQualityDescriptionLen {
		add("description", DescriptionQualityBonus)
	}
	if event.URL != "" {
		add("link", LinkQualityBonus)
	}

	return total, breakdown
}

// ScoreAll scores every event in the pool and returns the results
// sorted descending by score. The sort is stable, so ties keep the
// pool's original order.
func (s *Scorer) ScoreAll(pool []*core.Event, intent *core.UserIntent) []*core.ScoredEvent {
	scored := make([]*core.ScoredEvent, 0, len(pool))
	for _, event := range pool {
		total, breakdown := s.Score(event, intent)
		scored = append(scored, &core.ScoredEvent{
			Event:     event,
			Score:     total,
			Breakdown: breakdown,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// containsFold reports case-insensitive exact membership.
func containsFold(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}

// fuzzyMatchAny reports whether want is a case-insensitive substring of
// any tag, or any tag a substring of want. Event tags are free-form, so
// "fintech" should match "fintech-startups" and vice versa.
func fuzzyMatchAny(tags []string, want string) bool {
	w := strings.ToLower(want)
	for _, tag := range tags {
		t := strings.ToLower(tag)
		if t == "" {
			continue
		}
		if strings.Contains(t, w) || strings.Contains(w, t) {
			return true
		}
	}
	return false
}
