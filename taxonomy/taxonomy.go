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


package taxonomy

import (
	"sort"
	"strings"
)

// Kind distinguishes the two tag vocabularies.
type Kind int

const (
	// KindUsage tags describe what a user can do at an event.
	KindUsage Kind = iota + 1
	// KindIndustry tags describe an event's domain focus.
	KindIndustry
)

// Default weights for tags that are referenced but not defined.
// Unknown tags never fail a lookup; they score low instead.
const (
	DefaultUsageWeight    = 50
	DefaultIndustryWeight = 10

	// CategoryUnknown is returned by CategoryOf for undefined tags.
	CategoryUnknown = "unknown"
)

// Definition describes a single tag: its canonical identifier, a category
// within its vocabulary, a point weight used by the scorer, and the keyword
// synonyms used for phrase matching.
type Definition struct {
	ID          string   `yaml:"id"`
	Category    string   `yaml:"category"`
	Weight      int      `yaml:"weight"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// Taxonomy is the static registry of usage and industry tags, the
// complementary-tag graph, and the phrase tables used for intent
// extraction and lenient filtering.
//
// A Taxonomy is built once at process start and never mutated, so it is
// safe for unsynchronized concurrent reads.
type Taxonomy struct {
	usage    map[string]Definition
	industry map[string]Definition
	related  map[string][]string
	synonyms map[string]string // normalized goal phrase -> usage tag ID

	demographicPhrases []string
	morningPhrases     []string
	eveningPhrases     []string
	freePhrases        []string
	locationMarkers    []string

	usageIDs    []string // sorted, for deterministic iteration
	industryIDs []string
}

// New builds a Taxonomy from definition lists. Later definitions with the
// same ID override earlier ones, which is how file overrides merge with
// the built-in defaults.
func New(usage, industry []Definition, related map[string][]string, synonyms map[string]string) *Taxonomy {
	t := &Taxonomy{
		usage:    make(map[string]Definition, len(usage)),
		industry: make(map[string]Definition, len(industry)),
		related:  make(map[string][]string, len(related)),
		synonyms: make(map[string]string, len(synonyms)),

		demographicPhrases: defaultDemographicPhrases,
		morningPhrases:     defaultMorningPhrases,
		eveningPhrases:     defaultEveningPhrases,
		freePhrases:        defaultFreePhrases,
		locationMarkers:    defaultLocationMarkers,
	}
	for _, def := range usage {
		t.usage[def.ID] = def
	}
	for _, def := range industry {
		t.industry[def.ID] = def
	}
	for id, rel := range related {
		t.related[id] = append([]string(nil), rel...)
	}
	for phrase, tag := range synonyms {
		t.synonyms[normalizePhrase(phrase)] = tag
	}

	t.usageIDs = sortedKeys(t.usage)
	t.industryIDs = sortedKeys(t.industry)
	return t
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return New(defaultUsageTags, defaultIndustryTags, defaultRelatedTags, defaultGoalSynonyms)
}

// WeightOf returns the point weight for a tag. Unknown tags get the
// documented default for their kind; the lookup never fails.
func (t *Taxonomy) WeightOf(tagID string, kind Kind) int {
	if def, ok := t.lookup(tagID, kind); ok {
		return def.Weight
	}
	if kind == KindIndustry {
		return DefaultIndustryWeight
	}
	return DefaultUsageWeight
}

// CategoryOf returns the category of a tag, or "unknown" if absent.
func (t *Taxonomy) CategoryOf(tagID string, kind Kind) string {
	if def, ok := t.lookup(tagID, kind); ok {
		return def.Category
	}
	return CategoryUnknown
}

// RelatedTags returns the complementary tags for a tag ID.
// The relationship is suggestion-only, never correctness-critical.
func (t *Taxonomy) RelatedTags(tagID string) []string {
	rel := t.related[tagID]
	if len(rel) == 0 {
		return nil
	}
	return append([]string(nil), rel...)
}

// AllTags returns all defined tag IDs of a kind in sorted order.
func (t *Taxonomy) AllTags(kind Kind) []string {
	if kind == KindIndustry {
		return append([]string(nil), t.industryIDs...)
	}
	return append([]string(nil), t.usageIDs...)
}

// Definition returns the full definition of a tag, if defined.
func (t *Taxonomy) Definition(tagID string, kind Kind) (Definition, bool) {
	return t.lookup(tagID, kind)
}

// ResolveGoalPhrase maps a free-text goal phrase to a canonical usage-tag
// identifier through the synonym table. It reports whether the phrase
// resolved; unresolved phrases are returned unchanged so callers can
// decide whether to pass them through or drop them.
func (t *Taxonomy) ResolveGoalPhrase(phrase string) (string, bool) {
	norm := normalizePhrase(phrase)
	if tag, ok := t.synonyms[norm]; ok {
		return tag, true
	}
	// A phrase that already is a canonical tag ID resolves to itself.
	if _, ok := t.usage[norm]; ok {
		return norm, true
	}
	return phrase, false
}

func (t *Taxonomy) lookup(tagID string, kind Kind) (Definition, bool) {
	switch kind {
	case KindIndustry:
		def, ok := t.industry[tagID]
		return def, ok
	default:
		def, ok := t.usage[tagID]
		return def, ok
	}
}

// normalizePhrase lowercases a phrase and collapses whitespace so the
// synonym table tolerates casing and spacing variations.
func normalizePhrase(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

func sortedKeys(m map[string]Definition) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
