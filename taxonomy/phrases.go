package taxonomy

import (
	"strings"

	"github.com/poiesic/eventmatch/core"
)

// tokenize splits text into lowercase words with surrounding punctuation
// trimmed. Stop words are kept so multi-word phrases match intact.
func tokenize(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		cleaned := strings.Trim(word, ".,!?;:'\"-()[]{}")
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

// containsPhrase reports whether the phrase occurs in the token stream as a
// contiguous word sequence. Token-level matching avoids substring false
// positives for short keywords like "ai".
func containsPhrase(tokens []string, phrase string) bool {
	want := tokenize(phrase)
	if len(want) == 0 || len(want) > len(tokens) {
		return false
	}
	for i := 0; i+len(want) <= len(tokens); i++ {
		matched := true
		for j, w := range want {
			if tokens[i+j] != w {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// matchAnyPhrase reports whether any of the phrases occurs in the text.
func matchAnyPhrase(tokens []string, phrases []string) bool {
	for _, phrase := range phrases {
		if containsPhrase(tokens, phrase) {
			return true
		}
	}
	return false
}

// MatchGoals returns the usage tags whose keyword sets match the text.
// Iteration is over sorted tag IDs so output order is deterministic.
func (t *Taxonomy) MatchGoals(text string) []string {
	return t.matchTags(text, t.usageIDs, t.usage)
}

// MatchIndustries returns the industry tags whose keyword sets match the text.
func (t *Taxonomy) MatchIndustries(text string) []string {
	return t.matchTags(text, t.industryIDs, t.industry)
}

func (t *Taxonomy) matchTags(text string, ids []string, defs map[string]Definition) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	var matched []string
	for _, id := range ids {
		if matchAnyPhrase(tokens, defs[id].Keywords) {
			matched = append(matched, id)
		}
	}
	return matched
}

// MatchesTag reports whether the text matches a single tag's keyword set.
// This is the lenient-filter primitive: it lets a filter stage match
// events through free text when structured tags are missing.
func (t *Taxonomy) MatchesTag(text, tagID string, kind Kind) bool {
	def, ok := t.lookup(tagID, kind)
	if !ok {
		return false
	}
	return matchAnyPhrase(tokenize(text), def.Keywords)
}

// MatchesDemographic reports whether the text signals a women-focused
// preference or event.
func (t *Taxonomy) MatchesDemographic(text string) bool {
	return matchAnyPhrase(tokenize(text), t.demographicPhrases)
}

// TimeOfText derives a time-of-day signal from free text. Text matching
// both the morning and evening indicator sets is ambiguous and yields
// TimeNone, the conservative tie-break.
func (t *Taxonomy) TimeOfText(text string) core.TimePreference {
	tokens := tokenize(text)
	morning := matchAnyPhrase(tokens, t.morningPhrases)
	evening := matchAnyPhrase(tokens, t.eveningPhrases)
	switch {
	case morning && evening:
		return core.TimeNone
	case morning:
		return core.TimeMorning
	case evening:
		return core.TimeEvening
	default:
		return core.TimeNone
	}
}

// BudgetOfText derives a budget signal from free text, typically a
// price field.
func (t *Taxonomy) BudgetOfText(text string) core.BudgetPreference {
	if matchAnyPhrase(tokenize(text), t.freePhrases) {
		return core.BudgetFree
	}
	return core.BudgetNone
}

// LocationOfText returns the first known location marker found in the
// text, or an empty string.
func (t *Taxonomy) LocationOfText(text string) string {
	tokens := tokenize(text)
	for _, marker := range t.locationMarkers {
		if containsPhrase(tokens, marker) {
			return marker
		}
	}
	return ""
}
