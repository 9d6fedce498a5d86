package ai

// TagDescription is one catalogue entry sent to the intent service as
// instructions: the canonical tag identifier plus its human description.
type TagDescription struct {
	ID          string
	Description string
}

// TagCatalogue is the full tag vocabulary handed to the intent service so
// it can map free text onto canonical identifiers.
type TagCatalogue struct {
	UsageTags    []TagDescription
	IndustryTags []TagDescription
}

// IntentResult is the raw structured output of the text-understanding
// service. Phrases are free text; the intent extractor resolves them
// through the taxonomy's synonym table.
type IntentResult struct {
	WomenFocused      bool     `json:"women_focused"`
	GoalPhrases       []string `json:"goal_phrases"`
	IndustryPhrases   []string `json:"industry_phrases"`
	Location          string   `json:"location"`
	TimeOfDay         string   `json:"time_of_day"` // "morning", "evening", or ""
	Budget            string   `json:"budget"`      // "free", "paid", or ""
	PrimaryCriteria   []string `json:"primary_criteria"`
	SecondaryCriteria []string `json:"secondary_criteria"`
	Rationale         string   `json:"rationale"`
}

// CandidateSummary is the condensed view of one scored event sent to the
// reasoning service. Index refers to the candidate's position in the
// pre-sorted window.
type CandidateSummary struct {
	Index        int
	Name         string
	DateTime     string
	Location     string
	Price        string
	Excerpt      string
	UsageTags    []string
	IndustryTags []string
	Score        int
}

// RankRequest carries the query, the extracted intent summary, and the
// candidate window to the reasoning service.
type RankRequest struct {
	Query        string
	Goals        []string
	Industries   []string
	TimeOfDay    string
	WomenFocused bool
	TopK         int
	Candidates   []CandidateSummary
}

// RankedSelection is one selected candidate with its justification.
type RankedSelection struct {
	Index         int    `json:"index"`
	Justification string `json:"justification"`
}

// RankOutcome is the reasoning service's full response.
type RankOutcome struct {
	Selections []RankedSelection `json:"selections"`
	Rationale  string            `json:"rationale"`
}

// TagSet is the tagger output for one event.
type TagSet struct {
	EventTags    []string `json:"event_tags"`
	UsageTags    []string `json:"usage_tags"`
	IndustryTags []string `json:"industry_tags"`
	EventType    string   `json:"event_type"`
	WomenFocused bool     `json:"women_specific"`
	InviteOnly   bool     `json:"invite_only"`
}
