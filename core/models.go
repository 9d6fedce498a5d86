package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that re-ingested
// events resolve to the same identity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// TimePreference expresses a preferred time of day for events.
type TimePreference int

const (
	// TimeNone means no time-of-day preference.
	TimeNone TimePreference = iota
	// TimeMorning prefers morning events (breakfasts, coffee walks, run clubs).
	TimeMorning
	// TimeEvening prefers evening events (dinners, mixers, happy hours).
	TimeEvening
)

// BudgetPreference expresses a preferred price range for events.
type BudgetPreference int

const (
	// BudgetNone means no budget preference.
	BudgetNone BudgetPreference = iota
	// BudgetFree prefers free events.
	BudgetFree
	// BudgetPaid accepts paid events.
	BudgetPaid
)

// Event represents a catalogued event candidate.
// Events are immutable within a request; the engine only reads them.
type Event struct {
	Id           ID
	Name         string
	Description  string
	Location     string
	HostedBy     string
	Price        string // Free-form text, may encode "free"
	DateTime     string // Free-form date/time text as scraped
	URL          string
	UsageTags    []string // What the event can be used for (find-angels, networking, ...)
	IndustryTags []string // Domain focus (ai, fintech, healthtech, ...)
	EventTags    []string // Free-form descriptive tags
	WomenFocused bool     // Demographic flag
	InviteOnly   bool     // Access-restriction flag
	InsertedAt   time.Time
	UpdatedAt    time.Time
}

// NormalizeTags replaces nil tag slices with empty ones.
// Tag lists may be empty but are never nil.
func (e *Event) NormalizeTags() {
	if e.UsageTags == nil {
		e.UsageTags = []string{}
	}
	if e.IndustryTags == nil {
		e.IndustryTags = []string{}
	}
	if e.EventTags == nil {
		e.EventTags = []string{}
	}
}

// RelevanceHints bias downstream ranking toward the criteria the
// intent extraction considered most important.
type RelevanceHints struct {
	PrimaryCriteria   []string
	SecondaryCriteria []string
	Rationale         string
}

// UserIntent is the structured interpretation of a free-text query.
// It is derived per request and never persisted.
type UserIntent struct {
	WomenFocused   bool     // Demographic preference
	Goals          []string // Canonical usage-tag identifiers
	Industries     []string // Industry-tag identifiers
	Location       string   // Optional location hint
	TimePreference TimePreference
	Budget         BudgetPreference
	Hints          RelevanceHints
}

// HasGoals reports whether any goal tags were extracted.
func (i *UserIntent) HasGoals() bool {
	return len(i.Goals) > 0
}

// HasIndustries reports whether any industry tags were extracted.
func (i *UserIntent) HasIndustries() bool {
	return len(i.Industries) > 0
}

// ScoreContribution is a single labeled component of an event's relevance score.
// The breakdown exists for explainability; its order is insertion order.
type ScoreContribution struct {
	Label  string
	Points int
}

// ScoredEvent pairs an event with its relevance score and breakdown.
type ScoredEvent struct {
	Event     *Event
	Score     int
	Breakdown []ScoreContribution
}

// RankedResult is a final output item: the event plus a human-readable
// justification and a derived display category.
type RankedResult struct {
	Event         *Event
	Justification string
	Category      string
	Score         int
}

// Recommendation is the response returned to the caller.
type Recommendation struct {
	Results   []*RankedResult
	Count     int
	Rationale string
	Message   string // Set when Count is zero ("no matches"), distinct from an error
}

// AuditRecord captures a processed query for diagnosability.
// Audit writes are best-effort; a lost record is acceptable.
type AuditRecord struct {
	Id          ID
	Query       string
	Goals       []string
	Industries  []string
	ResultCount int
	Timestamp   time.Time
}
