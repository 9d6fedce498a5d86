package ai

import "context"

// IntentService turns a free-text query into structured intent fields.
// Implementations must be thread-safe for concurrent use.
type IntentService interface {
	// ExtractIntent analyzes the query against the provided tag catalogue
	// and returns the structured intent the service inferred.
	// The result carries raw phrases; canonicalization against the
	// taxonomy is the caller's responsibility.
	// Returns an error if the service is unreachable, times out, or
	// produces output that cannot be parsed.
	ExtractIntent(ctx context.Context, query string, catalogue TagCatalogue) (*IntentResult, error)
}

// RankingService selects and justifies the top candidates from a
// pre-scored window. Implementations must be thread-safe for concurrent use.
type RankingService interface {
	// RankCandidates asks the reasoning service to pick req.TopK candidates
	// from req.Candidates and justify each pick. Selections reference
	// candidates by their Index field.
	// Returns an error if the service is unreachable, times out, or
	// produces output that cannot be parsed.
	RankCandidates(ctx context.Context, req *RankRequest) (*RankOutcome, error)
}

// EventTagger categorizes a raw event into usage, industry, and
// descriptive tags. Used by the ingestion pipeline to enrich events that
// arrive untagged. Implementations must be thread-safe for concurrent use.
type EventTagger interface {
	// TagEvent analyzes an event's name, host, and description and
	// returns the full tag set for it.
	TagEvent(ctx context.Context, name, hostedBy, description string) (*TagSet, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages the intent,
// ranking, and tagging services, ensuring they share configuration.
type Provider interface {
	// IntentService returns the intent extraction service.
	IntentService() IntentService

	// RankingService returns the candidate ranking service.
	RankingService() RankingService

	// EventTagger returns the event tagging service.
	EventTagger() EventTagger

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
