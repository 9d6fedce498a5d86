package storage

import (
	"context"

	"github.com/poiesic/eventmatch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// EventRepository provides operations for the event catalog.
type EventRepository interface {
	Repository
	// AddEvents upserts one or more events.
	// Events with ID=0 get a content-based ID derived from name and
	// date/time, so re-ingesting the same event updates it in place.
	// Sets InsertedAt on first write and UpdatedAt on every write.
	// Returns the events with IDs and timestamps populated.
	AddEvents(ctx context.Context, events ...*core.Event) ([]*core.Event, error)

	// GetEvent retrieves a single event by ID.
	// Returns ErrNotFound if the event doesn't exist.
	GetEvent(ctx context.Context, id core.ID) (*core.Event, error)

	// GetEvents retrieves multiple events by their IDs.
	// Returns only the events that exist (no error for missing events).
	GetEvents(ctx context.Context, ids ...core.ID) ([]*core.Event, error)

	// GetRecentEvents retrieves up to limit events ordered by most
	// recently updated first.
	GetRecentEvents(ctx context.Context, limit int) ([]*core.Event, error)

	// GetRecentEventsByDemographic retrieves recent events pre-filtered
	// by the demographic flag. With womenFocused true only flagged
	// events are returned; with false only unflagged ones.
	GetRecentEventsByDemographic(ctx context.Context, womenFocused bool, limit int) ([]*core.Event, error)

	// DeleteEvents removes events by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any event doesn't exist.
	DeleteEvents(ctx context.Context, ids ...core.ID) error
}

// AuditRepository provides append-and-read access to the query audit trail.
type AuditRepository interface {
	Repository
	// AppendQueryRecord appends one audit record.
	// For records with ID=0, generates new IDs from sequence.
	// Sets Timestamp if not already set.
	// Returns the record with ID and timestamp populated.
	AppendQueryRecord(ctx context.Context, record *core.AuditRecord) (*core.AuditRecord, error)

	// GetRecentQueryRecords retrieves up to limit audit records, most
	// recent first.
	GetRecentQueryRecords(ctx context.Context, limit int) ([]*core.AuditRecord, error)
}
