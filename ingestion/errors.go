package ingestion

import "errors"

var (
	// ErrEventRepositoryRequired is returned when a pipeline is created
	// without an event repository.
	ErrEventRepositoryRequired = errors.New("event repository is required")

	// ErrMissingHeader is returned when a CSV input has no header row.
	ErrMissingHeader = errors.New("csv input has no header row")

	// ErrMissingNameColumn is returned when a CSV header lacks the
	// event_name column.
	ErrMissingNameColumn = errors.New("csv header is missing the event_name column")
)
