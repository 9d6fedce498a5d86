package recommend

import "errors"

var (
	// ErrEventRepositoryRequired indicates a recommender was created
	// without an event repository.
	ErrEventRepositoryRequired = errors.New("event repository is required")
)
