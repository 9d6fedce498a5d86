package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/storage"
)

// eventIDContentSeparator joins the identity fields hashed into a
// content-based event ID.
const eventIDContentSeparator = "|"

// farFuture is the seek origin for reverse recency scans.
var farFuture = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)

// EventRepository implements storage.EventRepository for BadgerDB.
type EventRepository struct {
	backend *Backend
}

var _ storage.EventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository.
func NewEventRepository(backend *Backend) (*EventRepository, error) {
	return &EventRepository{backend: backend}, nil
}

// Close releases repository resources.
// Event IDs are content-based, so there is no sequence to release.
func (r *EventRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *EventRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEvents upserts one or more events. Re-ingesting an event with the
// same name and date/time resolves to the same content-based ID and
// updates it in place.
func (r *EventRepository) AddEvents(ctx context.Context, events ...*core.Event) ([]*core.Event, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Truncate to the serialized timestamp precision so returned
		// events compare equal to their stored form.
		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, event := range events {
			if err := core.ValidateEvent(event); err != nil {
				return err
			}
			if event.Id == 0 {
				event.Id = core.IDFromContent(event.Name + eventIDContentSeparator + event.DateTime)
			}
			event.NormalizeTags()

			key := makeEventKey(event.Id)
			old, err := r.readEvent(tx, key)
			if err != nil {
				return err
			}

			if old != nil {
				event.InsertedAt = old.InsertedAt
				// Drop the old index entries before re-indexing.
				if err := tx.Delete(makeEventDateKey(old.UpdatedAt, old.Id)); err != nil {
					return err
				}
				if old.WomenFocused {
					if err := tx.Delete(makeEventDemoKey(old.UpdatedAt, old.Id)); err != nil {
						return err
					}
				}
			} else {
				event.InsertedAt = now
			}
			event.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalEvent(event)); err != nil {
				return err
			}
			if err := tx.Set(makeEventDateKey(event.UpdatedAt, event.Id), storage.MarshalID(event.Id)); err != nil {
				return err
			}
			if event.WomenFocused {
				if err := tx.Set(makeEventDemoKey(event.UpdatedAt, event.Id), storage.MarshalID(event.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return events, err
}

// GetEvent retrieves a single event by ID.
func (r *EventRepository) GetEvent(ctx context.Context, id core.ID) (*core.Event, error) {
	var result *core.Event
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readEvent(tx, makeEventKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetEvents retrieves multiple events by their IDs.
func (r *EventRepository) GetEvents(ctx context.Context, ids ...core.ID) ([]*core.Event, error) {
	var result []*core.Event
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			event, err := r.readEvent(tx, makeEventKey(id))
			if err != nil {
				return err
			}
			if event != nil {
				result = append(result, event)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetRecentEvents retrieves up to limit events, most recently updated first.
func (r *EventRepository) GetRecentEvents(ctx context.Context, limit int) ([]*core.Event, error) {
	return r.scanRecent(eventDatePrefix, makePartialEventDateKey(farFuture), limit, nil)
}

// GetRecentEventsByDemographic retrieves recent events pre-filtered by
// the demographic flag. Flagged events come from the demographic index;
// unflagged ones are filtered out of the recency scan.
func (r *EventRepository) GetRecentEventsByDemographic(ctx context.Context, womenFocused bool, limit int) ([]*core.Event, error) {
	if womenFocused {
		return r.scanRecent(eventDemoPrefix, makePartialEventDemoKey(farFuture), limit, nil)
	}
	return r.scanRecent(eventDatePrefix, makePartialEventDateKey(farFuture), limit, func(e *core.Event) bool {
		return !e.WomenFocused
	})
}

// DeleteEvents removes events by their IDs.
func (r *EventRepository) DeleteEvents(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeEventKey(id)
			event, err := r.readEvent(tx, key)
			if err != nil {
				return err
			}
			if event == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeEventDateKey(event.UpdatedAt, event.Id)); err != nil {
				return err
			}
			if event.WomenFocused {
				if err := tx.Delete(makeEventDemoKey(event.UpdatedAt, event.Id)); err != nil {
					return err
				}
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// scanRecent walks a date index in reverse, loading events until limit
// is reached. The keep predicate may be nil.
func (r *EventRepository) scanRecent(indexPrefix string, startKey []byte, limit int, keep func(*core.Event) bool) ([]*core.Event, error) {
	var results []*core.Event
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(indexPrefix + ":")
		for iter.Seek(startKey); iter.Valid() && len(results) < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var eventID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				eventID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			event, err := r.readEvent(tx, makeEventKey(eventID))
			if err != nil {
				return err
			}
			if event == nil {
				continue
			}
			if keep == nil || keep(event) {
				results = append(results, event)
			}
		}
		return nil
	}, false)

	return results, err
}

// readEvent reads an event from the transaction.
func (r *EventRepository) readEvent(tx *badger.Txn, key []byte) (*core.Event, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var event *core.Event
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		event, unmarshalErr = storage.UnmarshalEvent(val)
		return unmarshalErr
	})
	return event, err
}
