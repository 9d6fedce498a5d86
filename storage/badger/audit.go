package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/storage"
)

// AuditRepository implements storage.AuditRepository for BadgerDB.
type AuditRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.AuditRepository = (*AuditRepository)(nil)

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(backend *Backend) (*AuditRepository, error) {
	idSeq, err := backend.GetSequence(auditIDSeq)
	if err != nil {
		return nil, err
	}

	return &AuditRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *AuditRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *AuditRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AppendQueryRecord appends one audit record.
func (r *AuditRepository) AppendQueryRecord(ctx context.Context, record *core.AuditRecord) (*core.AuditRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if record.Id == 0 {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			record.Id = core.ID(nextID)
		}
		if record.Timestamp.IsZero() {
			record.Timestamp = time.Now().UTC().Truncate(time.Microsecond)
		}

		if err := tx.Set(makeAuditKey(record.Id), storage.MarshalAuditRecord(record)); err != nil {
			return err
		}
		if err := tx.Set(makeAuditDateKey(record.Timestamp, record.Id), storage.MarshalID(record.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return record, err
}

// GetRecentQueryRecords retrieves up to limit audit records, most recent first.
func (r *AuditRepository) GetRecentQueryRecords(ctx context.Context, limit int) ([]*core.AuditRecord, error) {
	var results []*core.AuditRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		startKey := makePartialAuditDateKey(farFuture)
		prefix := []byte(auditDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid() && len(results) < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := r.readAuditRecord(tx, makeAuditKey(recordID))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// readAuditRecord reads an audit record from the transaction.
func (r *AuditRepository) readAuditRecord(tx *badger.Txn, key []byte) (*core.AuditRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.AuditRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalAuditRecord(val)
		return unmarshalErr
	})
	return record, err
}
