// Package storage defines the repository interfaces and serialization
// helpers for the event catalog and the query audit trail.
//
// The engine treats the catalog as read-only; ingestion is the only
// writer. Audit writes are best-effort and a lost record is acceptable.
// Concrete implementations live in subpackages; storage/badger is the
// embedded default.
package storage
