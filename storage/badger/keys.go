package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/eventmatch/core"
)

// Key prefixes for different data types
const (
	eventPrefix     = "evtrec"
	eventDatePrefix = "evtrecd"
	eventDemoPrefix = "evtrecw"
	auditPrefix     = "audrec"
	auditDatePrefix = "audrecd"
	auditIDSeq      = "audrecseq"
)

// makeEventKey generates a key for an event by ID.
func makeEventKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", eventPrefix, id))
}

// makeEventDateKey generates a composite key for the recency index.
// Format: prefix:timestamp:id
func makeEventDateKey(timestamp time.Time, id core.ID) []byte {
	return makeDateKey(eventDatePrefix, timestamp, id)
}

// makePartialEventDateKey generates a partial key for recency seeks.
func makePartialEventDateKey(timestamp time.Time) []byte {
	return makePartialDateKey(eventDatePrefix, timestamp)
}

// makeEventDemoKey generates a composite key for the demographic index.
// Only women-focused events appear in this index.
func makeEventDemoKey(timestamp time.Time, id core.ID) []byte {
	return makeDateKey(eventDemoPrefix, timestamp, id)
}

// makePartialEventDemoKey generates a partial key for demographic seeks.
func makePartialEventDemoKey(timestamp time.Time) []byte {
	return makePartialDateKey(eventDemoPrefix, timestamp)
}

// makeAuditKey generates a key for an audit record by ID.
func makeAuditKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", auditPrefix, id))
}

// makeAuditDateKey generates a composite key for the audit recency index.
func makeAuditDateKey(timestamp time.Time, id core.ID) []byte {
	return makeDateKey(auditDatePrefix, timestamp, id)
}

// makePartialAuditDateKey generates a partial key for audit recency seeks.
func makePartialAuditDateKey(timestamp time.Time) []byte {
	return makePartialDateKey(auditDatePrefix, timestamp)
}

// makeDateKey builds prefix:timestamp:id composite keys. Timestamp and
// ID are written BigEndian so lexicographic sort matches time order.
func makeDateKey(prefix string, timestamp time.Time, id core.ID) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDateKey builds prefix:timestamp keys for range seeks.
func makePartialDateKey(prefix string, timestamp time.Time) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
