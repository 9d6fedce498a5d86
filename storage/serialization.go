// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/poiesic/eventmatch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalEvent serializes an Event to bytes.
func MarshalEvent(event *core.Event) []byte {
	buf := make([]byte, core.EventMUS.Size(*event))
	core.EventMUS.Marshal(*event, buf)
	return buf
}

// UnmarshalEvent deserializes an Event from bytes.
func UnmarshalEvent(data []byte) (*core.Event, error) {
	event, _, err := core.EventMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// MarshalAuditRecord serializes an AuditRecord to bytes.
func MarshalAuditRecord(record *core.AuditRecord) []byte {
	buf := make([]byte, core.AuditRecordMUS.Size(*record))
	core.AuditRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalAuditRecord deserializes an AuditRecord from bytes.
func UnmarshalAuditRecord(data []byte) (*core.AuditRecord, error) {
	record, _, err := core.AuditRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
