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


package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the storage layer. Timestamps are encoded as
// Unix microseconds. Field order is part of the storage format and
// must not change without a migration.
var (
	IDMUS          = idMUS{}
	EventMUS       = eventMUS{}
	AuditRecordMUS = auditRecordMUS{}
)

var (
	_ mus.Serializer[ID]          = IDMUS
	_ mus.Serializer[Event]       = EventMUS
	_ mus.Serializer[AuditRecord] = AuditRecordMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// timeMUS encodes a time.Time as Unix microseconds.
type timeMUS struct{}

func (timeMUS) Marshal(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func (timeMUS) Unmarshal(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func (timeMUS) Size(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func (timeMUS) Skip(bs []byte) (int, error) {
	return varint.Int64.Skip(bs)
}

// stringSliceMUS encodes a []string as a varint length followed by
// each element. A nil slice round-trips as an empty one.
type stringSliceMUS struct{}

func (stringSliceMUS) Marshal(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func (stringSliceMUS) Unmarshal(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	v = make([]string, 0, length)
	for i := 0; i < length; i++ {
		var (
			s  string
			n1 int
		)
		s, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
		v = append(v, s)
	}
	return v, n, nil
}

func (stringSliceMUS) Size(v []string) (size int) {
	size = varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

func (stringSliceMUS) Skip(bs []byte) (n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return n, err
	}
	for i := 0; i < length; i++ {
		var n1 int
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

var (
	timeSer        = timeMUS{}
	stringSliceSer = stringSliceMUS{}
)

type eventMUS struct{}

func (eventMUS) Marshal(e Event, bs []byte) (n int) {
	n = IDMUS.Marshal(e.Id, bs)
	n += ord.String.Marshal(e.Name, bs[n:])
	n += ord.String.Marshal(e.Description, bs[n:])
	n += ord.String.Marshal(e.Location, bs[n:])
	n += ord.String.Marshal(e.HostedBy, bs[n:])
	n += ord.String.Marshal(e.Price, bs[n:])
	n += ord.String.Marshal(e.DateTime, bs[n:])
	n += ord.String.Marshal(e.URL, bs[n:])
	n += stringSliceSer.Marshal(e.UsageTags, bs[n:])
	n += stringSliceSer.Marshal(e.IndustryTags, bs[n:])
	n += stringSliceSer.Marshal(e.EventTags, bs[n:])
	n += ord.Bool.Marshal(e.WomenFocused, bs[n:])
	n += ord.Bool.Marshal(e.InviteOnly, bs[n:])
	n += timeSer.Marshal(e.InsertedAt, bs[n:])
	n += timeSer.Marshal(e.UpdatedAt, bs[n:])
	return n
}

func (eventMUS) Unmarshal(bs []byte) (e Event, n int, err error) {
	var n1 int
	e.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return e, n, err
	}
	strs := []*string{
		&e.Name, &e.Description, &e.Location, &e.HostedBy,
		&e.Price, &e.DateTime, &e.URL,
	}
	for _, dst := range strs {
		*dst, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return e, n, err
		}
	}
	slices := []*[]string{&e.UsageTags, &e.IndustryTags, &e.EventTags}
	for _, dst := range slices {
		*dst, n1, err = stringSliceSer.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return e, n, err
		}
	}
	e.WomenFocused, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	e.InviteOnly, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	e.InsertedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	e.UpdatedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	return e, n, err
}

func (eventMUS) Size(e Event) (size int) {
	size = IDMUS.Size(e.Id)
	size += ord.String.Size(e.Name)
	size += ord.String.Size(e.Description)
	size += ord.String.Size(e.Location)
	size += ord.String.Size(e.HostedBy)
	size += ord.String.Size(e.Price)
	size += ord.String.Size(e.DateTime)
	size += ord.String.Size(e.URL)
	size += stringSliceSer.Size(e.UsageTags)
	size += stringSliceSer.Size(e.IndustryTags)
	size += stringSliceSer.Size(e.EventTags)
	size += ord.Bool.Size(e.WomenFocused)
	size += ord.Bool.Size(e.InviteOnly)
	size += timeSer.Size(e.InsertedAt)
	size += timeSer.Size(e.UpdatedAt)
	return size
}

func (s eventMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

type auditRecordMUS struct{}

func (auditRecordMUS) Marshal(r AuditRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Query, bs[n:])
	n += stringSliceSer.Marshal(r.Goals, bs[n:])
	n += stringSliceSer.Marshal(r.Industries, bs[n:])
	n += varint.Int.Marshal(r.ResultCount, bs[n:])
	n += timeSer.Marshal(r.Timestamp, bs[n:])
	return n
}

func (auditRecordMUS) Unmarshal(bs []byte) (r AuditRecord, n int, err error) {
	var n1 int
	r.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return r, n, err
	}
	r.Query, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.Goals, n1, err = stringSliceSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.Industries, n1, err = stringSliceSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.ResultCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.Timestamp, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	return r, n, err
}

func (auditRecordMUS) Size(r AuditRecord) (size int) {
	size = IDMUS.Size(r.Id)
	size += ord.String.Size(r.Query)
	size += stringSliceSer.Size(r.Goals)
	size += stringSliceSer.Size(r.Industries)
	size += varint.Int.Size(r.ResultCount)
	size += timeSer.Size(r.Timestamp)
	return size
}

func (s auditRecordMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}
