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


package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/eventmatch/core"
)

// ReadEvents parses the scraper's CSV export into events. The first row
// must be a header naming at least event_name; unknown columns are
// ignored. Rows with an empty event name are skipped.
func ReadEvents(r io.Reader) ([]*core.Event, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["event_name"]; !ok {
		return nil, ErrMissingNameColumn
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var events []*core.Event
	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", readErr)
		}

		name := field(row, "event_name")
		if name == "" {
			continue
		}

		dateTime := field(row, "event_date")
		if eventTime := field(row, "event_time"); eventTime != "" {
			if dateTime != "" {
				dateTime += " "
			}
			dateTime += eventTime
		}

		event := &core.Event{
			Name:         name,
			Description:  field(row, "event_description"),
			Location:     field(row, "event_location"),
			HostedBy:     field(row, "hosted_by"),
			Price:        field(row, "price"),
			DateTime:     dateTime,
			URL:          field(row, "event_url"),
			EventTags:    parseTagList(field(row, "event_tags")),
			UsageTags:    parseTagList(field(row, "usage_tags")),
			IndustryTags: parseTagList(field(row, "industry_tags")),
			WomenFocused: parseBool(field(row, "women_specific")),
			InviteOnly:   parseBool(field(row, "invite_only")),
		}
		events = append(events, event)
	}
	return events, nil
}

// IngestCSV parses CSV input and runs the result through IngestEvents.
func (p *Pipeline) IngestCSV(ctx context.Context, r io.Reader) (*Report, error) {
	events, err := ReadEvents(r)
	if err != nil {
		return nil, err
	}
	return p.IngestEvents(ctx, events)
}

// parseTagList accepts the two tag encodings the scraper emits: a
// Python-style list literal ("['ai', 'fintech']") or a plain delimited
// string ("ai, fintech" or "ai; fintech").
func parseTagList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return nil
	}
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		raw = raw[1 : len(raw)-1]
	}

	raw = strings.ReplaceAll(raw, ";", ",")
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		tag = strings.Trim(tag, `'"`)
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// parseBool accepts the truthy spellings seen in scraper output.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
