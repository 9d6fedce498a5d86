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
	"fmt"
	"strings"
)

// ValidateQuery validates free-text query input before any pipeline stage runs.
//
// Validation rules:
//   - Query must not be empty or whitespace-only
//
// An invalid query is the only client-facing error in the engine; every
// other failure degrades to a documented fallback.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrEmptyQuery)
	}
	return nil
}

// ValidateEvent validates an Event according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated (populated by enrichment):
//   - UsageTags / IndustryTags / EventTags (can be empty until the tagger runs)
//   - ID (derived from the name and date/time on insert)
func ValidateEvent(event *Event) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", ErrInvalidEvent)
	}

	if event.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrEmptyEventName)
	}

	return nil
}
