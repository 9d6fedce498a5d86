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

import "errors"

// Domain validation errors
var (
	// ErrInvalidQuery indicates a query failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidEvent indicates an Event failed validation.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrEmptyQuery indicates the query text is empty or whitespace.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrEmptyEventName indicates the event Name field is empty.
	ErrEmptyEventName = errors.New("event name cannot be empty")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")
)
