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


// Package taxonomy defines the static registry of usage and industry tags
// that drives the relevance engine.
//
// A Taxonomy carries, per tag: a canonical identifier, a category within
// its vocabulary, a point weight consumed by the scorer, and keyword
// synonyms used for phrase matching. It also holds the complementary-tag
// graph and the phrase tables (demographic, time-of-day, budget, location)
// shared by the deterministic intent extractor and the lenient filter
// stages, so the two stay consistent.
//
// Lookups never fail: unknown tags resolve to documented default weights
// and the "unknown" category. The taxonomy is built once at process start
// (Default or LoadFile) and is immutable thereafter, making unsynchronized
// concurrent reads safe.
package taxonomy
