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


// Package ai provides abstractions for the external AI services used by
// the relevance engine.
//
// Three interfaces cover the engine's service calls:
//
//   - IntentService: structured intent extraction from a free-text query
//   - RankingService: top-K selection with per-item justifications
//   - EventTagger: tag generation for raw events during ingestion
//
// Provider aggregates them for convenient initialization.
//
// # Failure contract
//
// None of these services is load-bearing. Every implementation may fail,
// time out, or return malformed content at any moment; each surfaces such
// conditions as an ordinary error. The owning component (intent extractor,
// ranker, ingestion pipeline) holds the fallback strategy; the ai package
// never falls back on its own.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors in ai/openai return interface types to enforce
// abstraction. Mock constructors return concrete types so tests can
// inject behavior and assert call counts.
package ai
