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


// Package openai implements the ai service interfaces against
// OpenAI-compatible chat APIs (OpenAI, Ollama, LocalAI, vLLM).
//
// All three services prompt for JSON-mode output and parse it
// defensively: code fences are stripped, the first balanced JSON object
// is extracted from the response text, and common key-quoting mistakes
// are repaired before unmarshaling. Anything still unparseable surfaces
// as ErrMalformedResponse so the owning component can fall back.
package openai
