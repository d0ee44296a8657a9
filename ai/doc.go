// Copyright 2026 Soniform Labs
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


// Package ai defines the embedding abstraction used by chunkdex.
//
// The Embedder interface decouples the ingest pipeline from any concrete
// embedding provider. Two implementations are included:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: deterministic test double for unit testing without network
//
// Public constructors return the Embedder interface to keep callers free of
// provider-specific coupling; the mock constructor returns a concrete type so
// tests can inject behavior and assert call counts.
package ai
