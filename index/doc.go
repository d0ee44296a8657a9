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


// Package index abstracts the remote vector index chunkdex writes to.
//
// The VectorStore interface carries exactly the two operations the ingest
// pipeline needs: batch upsert and delete-by-library. Durability and
// consistency semantics belong to the external service; this package only
// normalizes its error surface into the sentinel errors callers branch on
// (ErrQuotaExhausted, ErrNotFound).
//
// Implementations:
//
//   - index/pinecone: Pinecone serverless indexes via the official Go SDK
//   - index/mock: recording test double
package index
