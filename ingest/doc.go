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


// Package ingest turns embedded transcript chunks into vector records and
// writes them to a remote index.
//
// The Writer is deliberately simple: records are built up front, upserted in
// fixed batches of 100, and a cooperative interrupt is polled between
// batches. There is no retry policy; a quota-exhaustion error aborts the run
// and surfaces as index.ErrQuotaExhausted, every other store error is
// wrapped and returned. Partial completion after an interrupt is silent —
// deterministic record IDs make re-running the ingest an overwrite, not a
// duplication.
package ingest
