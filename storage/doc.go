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


// Package storage defines the local ingest ledger abstraction.
//
// The ledger records which files have already been pushed to the vector
// index, keyed by file content hash, so the CLI can skip unchanged files on
// re-runs and prune entries when a library is cleared. Records are
// serialized with MUS (see cmd/musgen) and stored in BadgerDB by the
// storage/badger implementation.
package storage
