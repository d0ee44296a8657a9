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


package index

import "errors"

var (
	// ErrQuotaExhausted indicates the service rejected a write for quota or
	// rate-limit reasons. Callers should stop issuing writes immediately;
	// retrying burns more quota without making progress.
	ErrQuotaExhausted = errors.New("write quota exhausted")

	// ErrNotFound indicates the index or namespace does not exist.
	ErrNotFound = errors.New("index or namespace not found")

	// ErrUpsertFailed indicates an upsert was rejected for a reason other
	// than quota exhaustion.
	ErrUpsertFailed = errors.New("failed to upsert vectors")

	// ErrDeleteFailed indicates a delete was rejected.
	ErrDeleteFailed = errors.New("failed to delete vectors")
)
