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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyChunkText indicates the chunk Text field is empty.
	ErrEmptyChunkText = errors.New("chunk text cannot be empty")

	// ErrInvalidTimeRange indicates a chunk whose end precedes its start.
	ErrInvalidTimeRange = errors.New("chunk end cannot precede start")

	// ErrInvalidSourceType indicates an invalid SourceType value.
	ErrInvalidSourceType = errors.New("invalid source type")

	// ErrInvalidIngestRecord indicates an IngestRecord failed validation.
	ErrInvalidIngestRecord = errors.New("invalid ingest record")

	// ErrEmptyFileHash indicates the ingest record FileHash field is empty.
	ErrEmptyFileHash = errors.New("file hash cannot be empty")

	// ErrEmptyLibrary indicates an empty library name.
	ErrEmptyLibrary = errors.New("library name cannot be empty")
)
