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

import "fmt"

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - End must not precede Start
//
// NOT validated:
//   - Words (optional, may be empty)
//   - Start of zero (a chunk can begin at the start of the file)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkText)
	}

	if chunk.End < chunk.Start {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrInvalidTimeRange)
	}

	return nil
}

// ValidateSourceType validates that a SourceType has a valid value.
func ValidateSourceType(source SourceType) error {
	if source != SourceYouTube && source != SourceAudio {
		return fmt.Errorf("%w: value %d", ErrInvalidSourceType, source)
	}
	return nil
}

// ValidateIngestRecord validates an IngestRecord according to domain rules.
//
// Validation rules:
//   - FileHash must not be empty
//   - Library must not be empty
//   - Source must be valid
//
// NOT validated (populated by the ledger):
//   - ID (0 is valid, derived from FileHash on insert)
//   - IngestedAt (set on insert when zero)
func ValidateIngestRecord(record *IngestRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidIngestRecord)
	}

	if record.FileHash == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIngestRecord, ErrEmptyFileHash)
	}

	if record.Library == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIngestRecord, ErrEmptyLibrary)
	}

	if err := ValidateSourceType(record.Source); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIngestRecord, err)
	}

	return nil
}
