package core

import (
	"errors"
	"testing"
)

func TestValidateChunk(t *testing.T) {
	tests := []struct {
		name    string
		chunk   *Chunk
		wantErr error
	}{
		{
			name:    "valid chunk",
			chunk:   &Chunk{Text: "hello world", Start: 0, End: 2.5},
			wantErr: nil,
		},
		{
			name:    "valid chunk with words",
			chunk:   &Chunk{Text: "hello", Start: 1, End: 2, Words: []Word{{Word: "hello", Start: 1, End: 2}}},
			wantErr: nil,
		},
		{
			name:    "valid zero-length chunk",
			chunk:   &Chunk{Text: "beep", Start: 3, End: 3},
			wantErr: nil,
		},
		{
			name:    "nil chunk",
			chunk:   nil,
			wantErr: ErrInvalidChunk,
		},
		{
			name:    "empty text",
			chunk:   &Chunk{Text: "", Start: 0, End: 1},
			wantErr: ErrEmptyChunkText,
		},
		{
			name:    "end before start",
			chunk:   &Chunk{Text: "hello", Start: 5, End: 2},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunk(tt.chunk)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateSourceType(t *testing.T) {
	tests := []struct {
		name    string
		source  SourceType
		wantErr error
	}{
		{name: "youtube", source: SourceYouTube, wantErr: nil},
		{name: "audio", source: SourceAudio, wantErr: nil},
		{name: "zero value", source: SourceType(0), wantErr: ErrInvalidSourceType},
		{name: "out of range", source: SourceType(42), wantErr: ErrInvalidSourceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceType(tt.source)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateIngestRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *IngestRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &IngestRecord{
				FileName: "talk.mp3",
				FileHash: "abc123",
				Library:  "talks",
				Source:   SourceAudio,
				Vectors:  42,
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidIngestRecord,
		},
		{
			name:    "empty file hash",
			record:  &IngestRecord{Library: "talks", Source: SourceAudio},
			wantErr: ErrEmptyFileHash,
		},
		{
			name:    "empty library",
			record:  &IngestRecord{FileHash: "abc123", Source: SourceAudio},
			wantErr: ErrEmptyLibrary,
		},
		{
			name:    "invalid source",
			record:  &IngestRecord{FileHash: "abc123", Library: "talks"},
			wantErr: ErrInvalidSourceType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIngestRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
