package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SourceType identifies the kind of media a chunk was transcribed from.
type SourceType int

const (
	// SourceYouTube represents a chunk transcribed from a YouTube video.
	SourceYouTube SourceType = iota + 1
	// SourceAudio represents a chunk transcribed from a local audio file.
	SourceAudio
)

// String returns the wire form of the source type as it appears in vector
// IDs and metadata ("youtube" or "audio").
func (s SourceType) String() string {
	switch s {
	case SourceYouTube:
		return "youtube"
	case SourceAudio:
		return "audio"
	default:
		return fmt.Sprintf("sourcetype(%d)", int(s))
	}
}

// Word is a single transcribed word with its time bounds.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Chunk is a segment of transcribed content with text and time bounds.
// Chunks are produced upstream by the transcription pipeline and are
// immutable within this system.
type Chunk struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Words []Word  `json:"words,omitempty"`
}

// LogValue implements slog.LogValuer. The word list is omitted by
// construction so per-chunk debug logs stay readable.
func (c Chunk) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("text", c.Text),
		slog.Float64("start", c.Start),
		slog.Float64("end", c.End),
	)
}

// ChunkHash returns an 8-hex-character content hash of the chunk text,
// used as the stable content component of vector IDs.
func ChunkHash(text string) string {
	h, _ := blake2b.New(4, nil) // 4 bytes = 8 hex chars
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// ChunkID composes the deterministic vector identifier for chunk number n
// (1-based) of a file. Re-ingesting the same content under the same library
// and title produces the same IDs, so upserts overwrite instead of
// duplicating.
func ChunkID(source SourceType, library, title, contentHash string, n int) string {
	return fmt.Sprintf("%s||%s||%s||%s||chunk%d", source, library, title, contentHash, n)
}

// IngestRecord is a ledger entry describing one completed file ingest.
// Keyed by the file's content hash so unchanged files can be skipped on
// re-runs.
type IngestRecord struct {
	Id         ID
	FileName   string
	FileHash   string
	Library    string
	Title      string
	Source     SourceType
	Vectors    int
	IngestedAt time.Time
}
