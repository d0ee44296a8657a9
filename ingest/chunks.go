package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soniform/chunkdex/core"
)

// ChunksPath returns the transcript sidecar path for a media file:
// the media extension replaced with ".chunks.json".
func ChunksPath(mediaPath string) string {
	return strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + ".chunks.json"
}

// LoadChunks reads and validates a chunk list written by the transcription
// pipeline: a JSON array of {text, start, end, words} objects.
func LoadChunks(path string) ([]core.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunks from %s: %w", path, err)
	}

	var chunks []core.Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, fmt.Errorf("failed to parse chunks from %s: %w", path, err)
	}

	for i := range chunks {
		if err := core.ValidateChunk(&chunks[i]); err != nil {
			return nil, fmt.Errorf("chunk %d in %s: %w", i+1, path, err)
		}
	}

	return chunks, nil
}
