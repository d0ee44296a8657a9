package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniform/chunkdex/core"
)

func TestChunksPath(t *testing.T) {
	assert.Equal(t, "/media/talk.chunks.json", ChunksPath("/media/talk.mp3"))
	assert.Equal(t, "talk.chunks.json", ChunksPath("talk"))
}

func TestLoadChunks(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid chunk list", func(t *testing.T) {
		path := filepath.Join(dir, "ok.chunks.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{"text": "first chunk", "start": 0, "end": 9.5},
			{"text": "second chunk", "start": 9.5, "end": 20,
			 "words": [{"word": "second", "start": 9.5, "end": 12}]}
		]`), 0644))

		chunks, err := LoadChunks(path)
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "first chunk", chunks[0].Text)
		assert.Equal(t, 9.5, chunks[1].Start)
		require.Len(t, chunks[1].Words, 1)
		assert.Equal(t, "second", chunks[1].Words[0].Word)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadChunks(filepath.Join(dir, "nope.chunks.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.chunks.json")
		require.NoError(t, os.WriteFile(path, []byte("{not an array"), 0644))

		_, err := LoadChunks(path)
		require.Error(t, err)
	})

	t.Run("invalid chunk rejected", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.chunks.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"text": "", "start": 0, "end": 1}]`), 0644))

		_, err := LoadChunks(path)
		assert.ErrorIs(t, err, core.ErrInvalidChunk)
	})
}
