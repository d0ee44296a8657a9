package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniform/chunkdex/core"
	"github.com/soniform/chunkdex/index"
	"github.com/soniform/chunkdex/index/mock"
)

// writeMediaFile creates a media file (and optional .info.json sidecar) in a
// temp dir and returns its path.
func writeMediaFile(t *testing.T, sidecar string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.mp3")
	require.NoError(t, os.WriteFile(path, []byte("audio bytes"), 0644))
	if sidecar != "" {
		sidecarPath := filepath.Join(filepath.Dir(path), "talk.info.json")
		require.NoError(t, os.WriteFile(sidecarPath, []byte(sidecar), 0644))
	}
	return path
}

func makeChunks(n int) ([]core.Chunk, [][]float32) {
	chunks := make([]core.Chunk, n)
	embeddings := make([][]float32, n)
	for i := range chunks {
		chunks[i] = core.Chunk{
			Text:  fmt.Sprintf("chunk text %d", i),
			Start: float64(i) * 10,
			End:   float64(i)*10 + 10,
		}
		embeddings[i] = []float32{float32(i), float32(i) + 0.5}
	}
	return chunks, embeddings
}

func TestNewWriter_RequiresStore(t *testing.T) {
	_, err := NewWriter(nil)
	assert.ErrorIs(t, err, ErrVectorStoreRequired)
}

func TestWriterStore_BatchesOfOneHundred(t *testing.T) {
	store := mock.NewMockStore()
	writer, err := NewWriter(store)
	require.NoError(t, err)

	chunks, embeddings := makeChunks(250)
	err = writer.Store(context.Background(), &StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings,
		FilePath:   writeMediaFile(t, ""),
		Author:     "Alice",
		Library:    "talks",
		Source:     core.SourceAudio,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{100, 100, 50}, store.BatchSizes())
}

func TestWriterStore_IDsUniqueAndOneBased(t *testing.T) {
	store := mock.NewMockStore()
	writer, err := NewWriter(store)
	require.NoError(t, err)

	chunks, embeddings := makeChunks(120)
	// Duplicate text in different positions must still get distinct IDs.
	chunks[5].Text = chunks[95].Text

	err = writer.Store(context.Background(), &StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings,
		FilePath:   writeMediaFile(t, ""),
		Author:     "Alice",
		Library:    "talks",
		Source:     core.SourceYouTube,
	})
	require.NoError(t, err)

	seen := make(map[string]bool)
	total := 0
	for _, batch := range store.Upserts() {
		for _, record := range batch {
			require.False(t, seen[record.ID], "duplicate id %s", record.ID)
			seen[record.ID] = true
			total++
		}
	}
	assert.Equal(t, 120, total)

	first := store.Upserts()[0][0]
	assert.Contains(t, first.ID, "||chunk1")
	assert.Contains(t, first.ID, "youtube||talks||")
}

func TestWriterStore_InterruptBeforeSecondBatch(t *testing.T) {
	store := mock.NewMockStore()
	flag := &Flag{}
	store.UpsertFunc = func(ctx context.Context, records []index.Record) error {
		flag.Set() // signal arrives while the first batch is in flight
		return nil
	}

	writer, err := NewWriter(store)
	require.NoError(t, err)

	chunks, embeddings := makeChunks(250)
	err = writer.Store(context.Background(), &StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings,
		FilePath:   writeMediaFile(t, ""),
		Author:     "Alice",
		Library:    "talks",
		Source:     core.SourceAudio,
		Interrupt:  flag,
	})

	require.NoError(t, err, "interrupted run returns without error")
	assert.Equal(t, []int{100}, store.BatchSizes(), "exactly one batch upserted")
}

func TestWriterStore_InterruptBeforeFirstBatch(t *testing.T) {
	store := mock.NewMockStore()
	flag := &Flag{}
	flag.Set()

	writer, err := NewWriter(store)
	require.NoError(t, err)

	chunks, embeddings := makeChunks(10)
	err = writer.Store(context.Background(), &StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings,
		FilePath:   writeMediaFile(t, ""),
		Author:     "Alice",
		Library:    "talks",
		Source:     core.SourceAudio,
		Interrupt:  flag,
	})

	require.NoError(t, err)
	assert.Empty(t, store.BatchSizes())
}

func TestWriterStore_QuotaExhaustedStopsEverything(t *testing.T) {
	store := mock.NewMockStore()
	store.UpsertFunc = func(ctx context.Context, records []index.Record) error {
		return fmt.Errorf("%w: 429 Too Many Requests", index.ErrQuotaExhausted)
	}

	writer, err := NewWriter(store)
	require.NoError(t, err)

	chunks, embeddings := makeChunks(250)
	err = writer.Store(context.Background(), &StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings,
		FilePath:   writeMediaFile(t, ""),
		Author:     "Alice",
		Library:    "talks",
		Source:     core.SourceAudio,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, index.ErrQuotaExhausted)
	assert.Equal(t, []int{100}, store.BatchSizes(), "no batches after the failure")
}

func TestWriterStore_OtherUpsertErrorIsWrapped(t *testing.T) {
	store := mock.NewMockStore()
	upstreamErr := errors.New("connection reset")
	store.UpsertFunc = func(ctx context.Context, records []index.Record) error {
		return upstreamErr
	}

	writer, err := NewWriter(store)
	require.NoError(t, err)

	chunks, embeddings := makeChunks(250)
	err = writer.Store(context.Background(), &StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings,
		FilePath:   writeMediaFile(t, ""),
		Author:     "Alice",
		Library:    "talks",
		Source:     core.SourceAudio,
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, index.ErrQuotaExhausted)
	assert.ErrorIs(t, err, upstreamErr)
	assert.Contains(t, err.Error(), "failed to upsert vectors")
	assert.Equal(t, []int{100}, store.BatchSizes(), "no batches after the failure")
}

func TestWriterStore_EmbeddingCountMismatch(t *testing.T) {
	store := mock.NewMockStore()
	writer, err := NewWriter(store)
	require.NoError(t, err)

	chunks, embeddings := makeChunks(3)
	err = writer.Store(context.Background(), &StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings[:2],
		FilePath:   "/does/not/matter.mp3",
		Author:     "Alice",
		Library:    "talks",
		Source:     core.SourceAudio,
	})

	assert.ErrorIs(t, err, ErrEmbeddingCountMismatch)
	assert.Empty(t, store.BatchSizes())
}

func TestWriterStore_EmptyChunkList(t *testing.T) {
	store := mock.NewMockStore()
	writer, err := NewWriter(store)
	require.NoError(t, err)

	err = writer.Store(context.Background(), &StoreRequest{
		FilePath: writeMediaFile(t, ""),
		Author:   "Alice",
		Library:  "talks",
		Source:   core.SourceAudio,
	})

	require.NoError(t, err)
	assert.Empty(t, store.BatchSizes())
}

func TestWriterStore_MissingFile(t *testing.T) {
	store := mock.NewMockStore()
	writer, err := NewWriter(store)
	require.NoError(t, err)

	chunks, embeddings := makeChunks(1)
	err = writer.Store(context.Background(), &StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings,
		FilePath:   "/nonexistent/talk.mp3",
		Author:     "Alice",
		Library:    "talks",
		Source:     core.SourceAudio,
	})

	require.Error(t, err)
	assert.Empty(t, store.BatchSizes())
}
