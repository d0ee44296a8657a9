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


package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/soniform/chunkdex/core"
	"github.com/soniform/chunkdex/index"
	"github.com/soniform/chunkdex/media"
)

// batchSize is the Pinecone upsert limit.
const batchSize = 100

// Writer stores embedded chunks in a vector index.
type Writer struct {
	store  index.VectorStore
	logger *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
	}
}

// NewWriter creates a writer backed by the given vector store.
func NewWriter(store index.VectorStore, opts ...Option) (*Writer, error) {
	if store == nil {
		return nil, ErrVectorStoreRequired
	}

	w := &Writer{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("component", "vector-writer")

	return w, nil
}

// StoreRequest carries everything needed to store one file's chunks.
// Chunks and Embeddings are positionally aligned.
type StoreRequest struct {
	Chunks     []core.Chunk
	Embeddings [][]float32
	FilePath   string
	Author     string
	Library    string
	Source     core.SourceType
	Interrupt  Interrupt // optional
}

// Store builds one vector record per chunk/embedding pair and upserts them in
// batches of 100. The interrupt is checked before each batch; when it has
// been requested the remaining batches are skipped and Store returns nil
// without reporting how far it got. A quota-exhaustion error from the store
// is returned wrapping index.ErrQuotaExhausted so the caller can terminate;
// any other upsert error is logged and returned wrapped. No retries.
func (w *Writer) Store(ctx context.Context, req *StoreRequest) error {
	if len(req.Embeddings) != len(req.Chunks) {
		return fmt.Errorf("%w: %d chunks, %d embeddings",
			ErrEmbeddingCountMismatch, len(req.Chunks), len(req.Embeddings))
	}

	fileName := filepath.Base(req.FilePath)

	fileHash, err := media.FileHash(req.FilePath)
	if err != nil {
		return err
	}

	meta, err := media.Lookup(req.FilePath)
	if err != nil {
		return err
	}

	records, err := buildRecords(req, fileName, fileHash, meta, w.logger)
	if err != nil {
		return err
	}

	for start := 0; start < len(records); start += batchSize {
		if req.Interrupt != nil && req.Interrupt.Interrupted() {
			w.logger.Info("interrupt detected, stopping vector upload", "file", fileName)
			return nil
		}

		end := min(start+batchSize, len(records))
		if err := w.store.Upsert(ctx, records[start:end]); err != nil {
			w.logger.Error("error upserting vectors", "err", err)
			if errors.Is(err, index.ErrQuotaExhausted) {
				w.logger.Error("monthly write unit limit may be exhausted, aborting ingest")
				return err
			}
			return fmt.Errorf("failed to upsert vectors: %w", err)
		}
	}

	w.logger.Info("stored vectors", "count", len(records), "file", fileName)
	return nil
}

// buildRecords constructs the vector records for a store request.
// The url metadata key is present only when a source URL was resolved.
func buildRecords(req *StoreRequest, fileName, fileHash string, meta *media.Metadata, logger *slog.Logger) ([]index.Record, error) {
	records := make([]index.Record, 0, len(req.Chunks))

	for i, chunk := range req.Chunks {
		contentHash := core.ChunkHash(chunk.Text)
		id := core.ChunkID(req.Source, req.Library, meta.Title, contentHash, i+1)

		// Chunk implements LogValuer, so the word list stays out of the log.
		logger.Debug("building vector record",
			"chunk", i+1, "total", len(req.Chunks), "contents", chunk)

		fullInfo, err := json.Marshal(chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize chunk %d: %w", i+1, err)
		}

		metadata := map[string]any{
			"text":       chunk.Text,
			"start_time": chunk.Start,
			"end_time":   chunk.End,
			"full_info":  string(fullInfo),
			"file_name":  fileName,
			"file_hash":  fileHash,
			"library":    req.Library,
			"author":     req.Author,
			"type":       req.Source.String(),
			"title":      meta.Title,
			"duration":   meta.Duration,
		}
		if meta.URL != "" {
			metadata["url"] = meta.URL
		}

		records = append(records, index.Record{
			ID:       id,
			Values:   req.Embeddings[i],
			Metadata: metadata,
		})
	}

	return records, nil
}

// ClearLibrary deletes every vector tagged with the given library name.
// A missing index or namespace is logged as a warning and the not-found
// error is returned for the caller to decide; any other failure is logged
// and returned unchanged.
func (w *Writer) ClearLibrary(ctx context.Context, library string) error {
	if err := w.store.DeleteByLibrary(ctx, library); err != nil {
		if errors.Is(err, index.ErrNotFound) {
			w.logger.Warn("index or namespace does not exist, skipping clear", "library", library)
			return err
		}
		w.logger.Error("error clearing library vectors", "library", library, "err", err)
		return err
	}

	w.logger.Info("cleared library vectors", "library", library)
	return nil
}
