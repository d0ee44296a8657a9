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


package chunkdex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/soniform/chunkdex/ai"
	"github.com/soniform/chunkdex/ai/openai"
	"github.com/soniform/chunkdex/core"
	"github.com/soniform/chunkdex/index"
	"github.com/soniform/chunkdex/ingest"
	"github.com/soniform/chunkdex/media"
	"github.com/soniform/chunkdex/storage"
	"github.com/soniform/chunkdex/storage/badger"
)

// Ingestor ties the embedding client, the vector writer and the optional
// local ingest ledger into a single per-file pipeline.
type Ingestor struct {
	aiConfig *ai.Config
	writer   *ingest.Writer
	ledger   storage.IngestLogRepository
	backend  *badger.Backend
	logger   *slog.Logger

	// The OpenAI client is built on first use so that operations that never
	// embed anything (such as clearing a library) work without credentials.
	embedderOnce sync.Once
	embedder     ai.Embedder
	embedderErr  error
}

// IngestorOption configures an Ingestor.
type IngestorOption func(*ingestorOptions)

type ingestorOptions struct {
	aiConfig     *ai.Config
	embedder     ai.Embedder
	ledgerPath   string
	memoryLedger bool
	logger       *slog.Logger
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) IngestorOption {
	return func(o *ingestorOptions) {
		o.aiConfig = config
	}
}

// WithEmbedder supplies a pre-built embedder instead of constructing the
// OpenAI client from the AI config. Used mainly in tests.
func WithEmbedder(embedder ai.Embedder) IngestorOption {
	return func(o *ingestorOptions) {
		o.embedder = embedder
	}
}

// WithLedgerPath enables the local ingest ledger at the given path.
// Without a ledger every file is re-ingested on every run.
func WithLedgerPath(path string) IngestorOption {
	return func(o *ingestorOptions) {
		o.ledgerPath = path
	}
}

// WithMemoryLedger enables an in-memory ingest ledger. Used in tests.
func WithMemoryLedger() IngestorOption {
	return func(o *ingestorOptions) {
		o.memoryLedger = true
	}
}

// WithIngestorLogger sets a custom logger. Default is slog.Default().
func WithIngestorLogger(logger *slog.Logger) IngestorOption {
	return func(o *ingestorOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func NewIngestor(store index.VectorStore, opts ...IngestorOption) (*Ingestor, error) {
	// Apply options
	options := &ingestorOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Create vector writer
	writer, err := ingest.NewWriter(store, ingest.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	ing := &Ingestor{
		aiConfig: options.aiConfig,
		embedder: options.embedder,
		writer:   writer,
		logger:   options.logger.With("component", "ingestor"),
	}

	// Open ingest ledger when requested
	if options.ledgerPath != "" || options.memoryLedger {
		backend, err := badger.OpenBackend(options.ledgerPath, options.memoryLedger)
		if err != nil {
			return nil, err
		}
		ledger, err := badger.NewIngestLogRepository(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		ing.backend = backend
		ing.ledger = ledger
	}

	return ing, nil
}

// FileRequest describes one media file to ingest.
type FileRequest struct {
	Path      string
	Author    string
	Library   string
	Source    core.SourceType
	Force     bool             // re-ingest even when the ledger has the file
	Interrupt ingest.Interrupt // optional
}

// IngestFile runs the full pipeline for one file: load the chunk sidecar,
// embed the chunk texts in one request, upsert the vectors in batches, and
// record the file in the ledger. A file whose hash the ledger already holds
// is skipped unless Force is set. No ledger entry is written when the upload
// was cut short by an interrupt.
func (ing *Ingestor) IngestFile(ctx context.Context, req *FileRequest) error {
	fileName := filepath.Base(req.Path)

	chunks, err := ingest.LoadChunks(ingest.ChunksPath(req.Path))
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		ing.logger.Warn("no chunks to ingest, skipping", "file", fileName)
		return nil
	}

	fileHash, err := media.FileHash(req.Path)
	if err != nil {
		return err
	}

	if ing.ledger != nil && !req.Force {
		_, err := ing.ledger.GetIngest(ctx, fileHash)
		switch {
		case err == nil:
			ing.logger.Info("file already ingested, skipping", "file", fileName)
			return nil
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Text
	}

	embedder, err := ing.getEmbedder()
	if err != nil {
		return err
	}

	embeddings, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks from %s: %w", fileName, err)
	}

	if err := ing.writer.Store(ctx, &ingest.StoreRequest{
		Chunks:     chunks,
		Embeddings: embeddings,
		FilePath:   req.Path,
		Author:     req.Author,
		Library:    req.Library,
		Source:     req.Source,
		Interrupt:  req.Interrupt,
	}); err != nil {
		return err
	}

	// An interrupted upload completed only partially, so it must not be
	// recorded as done.
	if req.Interrupt != nil && req.Interrupt.Interrupted() {
		return nil
	}

	if ing.ledger != nil {
		meta, err := media.Lookup(req.Path)
		if err != nil {
			return err
		}
		_, err = ing.ledger.RecordIngest(ctx, &core.IngestRecord{
			FileName: fileName,
			FileHash: fileHash,
			Library:  req.Library,
			Title:    meta.Title,
			Source:   req.Source,
			Vectors:  len(chunks),
		})
		if err != nil {
			return fmt.Errorf("failed to record ingest of %s: %w", fileName, err)
		}
	}

	return nil
}

// ClearLibrary removes every vector tagged with the library from the index
// and drops the library's entries from the ledger. A not-found error from
// the index is returned as-is; the ledger is left untouched in that case.
func (ing *Ingestor) ClearLibrary(ctx context.Context, library string) error {
	if err := ing.writer.ClearLibrary(ctx, library); err != nil {
		return err
	}

	if ing.ledger != nil {
		deleted, err := ing.ledger.DeleteIngestsByLibrary(ctx, library)
		if err != nil {
			return err
		}
		ing.logger.Info("cleared ledger entries", "library", library, "count", deleted)
	}

	return nil
}

func (ing *Ingestor) getEmbedder() (ai.Embedder, error) {
	ing.embedderOnce.Do(func() {
		if ing.embedder != nil {
			return
		}
		ing.embedder, ing.embedderErr = openai.NewEmbedder(ing.aiConfig)
	})
	return ing.embedder, ing.embedderErr
}

// IngestLog exposes the ledger, or nil when none is configured.
func (ing *Ingestor) IngestLog() storage.IngestLogRepository {
	return ing.ledger
}

func (ing *Ingestor) Close() error {
	// Close ledger first
	if ing.ledger != nil {
		if err := ing.ledger.Close(); err != nil {
			ing.logger.Error("error closing ingest ledger", "err", err)
			return err
		}
	}

	// Close backend
	if ing.backend != nil {
		if err := ing.backend.Close(); err != nil {
			ing.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}
