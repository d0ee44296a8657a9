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


package pinecone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pinecone-io/go-pinecone/v2/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/soniform/chunkdex/index"
)

// Store implements index.VectorStore against a Pinecone serverless index.
type Store struct {
	conn   *pinecone.IndexConnection
	name   string
	logger *slog.Logger
}

var _ index.VectorStore = (*Store)(nil)

// Connect ensures the configured index exists, creating it with the fixed
// serverless parameters if absent, and returns a store bound to it.
// Safe to call repeatedly; once the index exists creation is skipped.
func Connect(ctx context.Context, cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.Default().With("component", "pinecone-store")

	pc, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create pinecone client: %w", err)
	}

	indexes, err := pc.ListIndexes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pinecone indexes: %w", err)
	}

	var idx *pinecone.Index
	for _, candidate := range indexes {
		if candidate.Name == cfg.IndexName {
			idx = candidate
			break
		}
	}

	if idx == nil {
		logger.Info("creating pinecone index", "index", cfg.IndexName)
		idx, err = pc.CreateServerlessIndex(ctx, &pinecone.CreateServerlessIndexRequest{
			Name:      cfg.IndexName,
			Dimension: Dimension,
			Metric:    pinecone.Cosine,
			Cloud:     pinecone.Cloud(Cloud),
			Region:    Region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create pinecone index %s: %w", cfg.IndexName, err)
		}
	}

	conn, err := pc.Index(pinecone.NewIndexConnParams{
		Host:      idx.Host,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to pinecone index %s: %w", cfg.IndexName, err)
	}

	return &Store{
		conn:   conn,
		name:   cfg.IndexName,
		logger: logger,
	}, nil
}

// Upsert inserts or overwrites records by ID.
func (s *Store) Upsert(ctx context.Context, records []index.Record) error {
	if len(records) == 0 {
		return nil
	}

	vectors := make([]*pinecone.Vector, 0, len(records))
	for _, record := range records {
		metadata, err := structpb.NewStruct(record.Metadata)
		if err != nil {
			return fmt.Errorf("%w: invalid metadata for %s: %w", index.ErrUpsertFailed, record.ID, err)
		}
		values := record.Values
		vectors = append(vectors, &pinecone.Vector{
			Id:       record.ID,
			Values:   values,
			Metadata: metadata,
		})
	}

	if _, err := s.conn.UpsertVectors(ctx, vectors); err != nil {
		return wrapServiceError(err, index.ErrUpsertFailed)
	}

	s.logger.Debug("upserted vectors", "index", s.name, "count", len(vectors))
	return nil
}

// DeleteByLibrary removes all vectors whose library metadata field equals
// the given name.
func (s *Store) DeleteByLibrary(ctx context.Context, library string) error {
	filter, err := structpb.NewStruct(map[string]any{"library": library})
	if err != nil {
		return fmt.Errorf("%w: %w", index.ErrDeleteFailed, err)
	}

	if err := s.conn.DeleteVectorsByFilter(ctx, filter); err != nil {
		return wrapServiceError(err, index.ErrDeleteFailed)
	}

	return nil
}
