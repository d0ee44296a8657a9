package ingest

import "errors"

var (
	// ErrVectorStoreRequired is returned when a vector store is not provided.
	ErrVectorStoreRequired = errors.New("vector store required")

	// ErrEmbeddingCountMismatch is returned when the number of embeddings
	// does not match the number of chunks.
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match chunk count")
)
