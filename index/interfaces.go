package index

import "context"

// Record is one vector ready for upsert: a deterministic ID, the embedding
// values, and a flat metadata mapping.
type Record struct {
	ID       string
	Values   []float32
	Metadata map[string]any
}

// VectorStore is the remote vector index the ingest pipeline writes to.
// Implementations must be thread-safe for concurrent use.
type VectorStore interface {
	// Upsert inserts or overwrites records by ID. Callers are responsible
	// for keeping each call within the service's batch limit.
	Upsert(ctx context.Context, records []Record) error

	// DeleteByLibrary removes every record whose "library" metadata field
	// equals the given name. Returns an error wrapping ErrNotFound when the
	// index or namespace does not exist.
	DeleteByLibrary(ctx context.Context, library string) error
}
