package storage

import (
	"context"

	"github.com/soniform/chunkdex/core"
)

// IngestLogRepository records which files have already been ingested so
// re-runs can skip unchanged content. It is local bookkeeping only; the
// vector index remains the source of truth for stored vectors.
// Implementations must be thread-safe and support concurrent access.
type IngestLogRepository interface {
	// RecordIngest stores a ledger entry for a completed file ingest,
	// overwriting any previous entry for the same file hash.
	// Generates the ID from the file hash and sets IngestedAt if zero.
	// Returns the record with those fields populated.
	RecordIngest(ctx context.Context, record *core.IngestRecord) (*core.IngestRecord, error)

	// GetIngest retrieves the ledger entry for a file hash.
	// Returns ErrNotFound if no entry exists.
	GetIngest(ctx context.Context, fileHash string) (*core.IngestRecord, error)

	// ListIngestsByLibrary retrieves all ledger entries for a library.
	// Returns an empty slice when the library has no entries.
	ListIngestsByLibrary(ctx context.Context, library string) ([]*core.IngestRecord, error)

	// DeleteIngestsByLibrary removes every ledger entry for a library and
	// returns the number removed. Deleting a library with no entries is not
	// an error.
	DeleteIngestsByLibrary(ctx context.Context, library string) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
