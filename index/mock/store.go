package mock

import (
	"context"
	"sync"

	"github.com/soniform/chunkdex/index"
)

// MockStore is a recording test double for index.VectorStore.
// It allows custom behavior injection via function fields and records every
// call for assertions.
type MockStore struct {
	// UpsertFunc is called by Upsert if set. The batch is recorded either way.
	UpsertFunc func(ctx context.Context, records []index.Record) error

	// DeleteByLibraryFunc is called by DeleteByLibrary if set.
	DeleteByLibraryFunc func(ctx context.Context, library string) error

	mu      sync.Mutex
	upserts [][]index.Record
	deletes []string
}

var _ index.VectorStore = (*MockStore)(nil)

// NewMockStore creates a mock vector store that accepts all operations.
// Returns the concrete type to allow test assertions.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Upsert records the batch and delegates to UpsertFunc if set.
func (m *MockStore) Upsert(ctx context.Context, records []index.Record) error {
	m.mu.Lock()
	batch := make([]index.Record, len(records))
	copy(batch, records)
	m.upserts = append(m.upserts, batch)
	m.mu.Unlock()

	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, records)
	}
	return nil
}

// DeleteByLibrary records the library and delegates to DeleteByLibraryFunc if set.
func (m *MockStore) DeleteByLibrary(ctx context.Context, library string) error {
	m.mu.Lock()
	m.deletes = append(m.deletes, library)
	m.mu.Unlock()

	if m.DeleteByLibraryFunc != nil {
		return m.DeleteByLibraryFunc(ctx, library)
	}
	return nil
}

// Upserts returns the recorded upsert batches in call order.
func (m *MockStore) Upserts() [][]index.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]index.Record(nil), m.upserts...)
}

// BatchSizes returns the size of each recorded upsert batch in call order.
func (m *MockStore) BatchSizes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	sizes := make([]int, len(m.upserts))
	for i, batch := range m.upserts {
		sizes[i] = len(batch)
	}
	return sizes
}

// Deletes returns the recorded library names passed to DeleteByLibrary.
func (m *MockStore) Deletes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deletes...)
}

// Reset clears recorded calls and injected behavior.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts = nil
	m.deletes = nil
	m.UpsertFunc = nil
	m.DeleteByLibraryFunc = nil
}
