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


package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/soniform/chunkdex/core"
	"github.com/soniform/chunkdex/storage"
)

// IngestLogRepository implements storage.IngestLogRepository for BadgerDB.
type IngestLogRepository struct {
	backend *Backend
}

var _ storage.IngestLogRepository = (*IngestLogRepository)(nil)

// NewIngestLogRepository creates a new IngestLogRepository.
func NewIngestLogRepository(backend *Backend) (*IngestLogRepository, error) {
	return &IngestLogRepository{
		backend: backend,
	}, nil
}

// Close releases resources. IngestLogRepository has no resources to release.
func (r *IngestLogRepository) Close() error {
	return nil
}

// RecordIngest stores a ledger entry for a completed file ingest.
func (r *IngestLogRepository) RecordIngest(ctx context.Context, record *core.IngestRecord) (*core.IngestRecord, error) {
	if err := core.ValidateIngestRecord(record); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if record.Id == 0 {
			record.Id = core.IDFromContent(record.FileHash)
		}
		if record.IngestedAt.IsZero() {
			record.IngestedAt = time.Now().UTC()
		}

		key := makeIngestKey(record.FileHash)

		// Drop the stale library index entry when the file moved libraries.
		old, err := readIngestRecord(tx, key)
		if err != nil {
			return err
		}
		if old != nil && old.Library != record.Library {
			if err := tx.Delete(makeIngestLibraryKey(old.Library, old.FileHash)); err != nil {
				return err
			}
		}

		if err := tx.Set(key, storage.MarshalIngestRecord(record)); err != nil {
			return err
		}

		libraryKey := makeIngestLibraryKey(record.Library, record.FileHash)
		if err := tx.Set(libraryKey, []byte(record.FileHash)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetIngest retrieves the ledger entry for a file hash.
func (r *IngestLogRepository) GetIngest(ctx context.Context, fileHash string) (*core.IngestRecord, error) {
	var record *core.IngestRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		record, err = readIngestRecord(tx, makeIngestKey(fileHash))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrNotFound
	}
	return record, nil
}

// ListIngestsByLibrary retrieves all ledger entries for a library.
func (r *IngestLogRepository) ListIngestsByLibrary(ctx context.Context, library string) ([]*core.IngestRecord, error) {
	var records []*core.IngestRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialIngestLibraryKey(library)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var fileHash string
			if err := it.Item().Value(func(value []byte) error {
				fileHash = string(value)
				return nil
			}); err != nil {
				return err
			}

			record, err := readIngestRecord(tx, makeIngestKey(fileHash))
			if err != nil {
				return err
			}
			if record != nil {
				records = append(records, record)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteIngestsByLibrary removes every ledger entry for a library.
func (r *IngestLogRepository) DeleteIngestsByLibrary(ctx context.Context, library string) (int, error) {
	deleted := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialIngestLibraryKey(library)

		// Collect first: Badger does not allow deleting under an open iterator.
		var libraryKeys [][]byte
		var fileHashes []string

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := tx.NewIterator(opts)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			libraryKeys = append(libraryKeys, it.Item().KeyCopy(nil))
			var fileHash string
			if err := it.Item().Value(func(value []byte) error {
				fileHash = string(value)
				return nil
			}); err != nil {
				it.Close()
				return err
			}
			fileHashes = append(fileHashes, fileHash)
		}
		it.Close()

		for i, libraryKey := range libraryKeys {
			if err := tx.Delete(libraryKey); err != nil {
				return err
			}
			if err := tx.Delete(makeIngestKey(fileHashes[i])); err != nil {
				return err
			}
			deleted++
		}

		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// readIngestRecord reads and deserializes an ingest record by key.
// Returns nil, nil when the key does not exist.
func readIngestRecord(tx *badger.Txn, key []byte) (*core.IngestRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.IngestRecord
	err = item.Value(func(value []byte) error {
		var err error
		record, err = storage.UnmarshalIngestRecord(value)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
