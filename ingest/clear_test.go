package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniform/chunkdex/index"
	"github.com/soniform/chunkdex/index/mock"
)

func TestClearLibrary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := mock.NewMockStore()
		writer, err := NewWriter(store)
		require.NoError(t, err)

		require.NoError(t, writer.ClearLibrary(context.Background(), "talks"))
		assert.Equal(t, []string{"talks"}, store.Deletes())
	})

	t.Run("missing index surfaces not-found", func(t *testing.T) {
		store := mock.NewMockStore()
		store.DeleteByLibraryFunc = func(ctx context.Context, library string) error {
			return fmt.Errorf("%w: namespace does not exist", index.ErrNotFound)
		}
		writer, err := NewWriter(store)
		require.NoError(t, err)

		err = writer.ClearLibrary(context.Background(), "ghost")
		assert.ErrorIs(t, err, index.ErrNotFound)
	})

	t.Run("other errors returned unchanged", func(t *testing.T) {
		store := mock.NewMockStore()
		storeErr := errors.New("connection reset")
		store.DeleteByLibraryFunc = func(ctx context.Context, library string) error {
			return storeErr
		}
		writer, err := NewWriter(store)
		require.NoError(t, err)

		err = writer.ClearLibrary(context.Background(), "talks")
		assert.Equal(t, storeErr, err)
	})
}

func TestFlag(t *testing.T) {
	flag := &Flag{}
	assert.False(t, flag.Interrupted())

	flag.Set()
	assert.True(t, flag.Interrupted())

	flag.Set() // idempotent
	assert.True(t, flag.Interrupted())
}
