package pinecone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/soniform/chunkdex/index"
)

func TestWrapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback error
		want     error
	}{
		{
			name:     "grpc resource exhausted",
			err:      status.Error(codes.ResourceExhausted, "write unit limit reached"),
			fallback: index.ErrUpsertFailed,
			want:     index.ErrQuotaExhausted,
		},
		{
			name:     "grpc not found",
			err:      status.Error(codes.NotFound, "namespace does not exist"),
			fallback: index.ErrDeleteFailed,
			want:     index.ErrNotFound,
		},
		{
			name:     "legacy 429 text",
			err:      errors.New("request failed: 429 Too Many Requests"),
			fallback: index.ErrUpsertFailed,
			want:     index.ErrQuotaExhausted,
		},
		{
			name:     "429 without reason text is not quota",
			err:      errors.New("status 429"),
			fallback: index.ErrUpsertFailed,
			want:     index.ErrUpsertFailed,
		},
		{
			name:     "reason text without 429 is not quota",
			err:      errors.New("Too Many Requests"),
			fallback: index.ErrUpsertFailed,
			want:     index.ErrUpsertFailed,
		},
		{
			name:     "unrelated error wraps fallback",
			err:      errors.New("connection reset"),
			fallback: index.ErrUpsertFailed,
			want:     index.ErrUpsertFailed,
		},
		{
			name:     "grpc internal wraps fallback",
			err:      status.Error(codes.Internal, "server error"),
			fallback: index.ErrDeleteFailed,
			want:     index.ErrDeleteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapServiceError(tt.err, tt.fallback)
			require.Error(t, wrapped)
			assert.ErrorIs(t, wrapped, tt.want)
		})
	}
}

func TestWrapServiceError_PreservesMessage(t *testing.T) {
	err := errors.New("connection reset by peer")
	wrapped := wrapServiceError(err, index.ErrUpsertFailed)
	assert.Contains(t, wrapped.Error(), "connection reset by peer")
	assert.ErrorIs(t, wrapped, err, "original error stays in the chain")
}
