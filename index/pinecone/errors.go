package pinecone

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/soniform/chunkdex/index"
)

// wrapServiceError normalizes a Pinecone client error into the package's
// sentinel errors. Quota exhaustion and missing indexes are detected by gRPC
// status code; the legacy "429 Too Many Requests" text match is kept as a
// fallback for errors that surface through the REST control plane.
func wrapServiceError(err error, fallback error) error {
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.ResourceExhausted:
			return fmt.Errorf("%w: %s", index.ErrQuotaExhausted, st.Message())
		case codes.NotFound:
			return fmt.Errorf("%w: %s", index.ErrNotFound, st.Message())
		}
	}

	message := err.Error()
	if strings.Contains(message, "429") && strings.Contains(message, "Too Many Requests") {
		return fmt.Errorf("%w: %s", index.ErrQuotaExhausted, message)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
