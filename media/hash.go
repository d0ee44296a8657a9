package media

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/go-crypt/x/blake2b"
)

// FileHash returns the hex-encoded BLAKE2b-256 hash of the file contents.
// The hash identifies a file independently of its name or location, so moved
// or renamed files are still recognized as already ingested.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	defer f.Close()

	h, err := blake2b.New(32, nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
