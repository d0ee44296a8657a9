package badger

import "fmt"

// Key prefixes for different data types
const (
	ingestRecordPrefix  = "ingrec"
	ingestLibraryPrefix = "ingrecl"
)

// makeIngestKey generates a key for an ingest record by file hash.
func makeIngestKey(fileHash string) []byte {
	return []byte(fmt.Sprintf("%s:%s", ingestRecordPrefix, fileHash))
}

// makeIngestLibraryKey generates a composite key for the library index.
// Format: prefix:library:fileHash
func makeIngestLibraryKey(library, fileHash string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", ingestLibraryPrefix, library, fileHash))
}

// makePartialIngestLibraryKey generates a prefix for scanning all entries of
// a library.
func makePartialIngestLibraryKey(library string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", ingestLibraryPrefix, library))
}
