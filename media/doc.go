// Package media resolves file-level facts about ingested media: a content
// hash of the file and the title/author/duration/URL metadata written by the
// download pipeline as a .info.json sidecar.
package media
