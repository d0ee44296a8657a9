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


package media

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Metadata describes a media file as reported by the downloader.
type Metadata struct {
	Title    string
	Author   string
	Duration float64 // seconds
	URL      string  // empty for local files with no source URL
}

// infoSidecar mirrors the subset of the yt-dlp .info.json format we read.
type infoSidecar struct {
	Title      string  `json:"title"`
	Uploader   string  `json:"uploader"`
	Channel    string  `json:"channel"`
	Duration   float64 `json:"duration"`
	WebpageURL string  `json:"webpage_url"`
}

// SidecarPath returns the metadata sidecar path for a media file:
// the media extension replaced with ".info.json" (the yt-dlp convention).
func SidecarPath(mediaPath string) string {
	return strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + ".info.json"
}

// Lookup resolves title, author, duration and source URL for a media file
// from its .info.json sidecar. When no sidecar exists the file stem is used
// as the title and the remaining fields stay zero; a missing sidecar is not
// an error, only an unreadable or malformed one is.
func Lookup(mediaPath string) (*Metadata, error) {
	sidecar := SidecarPath(mediaPath)

	data, err := os.ReadFile(sidecar)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no metadata sidecar, using file stem as title", "file", mediaPath)
			base := filepath.Base(mediaPath)
			return &Metadata{Title: strings.TrimSuffix(base, filepath.Ext(base))}, nil
		}
		return nil, fmt.Errorf("failed to read metadata sidecar %s: %w", sidecar, err)
	}

	var info infoSidecar
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse metadata sidecar %s: %w", sidecar, err)
	}

	meta := &Metadata{
		Title:    info.Title,
		Author:   info.Uploader,
		Duration: info.Duration,
		URL:      info.WebpageURL,
	}
	if meta.Author == "" {
		meta.Author = info.Channel
	}
	if meta.Title == "" {
		base := filepath.Base(mediaPath)
		meta.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return meta, nil
}
