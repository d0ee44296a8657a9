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


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"

	"github.com/soniform/chunkdex"
	"github.com/soniform/chunkdex/ai"
	"github.com/soniform/chunkdex/core"
	"github.com/soniform/chunkdex/index"
	"github.com/soniform/chunkdex/index/pinecone"
	"github.com/soniform/chunkdex/ingest"
)

func main() {
	// Pick up PINECONE_API_KEY / OPENAI_API_KEY etc. from a local .env
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "chunkdex",
		Usage: "Ingest transcribed media chunks into a Pinecone index",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Embed chunked media files and upsert them into the index",
				ArgsUsage: "FILE...",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "library",
						Usage:    "Library name to tag vectors with",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "author",
						Usage:    "Author name to tag vectors with",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "source",
						Usage:    "Source type of the media files (youtube, audio)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "index",
						Usage:   "Pinecone index name",
						EnvVars: []string{pinecone.EnvIndexName},
					},
					&cli.StringFlag{
						Name:  "namespace",
						Usage: "Pinecone namespace",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the BadgerDB ingest ledger (omit to disable skip tracking)",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Re-ingest files the ledger already records",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of files to process concurrently",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL (defaults to the hosted OpenAI API)",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: ai.DefaultEmbeddingModel,
					},
				},
			},
			{
				Name:   "clear",
				Usage:  "Delete every vector in a library and its ledger entries",
				Action: clearCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "library",
						Usage:    "Library name to clear",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "index",
						Usage:   "Pinecone index name",
						EnvVars: []string{pinecone.EnvIndexName},
					},
					&cli.StringFlag{
						Name:  "namespace",
						Usage: "Pinecone namespace",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the BadgerDB ingest ledger",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// parseSource maps a --source flag value to its source type.
func parseSource(s string) (core.SourceType, error) {
	switch strings.ToLower(s) {
	case "youtube":
		return core.SourceYouTube, nil
	case "audio":
		return core.SourceAudio, nil
	default:
		return 0, fmt.Errorf("invalid source %q: must be one of youtube, audio", s)
	}
}

func newIngestor(ctx context.Context, c *cli.Context) (*chunkdex.Ingestor, error) {
	// Connect to Pinecone, provisioning the index if needed
	indexConfig := pinecone.NewConfig(
		pinecone.WithIndexName(c.String("index")),
		pinecone.WithNamespace(c.String("namespace")),
	)
	if err := indexConfig.Validate(); err != nil {
		return nil, err
	}

	store, err := pinecone.Connect(ctx, indexConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to index: %w", err)
	}

	// The clear command defines no embedding flags; fall back to defaults.
	model := c.String("embedding-model")
	if model == "" {
		model = ai.DefaultEmbeddingModel
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(model),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []chunkdex.IngestorOption{chunkdex.WithAIConfig(aiConfig)}
	if dbPath := c.String("db"); dbPath != "" {
		opts = append(opts, chunkdex.WithLedgerPath(dbPath))
	}

	return chunkdex.NewIngestor(store, opts...)
}

// watchSignals sets the interrupt flag on the first SIGINT or SIGTERM so
// in-flight uploads stop between batches. Returns a stop function.
func watchSignals(flag *ingest.Flag, logger *slog.Logger) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-ch; ok {
			logger.Info("interrupt received, finishing current batch")
			flag.Set()
		}
	}()
	return func() {
		signal.Stop(ch)
		close(ch)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()
	logger := slog.Default()

	files := c.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("at least one media file is required")
	}

	source, err := parseSource(c.String("source"))
	if err != nil {
		return err
	}

	workers := c.Int("workers")
	if workers < 1 {
		return fmt.Errorf("workers must be greater than 0")
	}

	ingestor, err := newIngestor(ctx, c)
	if err != nil {
		return err
	}
	defer ingestor.Close()

	flag := &ingest.Flag{}
	stop := watchSignals(flag, logger)
	defer stop()

	pool, err := ants.NewPool(workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failed   int
		quotaErr error
	)

	for _, file := range files {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			if flag.Interrupted() {
				return
			}

			err := ingestor.IngestFile(ctx, &chunkdex.FileRequest{
				Path:      file,
				Author:    c.String("author"),
				Library:   c.String("library"),
				Source:    source,
				Force:     c.Bool("force"),
				Interrupt: flag,
			})
			if err != nil {
				mu.Lock()
				defer mu.Unlock()
				if errors.Is(err, index.ErrQuotaExhausted) {
					quotaErr = err
					// No point processing the remaining files.
					flag.Set()
					return
				}
				failed++
				logger.Error("error ingesting file", "file", file, "err", err)
			}
		})
		if err != nil {
			wg.Done()
			return err
		}
	}
	wg.Wait()

	if quotaErr != nil {
		return cli.Exit(fmt.Sprintf("quota exhausted: %v", quotaErr), 1)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to ingest", failed, len(files))
	}
	if flag.Interrupted() {
		logger.Info("ingest interrupted", "files", len(files))
	}
	return nil
}

func clearCommand(c *cli.Context) error {
	ctx := context.Background()

	ingestor, err := newIngestor(ctx, c)
	if err != nil {
		return err
	}
	defer ingestor.Close()

	if err := ingestor.ClearLibrary(ctx, c.String("library")); err != nil {
		return fmt.Errorf("failed to clear library: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
