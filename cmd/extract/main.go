// One-shot extraction over a mailbox dump, without database or broker.
// Results are written to stdout as JSON; useful for trying out filter
// rules before deploying the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"newsletter_pipeline/internal/config"
	"newsletter_pipeline/internal/domain"
	"newsletter_pipeline/internal/extract"
	"newsletter_pipeline/internal/pipeline"
	"newsletter_pipeline/internal/resolve"
	"newsletter_pipeline/internal/source/jsonfile"
)

func main() {
	mailboxPath := flag.String("mailbox", "mailbox.json", "path to the mailbox dump")
	daysBack := flag.Int("days", 7, "how many days of newsletters to process")
	maxResults := flag.Int("max", 50, "maximum number of newsletters")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request resolve timeout")
	workers := flag.Int("workers", 8, "concurrent redirect resolutions")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := setupLogger(*logLevel)

	source := jsonfile.New(jsonfile.Config{Path: *mailboxPath}, logger)

	service := pipeline.NewService(
		source,
		extract.New(logger),
		resolve.New(*timeout, logger),
		nil, // no persistence
		nil, // built-in filter defaults
		logger,
		config.PipelineConfig{
			ResolveTimeout:   *timeout,
			ResolveWorkers:   *workers,
			MaxLinksPerEmail: 30,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	extraction, stats, err := service.Run(ctx, domain.FetchParams{
		DaysBack:   *daysBack,
		MaxResults: *maxResults,
	}, nil)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]interface{}{
		"extraction": extraction,
		"stats":      stats,
	}); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}
