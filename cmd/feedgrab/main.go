package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/feedgrab/feedgrab/internal/adapter/feed"
	"github.com/feedgrab/feedgrab/internal/adapter/filesystem"
	"github.com/feedgrab/feedgrab/internal/adapter/httpfetch"
	"github.com/feedgrab/feedgrab/internal/config"
	"github.com/feedgrab/feedgrab/internal/filter"
	"github.com/feedgrab/feedgrab/internal/logger"
	"github.com/feedgrab/feedgrab/internal/service/downloader"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const version = "0.1.0"

func main() {
	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.L()
	log.Info("starting feedgrab",
		zap.String("version", version),
		zap.String("feed", cfg.Feed.URL),
		zap.String("dir", cfg.Output.Dir),
	)

	// Compile title patterns
	titleFilter, err := filter.New(cfg.Filter.Include, cfg.Filter.Exclude)
	if err != nil {
		log.Fatal("invalid title filter", zap.Error(err))
	}

	ctx := context.Background()

	// Fetch and parse the feed; a failure here aborts the whole run
	source := feed.New(log)
	parsed, err := source.Load(ctx, cfg.Feed.URL)
	if err != nil {
		log.Fatal("failed to load feed", zap.Error(err))
	}

	// Run the download pass
	fetcher := httpfetch.New(log)
	store := filesystem.New(cfg.Output.Dir)

	orchestrator := downloader.New(
		&downloader.Config{
			Concurrency:  cfg.Download.Concurrency,
			MaxRedirects: cfg.Download.MaxRedirects,
		},
		fetcher,
		store,
		titleFilter,
		log,
	)

	// Individual item failures are logged by the orchestrator and never
	// fail the run; only a feed-level failure exits non-zero.
	orchestrator.RunAll(ctx, parsed)
}
