// Package downloader runs the concurrent, fault-isolated download pass.
package downloader

import (
	"context"
	"sync"

	"github.com/feedgrab/feedgrab/internal/domain"
	"github.com/feedgrab/feedgrab/internal/filter"
	"github.com/feedgrab/feedgrab/internal/port"
	"go.uber.org/zap"
)

const defaultMaxRedirects = 10

// Config contains orchestrator configuration.
type Config struct {
	// Concurrency bounds the number of in-flight downloads.
	// Zero means one goroutine per item with no ceiling.
	Concurrency int

	// MaxRedirects is the hop budget of each fetch attempt.
	MaxRedirects int
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() *Config {
	return &Config{
		Concurrency:  0,
		MaxRedirects: defaultMaxRedirects,
	}
}

// Orchestrator fans a feed out into one concurrent download per item,
// awaits all of them and reports each failure without stopping the others.
type Orchestrator struct {
	config *Config
	worker *Worker
	logger *zap.Logger
}

// New creates an Orchestrator.
func New(
	cfg *Config,
	fetcher port.Fetcher,
	store port.FileStore,
	titleFilter *filter.TitleFilter,
	logger *zap.Logger,
) *Orchestrator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxRedirects <= 0 {
		cfg.MaxRedirects = defaultMaxRedirects
	}

	return &Orchestrator{
		config: cfg,
		worker: NewWorker(fetcher, store, titleFilter, cfg.MaxRedirects, logger),
		logger: logger,
	}
}

// RunAll submits every feed item to a worker and collects all outcomes.
// One item's failure neither cancels nor delays any other item; the run
// itself never fails because of individual items.
func (o *Orchestrator) RunAll(ctx context.Context, feed *domain.Feed) *domain.RunResult {
	outcomes := make(chan domain.Outcome, len(feed.Items))

	var sem chan struct{}
	if o.config.Concurrency > 0 {
		sem = make(chan struct{}, o.config.Concurrency)
	}

	var wg sync.WaitGroup
	for _, item := range feed.Items {
		wg.Add(1)
		go func(item domain.Item) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			outcomes <- o.worker.Run(ctx, item)
		}(item)
	}

	wg.Wait()
	close(outcomes)

	result := &domain.RunResult{Outcomes: make([]domain.Outcome, 0, len(feed.Items))}
	for outcome := range outcomes {
		if outcome.Status == domain.StatusFailed {
			o.logger.Error("item download failed",
				zap.String("title", outcome.Item.Title),
				zap.String("enclosure", outcome.Item.EnclosureURL),
				zap.Error(outcome.Err))
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	o.logger.Info("download pass finished",
		zap.Int("downloaded", result.Downloaded()),
		zap.Int("skipped", result.Skipped()),
		zap.Int("failed", result.Failed()))

	return result
}
