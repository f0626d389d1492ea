package downloader

import (
	"context"
	"io"

	"github.com/feedgrab/feedgrab/internal/domain"
	"github.com/feedgrab/feedgrab/internal/filter"
	"github.com/feedgrab/feedgrab/internal/port"
	"go.uber.org/zap"
)

// Worker downloads a single feed item: it validates the item, applies the
// title filter, fetches the enclosure through the redirect-following
// fetcher and streams the payload to disk. Every invocation is independent
// of every other.
type Worker struct {
	fetcher port.Fetcher
	store   port.FileStore
	filter  *filter.TitleFilter
	maxHops int
	logger  *zap.Logger
}

// NewWorker creates a Worker. maxHops bounds the redirect chain of each
// fetch attempt.
func NewWorker(
	fetcher port.Fetcher,
	store port.FileStore,
	titleFilter *filter.TitleFilter,
	maxHops int,
	logger *zap.Logger,
) *Worker {
	if maxHops <= 0 {
		maxHops = defaultMaxRedirects
	}
	return &Worker{
		fetcher: fetcher,
		store:   store,
		filter:  titleFilter,
		maxHops: maxHops,
		logger:  logger,
	}
}

// Run processes one item and returns its outcome. Failures are reported in
// the outcome, never propagated; a partially written file is left in place
// on a transfer failure.
func (w *Worker) Run(ctx context.Context, item domain.Item) domain.Outcome {
	if !item.Complete() {
		return domain.Outcome{
			Item:   item,
			Status: domain.StatusFailed,
			Err:    &domain.MalformedItemError{Title: item.Title, EnclosureURL: item.EnclosureURL},
		}
	}

	w.logger.Info("parsed feed item",
		zap.String("title", item.Title),
		zap.String("enclosure", item.EnclosureURL))

	if !w.filter.Allowed(item.Title) {
		w.logger.Info("skipping item by filter rules", zap.String("title", item.Title))
		return domain.Outcome{Item: item, Status: domain.StatusSkipped}
	}

	target := domain.Target{
		URL:      item.EnclosureURL,
		Filename: domain.FilenameFromTitle(item.Title),
	}

	w.logger.Info("downloading file",
		zap.String("filename", target.Filename),
		zap.String("url", target.URL))

	body, finalURL, err := w.fetcher.Fetch(ctx, target.URL, w.maxHops)
	if err != nil {
		return domain.Outcome{Item: item, Status: domain.StatusFailed, Filename: target.Filename, Err: err}
	}
	defer body.Close()

	// The file is only created once the fetch has succeeded, so a
	// fetch-side failure never leaves an empty file behind.
	file, path, err := w.store.Create(target.Filename)
	if err != nil {
		return domain.Outcome{Item: item, Status: domain.StatusFailed, Filename: target.Filename, Err: err}
	}

	written, copyErr := io.Copy(file, body)
	closeErr := file.Close()

	if copyErr != nil {
		return domain.Outcome{
			Item:         item,
			Status:       domain.StatusFailed,
			Filename:     target.Filename,
			BytesWritten: written,
			Err:          &domain.IOError{Path: path, Err: copyErr},
		}
	}
	if closeErr != nil {
		return domain.Outcome{
			Item:         item,
			Status:       domain.StatusFailed,
			Filename:     target.Filename,
			BytesWritten: written,
			Err:          &domain.IOError{Path: path, Err: closeErr},
		}
	}

	w.logger.Info("download complete",
		zap.String("filename", target.Filename),
		zap.String("final_url", finalURL),
		zap.Int64("bytes", written))

	return domain.Outcome{
		Item:         item,
		Status:       domain.StatusDownloaded,
		Filename:     target.Filename,
		BytesWritten: written,
	}
}
