package port

import (
	"context"
	"io"

	"github.com/feedgrab/feedgrab/internal/domain"
)

// Fetcher retrieves a payload stream from a URL, following redirects up to
// maxHops. On success the returned body is positioned at the first payload
// byte and must be closed by the caller. finalURL is the URL the payload
// was actually served from.
type Fetcher interface {
	Fetch(ctx context.Context, url string, maxHops int) (body io.ReadCloser, finalURL string, err error)
}

// FileStore opens destination files under a fixed output directory.
type FileStore interface {
	// Dir returns the configured output directory.
	Dir() string

	// Create ensures the output directory exists and opens a truncated,
	// writable file for filename inside it. The caller owns the handle
	// and must close it on every exit path.
	Create(filename string) (io.WriteCloser, string, error)
}

// FeedSource fetches and parses the syndication feed. A failure here is
// fatal to the whole run; no worker is spawned after one.
type FeedSource interface {
	Load(ctx context.Context, url string) (*domain.Feed, error)
}
