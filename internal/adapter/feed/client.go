// Package feed fetches and parses the syndication feed.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/feedgrab/feedgrab/internal/domain"
	"github.com/feedgrab/feedgrab/internal/port"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

// Client loads a feed document over HTTP and parses it into domain items.
// Unlike enclosure downloads, the feed document itself is small, so the
// whole request is bounded by a timeout.
type Client struct {
	parser *gofeed.Parser
	logger *zap.Logger
}

// Ensure Client implements port.FeedSource
var _ port.FeedSource = (*Client)(nil)

// New creates a feed Client.
func New(logger *zap.Logger) *Client {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 30 * time.Second}
	return &Client{parser: parser, logger: logger}
}

// Load fetches and parses the feed at url. Any failure here aborts the run
// before a single download starts.
func (c *Client) Load(ctx context.Context, url string) (*domain.Feed, error) {
	parsed, err := c.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("load feed %s: %w", url, err)
	}

	f := &domain.Feed{
		Title:       parsed.Title,
		Link:        parsed.Link,
		Description: parsed.Description,
		Items:       make([]domain.Item, 0, len(parsed.Items)),
	}

	for _, it := range parsed.Items {
		item := domain.Item{Title: it.Title}
		if len(it.Enclosures) > 0 {
			item.EnclosureURL = it.Enclosures[0].URL
		}
		f.Items = append(f.Items, item)
	}

	c.logger.Info("feed loaded",
		zap.String("title", f.Title),
		zap.String("link", f.Link),
		zap.String("description", f.Description),
		zap.Int("items", len(f.Items)))

	return f, nil
}
