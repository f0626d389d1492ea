// Package httpfetch implements the redirect-following payload fetcher.
package httpfetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/feedgrab/feedgrab/internal/domain"
	"github.com/feedgrab/feedgrab/internal/port"
	"go.uber.org/zap"
)

// Fetcher issues GET requests and walks redirect chains itself, one hop at
// a time, so the hop budget and per-hop logging stay under its control.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// Ensure Fetcher implements port.Fetcher
var _ port.Fetcher = (*Fetcher)(nil)

// New creates a Fetcher. The transport has no total download timeout; only
// the response headers are bounded, since payload transfers can legitimately
// run for a long time.
func New(logger *zap.Logger) *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,

		// Enclosures are already-compressed media
		DisableCompression: true,

		ResponseHeaderTimeout: 30 * time.Second,
	}

	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			// Redirects are followed manually in Fetch
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Timeout: 0,
		},
		logger: logger,
	}
}

// NewWithClient creates a Fetcher around a caller-supplied HTTP client.
// The client must not follow redirects on its own.
func NewWithClient(client *http.Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{client: client, logger: logger}
}

// Fetch GETs rawURL and follows redirection responses (status 300-310) up
// to maxHops, returning the streaming body of the final 200 response and
// the URL it was served from. Any other status is terminal. A transport
// failure at any hop terminates the attempt immediately.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, maxHops int) (io.ReadCloser, string, error) {
	location := rawURL

	for hop := 0; hop < maxHops; hop++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, location, &domain.TransportError{URL: location, Err: err}
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, location, &domain.TransportError{URL: location, Err: err}
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp.Body, location, nil

		case resp.StatusCode >= 300 && resp.StatusCode <= 310:
			status := resp.StatusCode
			header := resp.Header.Get("Location")
			resp.Body.Close()

			if header == "" {
				return nil, location, &domain.MissingRedirectTargetError{Status: status, URL: location}
			}

			next, err := url.Parse(header)
			if err != nil {
				return nil, location, &domain.InvalidRedirectTargetError{
					Status:   status,
					URL:      location,
					Location: header,
					Err:      err,
				}
			}

			// Resolve relative redirect targets against the current URL
			if !next.IsAbs() {
				base, err := url.Parse(location)
				if err != nil {
					return nil, location, &domain.InvalidRedirectTargetError{
						Status:   status,
						URL:      location,
						Location: header,
						Err:      err,
					}
				}
				next = base.ResolveReference(next)
			}

			prev := location
			location = next.String()

			f.logger.Info("following redirect",
				zap.Int("status", status),
				zap.String("from", prev),
				zap.String("to", location))

		default:
			status := resp.StatusCode
			resp.Body.Close()
			return nil, location, &domain.UnhandledStatusError{Status: status, URL: location}
		}
	}

	return nil, location, &domain.RedirectLimitExceededError{
		MaxHops:     maxHops,
		LastURL:     location,
		OriginalURL: rawURL,
	}
}
