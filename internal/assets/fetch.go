package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

// FetchConfig controls remote image downloads.
type FetchConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// CollyFetcher downloads remote image bytes using the Colly collector.
type CollyFetcher struct {
	cfg           FetchConfig
	baseCollector *colly.Collector
}

// NewCollyFetcher builds a CollyFetcher.
func NewCollyFetcher(cfg FetchConfig) *CollyFetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	c := colly.NewCollector(colly.Async(false))
	// Explicit asset references are fetched as-is; robots rules apply to
	// crawling, not to operator-supplied image URLs.
	c.IgnoreRobotsTxt = true
	return &CollyFetcher{cfg: cfg, baseCollector: c}
}

// Fetch executes a single GET and returns the response body verbatim.
func (f *CollyFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch canceled: %w", err)
	}

	collector := f.baseCollector.Clone()
	if f.cfg.UserAgent != "" {
		collector.UserAgent = f.cfg.UserAgent
	}
	collector.SetRequestTimeout(f.cfg.Timeout)

	var (
		body     []byte
		fetchErr error
	)
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := collector.Visit(rawURL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", rawURL, err)
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fmt.Errorf("download %s: %w", rawURL, fetchErr)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("download %s: empty response", rawURL)
	}
	return body, nil
}
