package scraper

import (
	"context"
	"fmt"

	"github.com/gocolly/colly/v2"

	"github.com/pagelens/pagelens/internal/logger"
)

// StaticStrategy fetches pages with a single direct HTTP GET via Colly,
// impersonating a desktop browser. It is the cheap first attempt; it does
// not retry and it cannot render script-driven content.
type StaticStrategy struct {
	config Config
}

// NewStaticStrategy creates a direct-retrieval strategy.
func NewStaticStrategy(cfg Config) *StaticStrategy {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &StaticStrategy{config: cfg}
}

// Fetch performs one HTTP GET and returns the response body. Any non-success
// status, connection error, timeout or TLS failure is returned as an error;
// nothing escapes as a panic.
func (s *StaticStrategy) Fetch(ctx context.Context, targetURL string) (string, error) {
	logger.Debug("static fetch starting", "url", targetURL)

	c := colly.NewCollector(
		colly.UserAgent(randomUserAgent()),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(s.config.Timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.5")
		r.Headers.Set("Accept-Encoding", "gzip, deflate")
		r.Headers.Set("Connection", "keep-alive")
	})

	var body string
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = fmt.Errorf("request returned status %d: %w", r.StatusCode, err)
			return
		}
		fetchErr = fmt.Errorf("request failed: %w", err)
	})

	if err := c.Visit(targetURL); err != nil {
		return "", fmt.Errorf("direct fetch of %s: %w", targetURL, err)
	}
	if fetchErr != nil {
		return "", fmt.Errorf("direct fetch of %s: %w", targetURL, fetchErr)
	}

	logger.Debug("static fetch complete", "url", targetURL, "bytes", len(body))
	return body, nil
}

// Name identifies the strategy.
func (s *StaticStrategy) Name() string {
	return "static"
}

// Close releases resources. The static strategy holds none.
func (s *StaticStrategy) Close() error {
	return nil
}
