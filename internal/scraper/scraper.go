package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pagelens/pagelens/internal/dom"
	"github.com/pagelens/pagelens/internal/logger"
)

// Sentinel errors surfaced by Scrape.
var (
	// ErrEmptyURL is returned when no URL was provided.
	ErrEmptyURL = errors.New("no URL provided")

	// ErrAllStrategiesFailed is returned when every fetch strategy has been
	// tried and none produced markup.
	ErrAllStrategiesFailed = errors.New("all fetch strategies failed")
)

// failureMarker prefixes the legacy string form of a failed fetch. Simple
// callers distinguish success from failure by checking for this prefix.
const failureMarker = "ERROR: "

// FailureText renders an error as the legacy failure sentinel string.
func FailureText(err error) string {
	if err == nil {
		return ""
	}
	return failureMarker + err.Error()
}

// IsFailure reports whether a string carries the failure sentinel prefix.
func IsFailure(s string) bool {
	return strings.HasPrefix(s, failureMarker)
}

// Result is the outcome of a successful fetch.
type Result struct {
	// URL is the normalized URL the page was fetched from.
	URL string

	// HTML is the raw markup.
	HTML string

	// Document is the structured extraction, populated only when requested.
	// It may be nil even then: a markup that defeats the extractor is not a
	// fetch failure.
	Document *dom.Document
}

// Scraper orchestrates the fetch strategies: it tries each in priority order
// until one yields markup, and normalizes the final outcome. Each strategy is
// tried exactly once per call; this is a fallback chain, not a retry loop.
type Scraper struct {
	strategies []Strategy
}

// New creates a Scraper with the standard chain: direct retrieval first,
// automated browser second.
func New(cfg Config) *Scraper {
	return &Scraper{strategies: []Strategy{
		NewStaticStrategy(cfg),
		NewBrowserStrategy(cfg),
	}}
}

// NewWithStrategies creates a Scraper over an explicit strategy chain.
func NewWithStrategies(strategies ...Strategy) *Scraper {
	return &Scraper{strategies: strategies}
}

// NormalizeURL prefixes scheme-less input with https://.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "https://" + rawURL
	}
	return rawURL
}

// Scrape fetches one page. When wantStructured is set, the structured
// document is extracted from the markup and bundled into the result.
func (s *Scraper) Scrape(ctx context.Context, rawURL string, wantStructured bool) (Result, error) {
	targetURL := NormalizeURL(rawURL)
	if targetURL == "" {
		return Result{}, ErrEmptyURL
	}

	logger.Debug("scrape starting", "url", targetURL, "structured", wantStructured)

	var html string
	var causes []string
	for _, strategy := range s.strategies {
		markup, err := strategy.Fetch(ctx, targetURL)
		if err != nil {
			logger.Warn("fetch strategy failed", "strategy", strategy.Name(), "url", targetURL, "error", err)
			causes = append(causes, fmt.Sprintf("%s: %v", strategy.Name(), err))
			continue
		}
		if markup == "" {
			// An empty body from a nominally successful fetch is a miss,
			// not a page; let the next strategy try.
			logger.Warn("fetch strategy returned empty markup", "strategy", strategy.Name(), "url", targetURL)
			causes = append(causes, fmt.Sprintf("%s: empty response body", strategy.Name()))
			continue
		}
		logger.Debug("fetch strategy succeeded", "strategy", strategy.Name(), "bytes", len(markup))
		html = markup
		break
	}

	if html == "" {
		return Result{}, fmt.Errorf("%w: %s", ErrAllStrategiesFailed, strings.Join(causes, "; "))
	}

	result := Result{URL: targetURL, HTML: html}

	if wantStructured {
		doc, err := dom.Extract(html, targetURL)
		if err != nil {
			// A fetch that succeeded stays a success; the caller just gets
			// no structured view.
			logger.Warn("structured extraction failed", "url", targetURL, "error", err)
		}
		result.Document = doc
	}

	return result, nil
}

// Close releases resources held by the strategies.
func (s *Scraper) Close() error {
	var firstErr error
	for _, strategy := range s.strategies {
		if err := strategy.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
