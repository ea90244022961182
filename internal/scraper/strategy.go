// Package scraper implements the multi-strategy page-fetch pipeline.
//
// Two strategies are available: a direct HTTP fetch (fast, works for most
// pages) and a headless-browser fetch (slow, covers script-rendered pages
// and sites with bot countermeasures). The Scraper tries them in that order
// and normalizes the outcome.
package scraper

import (
	"context"
	"time"
)

// Strategy is one concrete method of retrieving page markup.
type Strategy interface {
	// Fetch retrieves the raw markup for an absolute URL. It never panics;
	// every transport-level problem is returned as an error.
	Fetch(ctx context.Context, url string) (string, error)

	// Name identifies the strategy in logs and error messages.
	Name() string

	// Close releases any resources held by the strategy.
	Close() error
}

// Config holds common strategy configuration.
type Config struct {
	Timeout     time.Duration // per-request bound for the direct strategy
	SettleDelay time.Duration // post-navigation wait for the browser strategy
}

// DefaultConfig returns the defaults used by both strategies.
func DefaultConfig() Config {
	return Config{
		Timeout:     30 * time.Second,
		SettleDelay: 3 * time.Second,
	}
}
