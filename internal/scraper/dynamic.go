package scraper

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/pagelens/pagelens/internal/logger"
)

// BrowserStrategy fetches pages through a headless Chrome session driven by
// chromedp. It covers script-rendered content the direct strategy cannot see.
//
// Each Fetch owns exactly one browser process. The allocator and all derived
// contexts are cancelled via defer, so the process is torn down on every exit
// path; leaked browsers would otherwise accumulate across retried failures.
type BrowserStrategy struct {
	config Config
}

// NewBrowserStrategy creates an automated-browser strategy.
func NewBrowserStrategy(cfg Config) *BrowserStrategy {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = DefaultConfig().SettleDelay
	}
	return &BrowserStrategy{config: cfg}
}

// Fetch launches a headless browser, navigates to the URL, waits a fixed
// settle period for deferred rendering, and captures the rendered markup.
func (s *BrowserStrategy) Fetch(ctx context.Context, targetURL string) (string, error) {
	logger.Debug("browser fetch starting", "url", targetURL)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("useAutomationExtension", false),
		chromedp.UserAgent(randomUserAgent()),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, s.config.Timeout)
	defer cancelTimeout()

	var html string
	actions := []chromedp.Action{
		injectStealthScript(),
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body"),
		// Scripted pages often keep loading after the ready event; give
		// deferred content a fixed window to land.
		chromedp.Sleep(s.config.SettleDelay),
		chromedp.OuterHTML("html", &html),
	}

	if err := chromedp.Run(timeoutCtx, actions...); err != nil {
		return "", fmt.Errorf("browser fetch of %s: %w", targetURL, err)
	}

	logger.Debug("browser fetch complete", "url", targetURL, "bytes", len(html))
	return html, nil
}

// Name identifies the strategy.
func (s *BrowserStrategy) Name() string {
	return "browser"
}

// Close releases resources. Browser processes are scoped to each Fetch call,
// so there is nothing to release here.
func (s *BrowserStrategy) Close() error {
	return nil
}
