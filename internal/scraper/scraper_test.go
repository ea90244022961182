package scraper

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeStrategy is a scripted Strategy for orchestration tests.
type fakeStrategy struct {
	name    string
	html    string
	err     error
	calls   int
	lastURL string
}

func (f *fakeStrategy) Fetch(_ context.Context, url string) (string, error) {
	f.calls++
	f.lastURL = url
	if f.err != nil {
		return "", f.err
	}
	return f.html, nil
}

func (f *fakeStrategy) Name() string { return f.name }
func (f *fakeStrategy) Close() error { return nil }

func TestScrape_FirstStrategyWins(t *testing.T) {
	a := &fakeStrategy{name: "a", html: "<html>from a</html>"}
	b := &fakeStrategy{name: "b", html: "<html>from b</html>"}
	s := NewWithStrategies(a, b)

	result, err := s.Scrape(context.Background(), "https://example.com", false)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if result.HTML != a.html {
		t.Errorf("HTML = %q, want first strategy's markup", result.HTML)
	}
	if b.calls != 0 {
		t.Errorf("second strategy called %d times, want 0", b.calls)
	}
}

func TestScrape_FallsBackToSecondStrategy(t *testing.T) {
	a := &fakeStrategy{name: "a", err: errors.New("connection refused")}
	b := &fakeStrategy{name: "b", html: "<html>rendered</html>"}
	s := NewWithStrategies(a, b)

	result, err := s.Scrape(context.Background(), "https://example.com", false)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if result.HTML != b.html {
		t.Errorf("HTML = %q, want fallback strategy's markup", result.HTML)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("strategy calls = %d/%d, want 1/1", a.calls, b.calls)
	}
}

func TestScrape_EmptyBodyFallsBack(t *testing.T) {
	a := &fakeStrategy{name: "a", html: ""}
	b := &fakeStrategy{name: "b", html: "<html>rendered</html>"}
	s := NewWithStrategies(a, b)

	result, err := s.Scrape(context.Background(), "https://example.com", false)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if result.HTML != b.html {
		t.Errorf("HTML = %q, want fallback strategy's markup", result.HTML)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("strategy calls = %d/%d, want 1/1", a.calls, b.calls)
	}
}

func TestScrape_EmptyBodyFromAllStrategies(t *testing.T) {
	a := &fakeStrategy{name: "a", html: ""}
	b := &fakeStrategy{name: "b", html: ""}
	s := NewWithStrategies(a, b)

	_, err := s.Scrape(context.Background(), "https://example.com", false)
	if !errors.Is(err, ErrAllStrategiesFailed) {
		t.Fatalf("Scrape() error = %v, want ErrAllStrategiesFailed", err)
	}
	if !strings.Contains(err.Error(), "a: empty response body") ||
		!strings.Contains(err.Error(), "b: empty response body") {
		t.Errorf("error %q should name each strategy's empty body", err)
	}
}

func TestScrape_AllStrategiesFail(t *testing.T) {
	a := &fakeStrategy{name: "a", err: errors.New("status 403")}
	b := &fakeStrategy{name: "b", err: errors.New("browser crashed")}
	s := NewWithStrategies(a, b)

	result, err := s.Scrape(context.Background(), "https://example.com", false)
	if !errors.Is(err, ErrAllStrategiesFailed) {
		t.Fatalf("Scrape() error = %v, want ErrAllStrategiesFailed", err)
	}
	if result.HTML != "" {
		t.Errorf("HTML = %q, want empty on terminal failure", result.HTML)
	}

	// Both causes should be reported, not silently swallowed
	if !strings.Contains(err.Error(), "status 403") || !strings.Contains(err.Error(), "browser crashed") {
		t.Errorf("error %q should carry both strategy causes", err)
	}

	// Each strategy tried exactly once: fallback chain, not a retry loop
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("strategy calls = %d/%d, want 1/1", a.calls, b.calls)
	}
}

func TestScrape_EmptyURL(t *testing.T) {
	a := &fakeStrategy{name: "a", html: "<html></html>"}
	s := NewWithStrategies(a)

	_, err := s.Scrape(context.Background(), "   ", false)
	if !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("Scrape() error = %v, want ErrEmptyURL", err)
	}
	if a.calls != 0 {
		t.Error("no strategy should run for empty input")
	}
}

func TestScrape_NormalizesSchemelessURL(t *testing.T) {
	a := &fakeStrategy{name: "a", html: "<html></html>"}
	s := NewWithStrategies(a)

	result, err := s.Scrape(context.Background(), "example.com", false)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if a.lastURL != "https://example.com" {
		t.Errorf("strategy received %q, want https://example.com", a.lastURL)
	}
	if result.URL != "https://example.com" {
		t.Errorf("result URL = %q, want https://example.com", result.URL)
	}
}

func TestScrape_StructuredExtraction(t *testing.T) {
	a := &fakeStrategy{name: "a", html: `<html><head><title>Hi</title></head><body><table><tr><td>A</td><td>B</td></tr></table></body></html>`}
	s := NewWithStrategies(a)

	result, err := s.Scrape(context.Background(), "https://example.com", true)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if result.Document == nil {
		t.Fatal("Document should be populated when requested")
	}
	if result.Document.Title != "Hi" {
		t.Errorf("Title = %q, want Hi", result.Document.Title)
	}
	if len(result.Document.Tables) != 1 {
		t.Fatalf("Tables count = %d, want 1", len(result.Document.Tables))
	}
}

func TestScrape_NoStructuredExtractionByDefault(t *testing.T) {
	a := &fakeStrategy{name: "a", html: "<html><title>Hi</title></html>"}
	s := NewWithStrategies(a)

	result, err := s.Scrape(context.Background(), "https://example.com", false)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if result.Document != nil {
		t.Error("Document should be nil unless requested")
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/a?b=c", "https://example.com/a?b=c"},
		{"  example.com/path  ", "https://example.com/path"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFailureText_Marker(t *testing.T) {
	text := FailureText(ErrAllStrategiesFailed)
	if !IsFailure(text) {
		t.Errorf("FailureText output %q should carry the failure marker", text)
	}
	if IsFailure("<html>fine</html>") {
		t.Error("ordinary markup should not read as a failure")
	}
	if FailureText(nil) != "" {
		t.Error("nil error should render as empty string")
	}
}
