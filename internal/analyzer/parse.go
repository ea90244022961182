package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagelens/pagelens/internal/chunker"
	"github.com/pagelens/pagelens/internal/llm"
	"github.com/pagelens/pagelens/internal/logger"
)

// maxParseContent caps how much cleaned text is sent to the model for a
// free-form parse; anything longer is truncated with a note.
const maxParseContent = 8000

// noMatch is returned when the model finds nothing matching the description.
const noMatch = "No matching information found."

// CleanContent strips markup down to readable text: scripts, styles and
// chrome elements (header, footer, nav) are dropped and whitespace collapsed.
// Unparseable markup falls back to a truncated slice of the raw input.
func CleanContent(markup string) string {
	if markup == "" {
		return ""
	}

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		logger.Warn("content cleaning failed, using raw fallback", "error", err)
		if len(markup) > 5000 {
			return markup[:5000]
		}
		return markup
	}

	gq.Find("script, style, noscript, header, footer, nav").Remove()
	return chunker.Normalize(gq.Text())
}

// Parse extracts information matching a plain-English description from page
// markup by asking the model directly. The reply is trimmed but otherwise
// passed through uninterpreted.
func (a *Analyzer) Parse(ctx context.Context, markup, description string) (string, error) {
	cleaned := CleanContent(markup)
	if len(cleaned) > maxParseContent {
		logger.Debug("parse content truncated", "original", len(cleaned), "max", maxParseContent)
		cleaned = cleaned[:maxParseContent] + "\n\n[Note: Content was truncated due to length]"
	}

	prompt := fmt.Sprintf(parseTemplate, cleaned, description)
	resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("parse request failed: %w", err)
	}

	result := strings.TrimSpace(resp.Content)
	if result == "" {
		return noMatch, nil
	}
	return result, nil
}
