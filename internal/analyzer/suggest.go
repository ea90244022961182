package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagelens/pagelens/internal/logger"
)

// maxSuggestions caps the suggestion list at the most relevant entries.
const maxSuggestions = 8

var (
	suggestEmailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	suggestPhonePattern = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	pricePatterns       = []*regexp.Regexp{
		regexp.MustCompile(`\$\d+`),
		regexp.MustCompile(`\d+\s*USD`),
		regexp.MustCompile(`(?i)price:`),
		regexp.MustCompile(`(?i)cost:`),
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		regexp.MustCompile(`\b\w+\s+\d{1,2},?\s+\d{4}\b`),
	}
)

// structural checks: presence of an element type implies an extraction
// opportunity worth suggesting.
var structuralChecks = []struct {
	selector   string
	suggestion string
}{
	{"h1", "Main headings and titles"},
	{"p", "All paragraph text content"},
	{"a[href]", "All links and URLs"},
	{"img", "Image sources and alt text"},
	{"ul, ol", "List items and bullet points"},
	{"table", "Table data and structured information"},
	{"form", "Form fields and input elements"},
}

// Suggest inspects markup and proposes what could be extracted from it,
// based on the structures present and patterns in the visible text. It never
// fails: unparseable markup just yields no suggestions.
func Suggest(markup string) []string {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		logger.Warn("suggestion scan failed to parse markup", "error", err)
		return nil
	}

	var suggestions []string
	for _, check := range structuralChecks {
		if gq.Find(check.selector).Length() > 0 {
			suggestions = append(suggestions, check.suggestion)
		}
	}

	text := gq.Text()
	if suggestEmailPattern.MatchString(text) {
		suggestions = append(suggestions, "Email addresses")
	}
	if suggestPhonePattern.MatchString(text) {
		suggestions = append(suggestions, "Phone numbers")
	}
	if anyMatch(pricePatterns, text) {
		suggestions = append(suggestions, "Prices and pricing information")
	}
	if anyMatch(datePatterns, text) {
		suggestions = append(suggestions, "Dates and timestamps")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
