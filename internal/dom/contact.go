package dom

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Three phone shapes: plain-dashed US numbers, parenthesized area codes,
// and loosely-bounded international +-prefixed runs.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.]?\d{4}`),
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,14}\b`),
}

// extractContactInfo scans the page's visible text for email and phone
// patterns. Script and style content is dropped first so minified JS does
// not masquerade as phone numbers.
func extractContactInfo(gq *goquery.Document) ContactInfo {
	gq.Find("script, style, noscript").Remove()
	text := gq.Text()

	emails := dedupe(emailPattern.FindAllString(text, -1))

	var phones []string
	for _, pattern := range phonePatterns {
		phones = append(phones, pattern.FindAllString(text, -1)...)
	}

	return ContactInfo{Emails: emails, Phones: dedupe(phones)}
}

// dedupe removes repeated values, keeping first-seen order. Matching is
// case-sensitive: Admin@x.com and admin@x.com are distinct finds.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
