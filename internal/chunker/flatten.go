package chunker

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagelens/pagelens/internal/dom"
	"github.com/pagelens/pagelens/internal/logger"
)

// FlattenDocument renders a structured document as one text stream for
// chunking: title line, description line, level-tagged headings, paragraphs,
// then list items, in that order.
func FlattenDocument(doc *dom.Document) string {
	if doc == nil {
		return ""
	}

	var parts []string
	if doc.Title != "" && doc.Title != dom.NoTitle {
		parts = append(parts, "Title: "+doc.Title)
	}
	if doc.MetaDescription != "" {
		parts = append(parts, "Description: "+doc.MetaDescription)
	}
	for _, level := range []string{"h1", "h2", "h3"} {
		for _, heading := range doc.Headings[level] {
			parts = append(parts, fmt.Sprintf("%s: %s", strings.ToUpper(level), heading))
		}
	}
	parts = append(parts, doc.Paragraphs...)
	for _, list := range doc.Lists {
		parts = append(parts, list.Items...)
	}

	return strings.Join(parts, "\n")
}

// VisibleText strips script and style content from raw markup and returns
// the remaining text. Unparseable markup falls back to the input unchanged;
// the chunker's normalization copes with the noise.
func VisibleText(markup string) string {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		logger.Warn("visible-text parse failed, using raw markup", "error", err)
		return markup
	}
	gq.Find("script, style").Remove()
	return gq.Text()
}
