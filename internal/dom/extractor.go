package dom

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagelens/pagelens/internal/logger"
)

// failureMarker matches the scraper's failure sentinel prefix. Markup that
// carries it is a failed fetch wearing a string costume, not a page.
const failureMarker = "ERROR: "

// Extract parses markup into a Document, resolving link, image and form URLs
// against baseURL. It returns (nil, nil) for empty or sentinel input, and a
// non-nil error only when the markup defeats the parser entirely. Missing or
// malformed substructures yield empty fields, never errors.
func Extract(markup, baseURL string) (*Document, error) {
	if strings.TrimSpace(markup) == "" || strings.HasPrefix(markup, failureMarker) {
		return nil, nil
	}

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		logger.Error("markup parse failed", "error", err)
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		logger.Warn("base URL unparseable, keeping raw references", "base_url", baseURL, "error", err)
		base = nil
	}

	doc := &Document{
		Title:           extractTitle(gq),
		MetaDescription: extractMetaDescription(gq),
		Headings:        extractHeadings(gq),
		Links:           extractLinks(gq, base),
		Images:          extractImages(gq, base),
		Paragraphs:      extractParagraphs(gq),
		Lists:           extractLists(gq),
		Tables:          extractTables(gq),
		Forms:           extractForms(gq, base),
	}

	// Contact scanning mutates the tree (script/style removal), so it runs
	// after every structural extractor is done with it.
	doc.Contact = extractContactInfo(gq)

	return doc, nil
}

func extractTitle(gq *goquery.Document) string {
	title := strings.TrimSpace(gq.Find("title").First().Text())
	if title == "" {
		return NoTitle
	}
	return title
}

func extractMetaDescription(gq *goquery.Document) string {
	desc, _ := gq.Find(`meta[name="description"]`).First().Attr("content")
	return desc
}

func extractHeadings(gq *goquery.Document) map[string][]string {
	headings := map[string][]string{"h1": {}, "h2": {}, "h3": {}}
	for _, level := range []string{"h1", "h2", "h3"} {
		gq.Find(level).Each(func(_ int, s *goquery.Selection) {
			headings[level] = append(headings[level], strings.TrimSpace(s.Text()))
		})
	}
	return headings
}

func extractLinks(gq *goquery.Document, base *url.URL) []Link {
	var links []Link
	gq.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		href, _ := s.Attr("href")
		resolved := resolveRef(base, href)
		if resolved == nil {
			return
		}
		links = append(links, Link{
			Text:     text,
			URL:      resolved.String(),
			External: base != nil && resolved.Host != base.Host,
		})
	})
	return links
}

func extractImages(gq *goquery.Document, base *url.URL) []Image {
	var images []Image
	gq.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			return
		}
		resolved := resolveRef(base, src)
		if resolved == nil {
			return
		}
		alt, _ := s.Attr("alt")
		title, _ := s.Attr("title")
		images = append(images, Image{URL: resolved.String(), Alt: alt, Title: title})
	})
	return images
}

func extractParagraphs(gq *goquery.Document) []string {
	var paragraphs []string
	gq.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

func extractLists(gq *goquery.Document) []List {
	var lists []List
	gq.Find("ul, ol").Each(func(_ int, s *goquery.Selection) {
		var items []string
		s.Find("li").Each(func(_ int, li *goquery.Selection) {
			items = append(items, strings.TrimSpace(li.Text()))
		})
		if len(items) == 0 {
			return
		}
		lists = append(lists, List{Kind: goquery.NodeName(s), Items: items})
	})
	return lists
}

func extractTables(gq *goquery.Document) []Table {
	var tables []Table
	gq.Find("table").Each(func(_ int, t *goquery.Selection) {
		var table Table
		t.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var row []string
			tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				row = append(row, strings.TrimSpace(cell.Text()))
			})
			if len(row) > 0 {
				table = append(table, row)
			}
		})
		if len(table) > 0 {
			tables = append(tables, table)
		}
	})
	return tables
}

func extractForms(gq *goquery.Document, base *url.URL) []Form {
	var forms []Form
	gq.Find("form").Each(func(_ int, f *goquery.Selection) {
		action, _ := f.Attr("action")
		if action != "" {
			if resolved := resolveRef(base, action); resolved != nil {
				action = resolved.String()
			}
		}
		method, ok := f.Attr("method")
		if !ok || method == "" {
			method = "get"
		}

		form := Form{Action: action, Method: strings.ToLower(method)}
		f.Find("input, textarea, select").Each(func(_ int, in *goquery.Selection) {
			inputType, ok := in.Attr("type")
			if !ok || inputType == "" {
				inputType = goquery.NodeName(in)
			}
			name, _ := in.Attr("name")
			placeholder, _ := in.Attr("placeholder")
			_, required := in.Attr("required")
			form.Inputs = append(form.Inputs, FormInput{
				Type:        inputType,
				Name:        name,
				Placeholder: placeholder,
				Required:    required,
			})
		})
		forms = append(forms, form)
	})
	return forms
}

// resolveRef resolves ref against base, returning nil for unparseable refs.
// With no usable base the reference is kept as-is.
func resolveRef(base *url.URL, ref string) *url.URL {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return nil
	}
	if base == nil {
		return parsed
	}
	return base.ResolveReference(parsed)
}
