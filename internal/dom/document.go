// Package dom extracts a normalized structured document from page markup.
//
// Extraction is tolerant by design: arbitrary third-party markup is often
// malformed, so every substructure is pulled out independently and a broken
// table or form costs only that field, never the whole document.
package dom

// Document is the normalized, typed representation of one page's
// extractable content. It is built once from markup plus a base URL and
// never mutated afterwards.
type Document struct {
	Title           string              `json:"title" yaml:"title"`
	MetaDescription string              `json:"meta_description" yaml:"meta_description"`
	Headings        map[string][]string `json:"headings" yaml:"headings"`
	Links           []Link              `json:"links" yaml:"links"`
	Images          []Image             `json:"images" yaml:"images"`
	Paragraphs      []string            `json:"paragraphs" yaml:"paragraphs"`
	Lists           []List              `json:"lists" yaml:"lists"`
	Tables          []Table             `json:"tables" yaml:"tables"`
	Forms           []Form              `json:"forms" yaml:"forms"`
	Contact         ContactInfo         `json:"contact_info" yaml:"contact_info"`
}

// Link is one anchor with visible text. URL is always absolute, resolved
// against the page the link was found on.
type Link struct {
	Text     string `json:"text" yaml:"text"`
	URL      string `json:"url" yaml:"url"`
	External bool   `json:"is_external" yaml:"is_external"`
}

// Image is one image reference with its absolute source URL.
type Image struct {
	URL   string `json:"src" yaml:"src"`
	Alt   string `json:"alt" yaml:"alt"`
	Title string `json:"title" yaml:"title"`
}

// List is one ordered or unordered list with at least one item.
type List struct {
	Kind  string   `json:"type" yaml:"type"` // "ol" or "ul"
	Items []string `json:"items" yaml:"items"`
}

// Table is the cell text of one table, row by row.
type Table [][]string

// Form describes one form element and its input fields.
type Form struct {
	Action string      `json:"action" yaml:"action"`
	Method string      `json:"method" yaml:"method"`
	Inputs []FormInput `json:"inputs" yaml:"inputs"`
}

// FormInput describes one input, textarea or select inside a form.
type FormInput struct {
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Required    bool   `json:"required" yaml:"required"`
}

// ContactInfo holds contact-like patterns found in the page text,
// deduplicated in first-seen order.
type ContactInfo struct {
	Emails []string `json:"emails" yaml:"emails"`
	Phones []string `json:"phones" yaml:"phones"`
}

// NoTitle is the Title value used when the page has no title element.
const NoTitle = "No title found"
