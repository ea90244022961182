package analyzer

import (
	"strings"
	"testing"
)

func TestSuggest_StructuralElements(t *testing.T) {
	markup := `<html><body>
		<h1>Store</h1>
		<p>Welcome</p>
		<a href="/cart">Cart</a>
		<img src="/hero.png" alt="Hero">
		<ul><li>one</li></ul>
		<table><tr><td>x</td></tr></table>
		<form><input name="q"></form>
	</body></html>`

	got := Suggest(markup)
	want := []string{
		"Main headings and titles",
		"All paragraph text content",
		"All links and URLs",
		"Image sources and alt text",
		"List items and bullet points",
		"Table data and structured information",
		"Form fields and input elements",
	}
	for _, w := range want {
		if !contains(got, w) {
			t.Errorf("Suggest() missing %q; got %v", w, got)
		}
	}
}

func TestSuggest_TextPatterns(t *testing.T) {
	markup := `<body><div>
		Contact: info@example.com or 555-123-4567.
		Price: $49 per unit. Shipped March 3, 2024.
	</div></body>`

	got := Suggest(markup)
	for _, w := range []string{
		"Email addresses",
		"Phone numbers",
		"Prices and pricing information",
		"Dates and timestamps",
	} {
		if !contains(got, w) {
			t.Errorf("Suggest() missing %q; got %v", w, got)
		}
	}
}

func TestSuggest_CappedAtMax(t *testing.T) {
	markup := `<body>
		<h1>t</h1><p>p</p><a href="/x">x</a><img src="/i.png">
		<ul><li>l</li></ul><table><tr><td>c</td></tr></table>
		<form><input></form>
		mail@example.com 555-123-4567 $10 1/2/2024
	</body>`

	got := Suggest(markup)
	if len(got) > maxSuggestions {
		t.Errorf("Suggest() returned %d entries, cap is %d", len(got), maxSuggestions)
	}
}

func TestSuggest_NothingForBareText(t *testing.T) {
	got := Suggest("<body><div>plain words only</div></body>")
	for _, s := range got {
		if strings.Contains(s, "Email") || strings.Contains(s, "Phone") {
			t.Errorf("Suggest() = %v, no contact patterns present", got)
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
