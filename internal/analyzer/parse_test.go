package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCleanContent(t *testing.T) {
	markup := `<html><body>
		<header>Site chrome</header>
		<nav>Menu</nav>
		<script>var hidden = true;</script>
		<p>Real   content
		here</p>
		<footer>Copyright</footer>
	</body></html>`

	got := CleanContent(markup)
	if got != "Real content here" {
		t.Errorf("CleanContent() = %q, want Real content here", got)
	}
}

func TestCleanContent_Empty(t *testing.T) {
	if got := CleanContent(""); got != "" {
		t.Errorf("CleanContent(\"\") = %q, want empty", got)
	}
}

func TestParse_PromptCarriesContentAndDescription(t *testing.T) {
	provider := &fakeProvider{replies: []string{"Acme Inc"}}
	a := New(provider)

	got, err := a.Parse(context.Background(), "<p>Acme Inc sells widgets</p>", "company names")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != "Acme Inc" {
		t.Errorf("Parse() = %q, want Acme Inc", got)
	}

	prompt := provider.requests[0].Messages[0].Content
	if !strings.Contains(prompt, "Acme Inc sells widgets") {
		t.Error("prompt should carry the cleaned page content")
	}
	if !strings.Contains(prompt, "company names") {
		t.Error("prompt should carry the caller's description")
	}
}

func TestParse_EmptyReplyMeansNoMatch(t *testing.T) {
	provider := &fakeProvider{replies: []string{"   "}}
	a := New(provider)

	got, err := a.Parse(context.Background(), "<p>text</p>", "phone numbers")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != noMatch {
		t.Errorf("Parse() = %q, want %q", got, noMatch)
	}
}

func TestParse_ProviderFailure(t *testing.T) {
	provider := &fakeProvider{errs: []error{errors.New("timeout")}}
	a := New(provider)

	if _, err := a.Parse(context.Background(), "<p>text</p>", "anything"); err == nil {
		t.Error("Parse() should surface provider failures")
	}
}

func TestParse_TruncatesLongContent(t *testing.T) {
	provider := &fakeProvider{replies: []string{"ok"}}
	a := New(provider)

	long := "<p>" + strings.Repeat("word ", 5000) + "</p>"
	if _, err := a.Parse(context.Background(), long, "anything"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	prompt := provider.requests[0].Messages[0].Content
	if !strings.Contains(prompt, "[Note: Content was truncated due to length]") {
		t.Error("over-length content should be truncated with a note")
	}
}
