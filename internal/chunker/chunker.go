// Package chunker splits normalized page text into bounded, overlapping
// segments sized for language-model consumption.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Chunk is one bounded slice of the normalized source text.
type Chunk struct {
	Text  string `json:"text" yaml:"text"`
	Index int    `json:"index" yaml:"index"`
}

// Options bounds the chunking output.
type Options struct {
	// MaxSize is the maximum chunk length in bytes.
	MaxSize int `validate:"gt=0"`

	// Overlap is how many trailing bytes of one chunk reappear at the start
	// of the next, so context survives the cut.
	Overlap int `validate:"gte=0,ltfield=MaxSize"`
}

// DefaultOptions returns the standard chunking parameters.
func DefaultOptions() Options {
	return Options{MaxSize: 1000, Overlap: 200}
}

var validate = validator.New()

// Validate reports whether the options are usable.
func (o Options) Validate() error {
	return validate.Struct(o)
}

// separators are tried in order when looking for a natural cut point:
// paragraph breaks first, then sentence-ending punctuation, then spaces.
// A raw byte cut is the last resort.
var separators = []string{"\n\n", "\n", ". ", "! ", "? ", " "}

var whitespace = regexp.MustCompile(`\s+`)

// Normalize collapses every whitespace run (including newlines) to a single
// space and trims the result.
func Normalize(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// Split normalizes text and cuts it into chunks of at most MaxSize bytes,
// preferring natural boundaries. Adjacent chunks share Overlap bytes where
// the source is long enough, extended backwards to the nearest rune boundary
// so a chunk never starts mid-rune; the first chunk has no leading overlap
// and the last no trailing one. Empty input yields an empty, non-nil slice.
//
// Chunks are exact substrings of the normalized text: concatenating them with
// overlaps removed reconstructs it.
func Split(text string, opts Options) ([]Chunk, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	norm := Normalize(text)
	if norm == "" {
		return []Chunk{}, nil
	}

	var chunks []Chunk
	start := 0
	for {
		if len(norm)-start <= opts.MaxSize {
			chunks = append(chunks, Chunk{Text: norm[start:], Index: len(chunks)})
			break
		}

		end := splitPoint(norm, start, start+opts.MaxSize)
		chunks = append(chunks, Chunk{Text: norm[start:end], Index: len(chunks)})

		next := end - opts.Overlap
		for next > start && !utf8.RuneStart(norm[next]) {
			next--
		}
		if next <= start {
			// Overlap would stall or rewind; progress beats context.
			next = end
		}
		start = next
	}

	return chunks, nil
}

// splitPoint finds the best cut position in (start, limit], trying each
// separator class in preference order within the window and cutting just
// after the last occurrence. With no separator in reach it cuts at limit,
// backed up to a rune boundary.
func splitPoint(text string, start, limit int) int {
	window := text[start:limit]
	for _, sep := range separators {
		if idx := strings.LastIndex(window, sep); idx > 0 {
			return start + idx + len(sep)
		}
	}
	for limit > start+1 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return limit
}
