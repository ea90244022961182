// Package analyzer feeds chunked page content through a language model.
//
// The model is treated as opaque: prompts go in, trimmed text comes out.
// Failures are contained per chunk so one bad completion never aborts the
// rest of an analysis run.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pagelens/pagelens/internal/chunker"
	"github.com/pagelens/pagelens/internal/llm"
	"github.com/pagelens/pagelens/internal/logger"
)

// ChunkResult is the model's verdict on one chunk. Err carries the failure
// message when the completion failed; Analysis is empty in that case.
type ChunkResult struct {
	Index    int    `json:"chunk_index" yaml:"chunk_index"`
	Preview  string `json:"chunk_preview" yaml:"chunk_preview"`
	Analysis string `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Length   int    `json:"chunk_length" yaml:"chunk_length"`
	Err      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Config holds analyzer settings.
type Config struct {
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.2,
		MaxTokens:   2048,
	}
}

// Analyzer runs per-chunk analysis against one provider.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// Option configures the analyzer.
type Option func(*Config)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *Config) {
		c.Temperature = t
	}
}

// WithMaxTokens caps the response length per chunk.
func WithMaxTokens(n int) Option {
	return func(c *Config) {
		c.MaxTokens = n
	}
}

// New creates an Analyzer.
func New(provider llm.Provider, opts ...Option) *Analyzer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Analyzer{provider: provider, config: cfg}
}

// Analyze sends each chunk to the model with the instruction for typ and
// collects one result per chunk, in order. A failed completion is recorded
// on its chunk's result and the remaining chunks still run.
func (a *Analyzer) Analyze(ctx context.Context, chunks []chunker.Chunk, typ AnalysisType) []ChunkResult {
	logger.Debug("analysis starting",
		"provider", a.provider.Name(),
		"type", string(typ),
		"chunks", len(chunks))

	instruction := promptFor(typ)
	results := make([]ChunkResult, 0, len(chunks))

	for _, chunk := range chunks {
		result := ChunkResult{
			Index:   chunk.Index,
			Preview: preview(chunk.Text),
			Length:  len(chunk.Text),
		}

		prompt := fmt.Sprintf("%s\n\n%s\n\nAnalysis:", instruction, chunk.Text)
		resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
			MaxTokens:   a.config.MaxTokens,
			Temperature: a.config.Temperature,
		})
		if err != nil {
			logger.Warn("chunk analysis failed", "chunk", chunk.Index, "error", err)
			result.Err = err.Error()
			results = append(results, result)
			continue
		}

		result.Analysis = strings.TrimSpace(resp.Content)
		results = append(results, result)
	}

	logger.Debug("analysis complete", "results", len(results))
	return results
}

// preview returns roughly the first 200 bytes of a chunk for display, cut
// back to a rune boundary so the result stays valid UTF-8.
func preview(text string) string {
	if len(text) <= 200 {
		return text
	}
	cut := 200
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
