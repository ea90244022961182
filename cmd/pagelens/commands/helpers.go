package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagelens/pagelens/internal/llm"
	"github.com/pagelens/pagelens/internal/logger"
	"github.com/pagelens/pagelens/internal/output"
	"github.com/pagelens/pagelens/internal/scraper"
)

// addFetchFlags registers the flags shared by every page-fetching command.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("timeout", 30*time.Second, "request timeout per strategy")
	cmd.Flags().Duration("settle", 3*time.Second, "browser settle delay after navigation")
}

// addProviderFlags registers the flags shared by every LLM-backed command.
func addProviderFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("provider", "p", "", "LLM provider: anthropic, openai, ollama (auto-detects from env vars)")
	flags.StringP("model", "m", "", "model name (provider-specific)")
	flags.StringP("api-key", "k", "", "API key (or use env var)")
	flags.String("base-url", "", "custom API base URL")

	_ = viper.BindPFlag("provider", flags.Lookup("provider"))
	_ = viper.BindPFlag("model", flags.Lookup("model"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
}

// addOutputFlags registers the output destination and format flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().String("format", "json", "output format: json, jsonl, yaml")
}

// newScraper builds the standard fallback chain from command flags.
func newScraper(cmd *cobra.Command) *scraper.Scraper {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	settle, _ := cmd.Flags().GetDuration("settle")
	return scraper.New(scraper.Config{
		Timeout:     timeout,
		SettleDelay: settle,
	})
}

// newProvider builds an LLM provider from flags, config and environment.
func newProvider() (llm.Provider, error) {
	name := viper.GetString("provider")
	apiKey := viper.GetString("api_key")

	if name == "" {
		detected, detectedKey := llm.DetectProvider()
		name = detected
		if apiKey == "" {
			apiKey = detectedKey
		}
		logger.Debug("provider auto-detected", "provider", name)
	}

	model := viper.GetString("model")
	if model == "" {
		model = llm.GetDefaultModel(name)
	}

	return llm.NewProvider(name, llm.ProviderConfig{
		APIKey:  apiKey,
		BaseURL: viper.GetString("base_url"),
		Model:   model,
		Timeout: 60 * time.Second,
	})
}

// newWriter opens the output destination and wraps it in a format writer.
// The returned closer flushes and, for files, closes the destination.
func newWriter(cmd *cobra.Command) (output.Writer, func() error, error) {
	format, _ := cmd.Flags().GetString("format")
	path, _ := cmd.Flags().GetString("output")

	var dest io.Writer = os.Stdout
	var file *os.File
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file: %w", err)
		}
		dest = f
		file = f
	}

	w, err := output.NewWriter(dest, output.Format(format))
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, nil, err
	}

	closer := func() error {
		if err := w.Flush(); err != nil {
			return err
		}
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return w, closer, nil
}
