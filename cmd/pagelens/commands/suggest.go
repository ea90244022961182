package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pagelens/pagelens/internal/analyzer"
)

// suggestionReport lists extraction opportunities found on a page.
type suggestionReport struct {
	URL         string   `json:"url" yaml:"url"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <url>",
	Short: "Suggest what could be extracted from a page",
	Long: `Fetch a page and scan its structure and text for extraction opportunities:
headings, links, tables, forms, contact patterns, prices, dates.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	addFetchFlags(suggestCmd)
	addOutputFlags(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := newScraper(cmd)
	defer s.Close()

	result, err := s.Scrape(ctx, args[0], false)
	if err != nil {
		return err
	}

	w, closeWriter, err := newWriter(cmd)
	if err != nil {
		return err
	}
	report := suggestionReport{
		URL:         result.URL,
		Suggestions: analyzer.Suggest(result.HTML),
	}
	if err := w.Write(report); err != nil {
		return err
	}
	return closeWriter()
}
