package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pagelens/pagelens/internal/analyzer"
)

var parseCmd = &cobra.Command{
	Use:   "parse <url>",
	Short: "Extract information from a page described in plain English",
	Long: `Fetch a page and ask the language model to extract exactly the information
you describe, with no selectors involved.

Example:
  pagelens parse https://example.com/jobs -d "all job titles and locations"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	addFetchFlags(parseCmd)
	addProviderFlags(parseCmd)
	parseCmd.Flags().StringP("describe", "d", "", "what to extract, in plain English (required)")
	_ = parseCmd.MarkFlagRequired("describe")
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	description, _ := cmd.Flags().GetString("describe")

	s := newScraper(cmd)
	defer s.Close()

	result, err := s.Scrape(ctx, args[0], false)
	if err != nil {
		return err
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}

	extracted, err := analyzer.New(provider).Parse(ctx, result.HTML, description)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, extracted)
	return nil
}
