// Package commands implements the CLI commands for pagelens.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagelens/pagelens/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pagelens",
	Short: "Fetch web pages, extract structured content, and analyze it with an LLM",
	Long: `Pagelens fetches a web page through a resilient multi-strategy pipeline
(direct HTTP first, headless browser fallback), extracts a structured view of
its markup, and can chunk the content and run it through a language model.

Examples:
  # Fetch a page and print its structured content
  pagelens fetch example.com --structured

  # Summarize a page with a local Ollama model
  pagelens analyze https://example.com --type summarize

  # Ask for specific information in plain English
  pagelens parse https://example.com -d "all product names and prices"

  # See what a page offers for extraction
  pagelens suggest https://example.com`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.pagelens.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".pagelens")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PAGELENS")
	viper.AutomaticEnv()

	// Also honor the provider SDKs' conventional key variables
	_ = viper.BindEnv("api_key", "ANTHROPIC_API_KEY", "OPENAI_API_KEY")

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
