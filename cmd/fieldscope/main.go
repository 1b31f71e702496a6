// Package main is the entry point for the fieldscope CLI. It classifies
// papers into subject fields from the command line, without requiring the
// API server or a Temporal worker.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fieldscope/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "fieldscope",
	Short: "Classify academic papers into subject fields with an LLM",
	Long: `fieldscope sends paper titles and abstracts to an LLM provider and maps
the response onto a fixed subject-field taxonomy with confidence
percentages. Results are cached locally so repeated runs over the same
papers cost nothing.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load(".env")
		cfg = config.Load()
		if v, _ := cmd.Flags().GetString("provider"); v != "" {
			cfg.Provider = v
			cfg.Model = ""
		}
		if v, _ := cmd.Flags().GetString("model"); v != "" {
			cfg.Model = v
		}
		if v, _ := cmd.Flags().GetInt("fields"); v > 0 {
			cfg.FieldCount = v
		}
		if v, _ := cmd.Flags().GetBool("no-cache"); v {
			cfg.CacheEnabled = false
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("provider", "", "LLM provider (openai, openrouter, claude, mock)")
	rootCmd.PersistentFlags().String("model", "", "model name override")
	rootCmd.PersistentFlags().Int("fields", 0, "number of fields per paper")
	rootCmd.PersistentFlags().Bool("no-cache", false, "skip the local classification cache")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
