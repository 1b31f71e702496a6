package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single paper by title and abstract",
	Long: `Classify sends one paper to the configured LLM provider and prints the
assigned subject fields with confidence percentages.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("title", "", "paper title (required)")
	classifyCmd.Flags().String("abstract", "", "paper abstract")
	classifyCmd.Flags().Bool("json", false, "output the full result as JSON")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		return fmt.Errorf("--title is required")
	}
	abstract, _ := cmd.Flags().GetString("abstract")
	asJSON, _ := cmd.Flags().GetBool("json")

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	res := svc.Classify(cmd.Context(), title, abstract)
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if !res.Success() {
		return fmt.Errorf("classification failed: %s", res.ErrorDetail)
	}
	if res.Cached {
		fmt.Fprintln(os.Stderr, "(cached)")
	}
	for _, f := range res.Fields {
		fmt.Printf("%-6s %-45s %6.2f%%\n", f.Code, f.Name, f.Percentage)
	}
	return nil
}
