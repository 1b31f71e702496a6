package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fieldscope/internal/export"
	"fieldscope/internal/harvest"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Classify a set of papers from a CSV file, a PDF directory, or OpenAlex",
	Long: `Batch loads papers from one source and classifies each of them in order.
A paper that fails is reported and skipped; the rest of the batch still
completes. Results are written to a CSV report.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("csv", "", "CSV file with title and abstract columns")
	batchCmd.Flags().String("pdf-dir", "", "directory of PDF files")
	batchCmd.Flags().String("author", "", "OpenAlex author name to fetch works for")
	batchCmd.Flags().String("author-id", "", "OpenAlex author ID to fetch works for")
	batchCmd.Flags().Int("max-results", 100, "maximum papers to fetch from OpenAlex")
	batchCmd.Flags().String("out", "results.csv", "output report path")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	csvPath, _ := cmd.Flags().GetString("csv")
	pdfDir, _ := cmd.Flags().GetString("pdf-dir")
	author, _ := cmd.Flags().GetString("author")
	authorID, _ := cmd.Flags().GetString("author-id")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	outPath, _ := cmd.Flags().GetString("out")

	var src harvest.Source
	switch {
	case csvPath != "":
		src = &harvest.CSVSource{Path: csvPath}
	case pdfDir != "":
		src = &harvest.PDFDirSource{Dir: pdfDir}
	case author != "" || authorID != "":
		src = &harvest.OpenAlexSource{
			AuthorID:   authorID,
			AuthorName: author,
			MaxResults: maxResults,
			Mailto:     cfg.OpenAlexMailto,
		}
	default:
		return fmt.Errorf("provide one of --csv, --pdf-dir, --author, or --author-id")
	}

	papers, err := src.Papers(cmd.Context())
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		return fmt.Errorf("no papers found")
	}
	fmt.Fprintf(os.Stderr, "classifying %d papers\n", len(papers))

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	results := svc.ClassifyBatch(cmd.Context(), papers)
	succeeded, failed, cached := 0, 0, 0
	for _, r := range results {
		if r.Success() {
			succeeded++
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "failed: %q: %s\n", r.Title, r.ErrorDetail)
		}
		if r.Cached {
			cached++
		}
	}

	if err := export.WriteResultsCSV(outPath, results, svc.FieldCount()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "done: %d succeeded, %d failed, %d cached -> %s\n", succeeded, failed, cached, outPath)
	if failed == len(results) {
		return fmt.Errorf("all %d papers failed classification", failed)
	}
	return nil
}
