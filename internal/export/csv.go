// Package export renders classification results into report files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fieldscope/internal/models"
)

// WriteResultsCSV writes one row per paper with fixed-width field columns:
// title, abstract, status, error, then field_i_code / field_i_name /
// field_i_confidence for i in 1..fieldCount. The write goes through a temp
// file and rename so a partial report is never left behind.
func WriteResultsCSV(path string, results []models.Result, fieldCount int) error {
	if fieldCount <= 0 {
		for _, r := range results {
			if len(r.Fields) > fieldCount {
				fieldCount = len(r.Fields)
			}
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".report-*.csv")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(headerRow(fieldCount)); err != nil {
		tmp.Close()
		return fmt.Errorf("write report header: %w", err)
	}
	for _, r := range results {
		if err := w.Write(resultRow(r, fieldCount)); err != nil {
			tmp.Close()
			return fmt.Errorf("write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}

func headerRow(fieldCount int) []string {
	header := []string{"title", "abstract", "status", "error"}
	for i := 1; i <= fieldCount; i++ {
		header = append(header,
			fmt.Sprintf("field_%d_code", i),
			fmt.Sprintf("field_%d_name", i),
			fmt.Sprintf("field_%d_confidence", i),
		)
	}
	return header
}

func resultRow(r models.Result, fieldCount int) []string {
	row := []string{r.Title, r.Abstract, r.Status, r.ErrorDetail}
	for i := 0; i < fieldCount; i++ {
		if i < len(r.Fields) {
			f := r.Fields[i]
			row = append(row, f.Code, f.Name, strconv.FormatFloat(f.Percentage, 'f', 2, 64))
		} else {
			row = append(row, "", "", "")
		}
	}
	return row
}
