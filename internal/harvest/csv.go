package harvest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fieldscope/internal/models"
)

// CSVSource reads papers from a CSV file with a header row. The title and
// abstract columns are located by name; when no title column exists the
// first column is used.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Papers(ctx context.Context) ([]models.PaperInput, error) {
	_ = ctx
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", s.Path, err)
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([]models.PaperInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	titleIdx, abstractIdx, yearIdx, citationsIdx := -1, -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "title":
			titleIdx = i
		case "abstract":
			abstractIdx = i
		case "year":
			yearIdx = i
		case "citations":
			citationsIdx = i
		}
	}
	if titleIdx < 0 {
		titleIdx = 0
	}

	var papers []models.PaperInput
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		p := models.PaperInput{Title: cell(row, titleIdx), Abstract: cell(row, abstractIdx)}
		if y, err := strconv.Atoi(cell(row, yearIdx)); err == nil {
			p.Year = y
		}
		if c, err := strconv.Atoi(cell(row, citationsIdx)); err == nil {
			p.Citations = c
		}
		papers = append(papers, p)
	}
	return papers, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
