package harvest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"fieldscope/internal/models"
	"fieldscope/internal/util"
)

// PDFDirSource reads every *.pdf under Dir (non-recursive) and derives a
// paper per file. The title is taken from the first non-empty line of the
// extracted text; the abstract is a leading window of the body.
type PDFDirSource struct {
	Dir string
	// AbstractChars bounds how much extracted text is kept as the
	// abstract. Zero means the default of 2000 runes.
	AbstractChars int
}

func (s *PDFDirSource) Papers(ctx context.Context) ([]models.PaperInput, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read pdf dir: %w", err)
	}

	limit := s.AbstractChars
	if limit <= 0 {
		limit = 2000
	}

	var papers []models.PaperInput
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		text, err := extractPDFText(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", e.Name(), err)
		}
		title, abstract := splitTitleAndAbstract(text, limit)
		if title == "" {
			title = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		papers = append(papers, models.PaperInput{Title: title, Abstract: abstract})
	}
	return papers, nil
}

func extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", util.ErrNoExtractableText
	}
	return text, nil
}

// splitTitleAndAbstract treats the first non-empty line as the title and a
// bounded window of the remaining text as the abstract.
func splitTitleAndAbstract(text string, limit int) (string, string) {
	lines := strings.Split(text, "\n")
	title := ""
	rest := ""
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		title = line
		rest = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		break
	}
	rest = strings.Join(strings.Fields(rest), " ")
	runes := []rune(rest)
	if len(runes) > limit {
		rest = string(runes[:limit])
	}
	return title, rest
}
