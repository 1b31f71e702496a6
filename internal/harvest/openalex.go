package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"fieldscope/internal/models"
)

// openAlexWorksBase is the OpenAlex Works endpoint. Var so tests can
// substitute an httptest server.
var openAlexWorksBase = "https://api.openalex.org/works"

// OpenAlexSource lists an author's works from the OpenAlex API. Either the
// OpenAlex author ID (preferred) or a raw author name can be supplied.
type OpenAlexSource struct {
	Client     *http.Client
	AuthorID   string
	AuthorName string
	MaxResults int
	// Mailto is sent for polite pool access.
	Mailto string
}

func (s *OpenAlexSource) Papers(ctx context.Context) ([]models.PaperInput, error) {
	maxResults := s.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}
	if maxResults > 200 {
		maxResults = 200
	}

	params := url.Values{
		"per_page": {fmt.Sprintf("%d", maxResults)},
		"page":     {"1"},
	}
	switch {
	case s.AuthorID != "":
		params.Set("filter", "author.id:"+s.AuthorID)
	case s.AuthorName != "":
		params.Set("filter", "raw_author_name.search:"+s.AuthorName)
	default:
		return nil, fmt.Errorf("openalex source needs an author id or name")
	}
	if s.Mailto != "" {
		params.Set("mailto", s.Mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openAlexWorksBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build openalex request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openalex request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openalex returned HTTP %d", resp.StatusCode)
	}

	var parsed openAlexResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse openalex response: %w", err)
	}

	papers := make([]models.PaperInput, 0, len(parsed.Results))
	for _, work := range parsed.Results {
		papers = append(papers, models.PaperInput{
			Title:     work.Title,
			Abstract:  reconstructAbstract(work.AbstractInvertedIndex),
			Year:      work.PublicationYear,
			Citations: work.CitedByCount,
		})
	}
	return papers, nil
}

type openAlexResponse struct {
	Results []openAlexWork `json:"results"`
}

type openAlexWork struct {
	Title                 string           `json:"title"`
	PublicationYear       int              `json:"publication_year"`
	CitedByCount          int              `json:"cited_by_count"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index"`
}

// reconstructAbstract converts OpenAlex's abstract_inverted_index back to
// plain text. The index maps each word to the positions where it appears.
func reconstructAbstract(inverted map[string][]int) string {
	if len(inverted) == 0 {
		return ""
	}
	type posWord struct {
		pos  int
		word string
	}
	var pairs []posWord
	for word, positions := range inverted {
		for _, pos := range positions {
			pairs = append(pairs, posWord{pos: pos, word: word})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].pos < pairs[j].pos })
	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.word
	}
	return strings.Join(words, " ")
}
