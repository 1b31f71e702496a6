package harvest

import (
	"strings"
	"testing"
)

func TestReadCSVLocatesColumnsByHeader(t *testing.T) {
	doc := `abstract,title,year,citations
"An abstract.","A Title",2021,15
"Another.","Second Title",2022,3
`
	papers, err := readCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("got %d papers, want 2", len(papers))
	}
	p := papers[0]
	if p.Title != "A Title" || p.Abstract != "An abstract." || p.Year != 2021 || p.Citations != 15 {
		t.Fatalf("first paper %+v", p)
	}
}

func TestReadCSVFallsBackToFirstColumn(t *testing.T) {
	doc := `paper,notes
"Untitled Columns Paper","irrelevant"
`
	papers, err := readCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(papers) != 1 || papers[0].Title != "Untitled Columns Paper" {
		t.Fatalf("papers %+v", papers)
	}
	if papers[0].Abstract != "" {
		t.Fatalf("abstract should be empty, got %q", papers[0].Abstract)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	doc := `title,abstract
"Only Title"
"Full Row","With abstract"
`
	papers, err := readCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("got %d papers, want 2", len(papers))
	}
	if papers[0].Abstract != "" || papers[1].Abstract != "With abstract" {
		t.Fatalf("papers %+v", papers)
	}
}
