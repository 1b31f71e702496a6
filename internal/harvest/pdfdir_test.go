package harvest

import (
	"strings"
	"testing"
)

func TestSplitTitleAndAbstract(t *testing.T) {
	text := "\n\n  A Paper Title  \nAuthor One, Author Two\nWe present a method\nfor doing things."
	title, abstract := splitTitleAndAbstract(text, 2000)
	if title != "A Paper Title" {
		t.Fatalf("title %q", title)
	}
	if abstract != "Author One, Author Two We present a method for doing things." {
		t.Fatalf("abstract %q", abstract)
	}
}

func TestSplitTitleAndAbstractBoundsLength(t *testing.T) {
	text := "Title\n" + strings.Repeat("word ", 100)
	_, abstract := splitTitleAndAbstract(text, 20)
	if len([]rune(abstract)) != 20 {
		t.Fatalf("abstract length %d, want 20", len([]rune(abstract)))
	}
}

func TestSplitTitleAndAbstractEmpty(t *testing.T) {
	title, abstract := splitTitleAndAbstract("   \n \n", 100)
	if title != "" || abstract != "" {
		t.Fatalf("got %q / %q", title, abstract)
	}
}
