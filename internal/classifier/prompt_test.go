package classifier

import (
	"strings"
	"testing"

	"fieldscope/internal/taxonomy"
)

func TestBuildPromptDeterministic(t *testing.T) {
	reg := taxonomy.Default()
	a := BuildPrompt("Some Title", "Some abstract.", reg, 6)
	b := BuildPrompt("Some Title", "Some abstract.", reg, 6)
	if a != b {
		t.Fatal("identical inputs produced different prompts")
	}
}

func TestBuildPromptContainsPaperAndFields(t *testing.T) {
	reg := taxonomy.Default()
	p := BuildPrompt("Quantum Widgets", "We study widgets.", reg, 6)
	for _, want := range []string{
		"Title: Quantum Widgets",
		"Abstract: We study widgets.",
		"1702-Artificial Intelligence",
		"6 most relevant",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptVariesWithFieldCount(t *testing.T) {
	reg := taxonomy.Default()
	p := BuildPrompt("T", "A", reg, 3)
	if !strings.Contains(p, "3 most relevant") {
		t.Fatal("field count not reflected in prompt")
	}
}
