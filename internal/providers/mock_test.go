package providers

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMockBackendDeterministic(t *testing.T) {
	m := NewMockBackend()
	req := CompletionRequest{Prompt: "classify this paper"}
	a, _, err := m.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	b, _, _ := m.Complete(context.Background(), req)
	if a != b {
		t.Fatal("same prompt produced different responses")
	}
	c, _, _ := m.Complete(context.Background(), CompletionRequest{Prompt: "a different paper"})
	if a == c {
		t.Fatal("different prompts produced identical responses")
	}
}

func TestMockBackendEmitsValidJSON(t *testing.T) {
	m := NewMockBackend()
	raw, info, err := m.Complete(context.Background(), CompletionRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if info.Name != "mock" {
		t.Fatalf("provider name %q", info.Name)
	}
	var items []struct {
		Code       int     `json:"code"`
		Percentage float64 `json:"percentage"`
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("mock response is not a JSON array: %v\n%s", err, raw)
	}
	if len(items) != 6 {
		t.Fatalf("got %d entries, want 6", len(items))
	}
	var total float64
	for _, it := range items {
		total += it.Percentage
	}
	if total != 100 {
		t.Fatalf("mock percentages sum to %.1f, want 100", total)
	}
}

func TestFactoryKnownProviders(t *testing.T) {
	for _, name := range []string{"openai", "openrouter", "claude", "mock"} {
		b, err := New(name, "", 0)
		if err != nil {
			t.Fatalf("provider %s: %v", name, err)
		}
		if b == nil {
			t.Fatalf("provider %s: nil backend", name)
		}
	}
	if _, err := New("nope", "", 0); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
