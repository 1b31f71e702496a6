package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"fieldscope/internal/config"
)

func TestEstimateCostKnownModel(t *testing.T) {
	cfg := config.Config{Provider: "openai", Model: "gpt-4o-mini"}
	svc, err := New(cfg, &stubBackend{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	est := svc.EstimateCost(1000)
	if est.NumPapers != 1000 {
		t.Fatalf("num papers %d", est.NumPapers)
	}
	// 1000 papers * 400 prompt tokens at $0.150/MTok = $0.06
	// 1000 papers * 50 completion tokens at $0.600/MTok = $0.03
	if est.InputCost != 0.06 {
		t.Fatalf("input cost %.4f, want 0.06", est.InputCost)
	}
	if est.OutputCost != 0.03 {
		t.Fatalf("output cost %.4f, want 0.03", est.OutputCost)
	}
	if est.TotalCost != 0.09 {
		t.Fatalf("total cost %.4f, want 0.09", est.TotalCost)
	}
	if est.CostPerPaper != 0.0001 {
		t.Fatalf("cost per paper %.6f, want 0.0001", est.CostPerPaper)
	}
}

func TestEstimateCostUnknownModelFallsBack(t *testing.T) {
	cfg := config.Config{Provider: "openai", Model: "some-future-model"}
	svc, err := New(cfg, &stubBackend{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	est := svc.EstimateCost(100)
	if est.TotalCost <= 0 {
		t.Fatalf("fallback pricing produced %.4f, want a positive estimate", est.TotalCost)
	}
}

func TestEstimateCostZeroPapers(t *testing.T) {
	cfg := config.Config{Provider: "openai", Model: "gpt-4o-mini"}
	svc, err := New(cfg, &stubBackend{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	est := svc.EstimateCost(0)
	if est.TotalCost != 0 || est.CostPerPaper != 0 {
		t.Fatalf("zero papers: %+v", est)
	}
}

func TestLoadPricesOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prices.yaml")
	doc := `providers:
  openai:
    gpt-4o-mini:
      input_per_mtok: 1.0
      output_per_mtok: 2.0
  custom:
    default:
      input_per_mtok: 5.0
      output_per_mtok: 7.0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadPrices(path)
	if err != nil {
		t.Fatalf("load prices: %v", err)
	}
	p := table.Lookup("openai", "gpt-4o-mini")
	if p.InputPerMTok != 1.0 || p.OutputPerMTok != 2.0 {
		t.Fatalf("overlay not applied: %+v", p)
	}
	// Untouched defaults survive the overlay.
	if d := table.Lookup("claude", "claude-3-haiku-20240307"); d.InputPerMTok != 0.25 {
		t.Fatalf("default price lost: %+v", d)
	}
	if c := table.Lookup("custom", "anything"); c.InputPerMTok != 5.0 {
		t.Fatalf("new provider missing: %+v", c)
	}
}
