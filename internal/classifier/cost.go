package classifier

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Assumed average request size for planning estimates. The prompt dominates;
// responses are a short JSON array.
const (
	avgPromptTokens     = 400
	avgCompletionTokens = 50
)

// ModelPrice holds per-million-token rates in USD.
type ModelPrice struct {
	InputPerMTok  float64 `yaml:"input_per_mtok"`
	OutputPerMTok float64 `yaml:"output_per_mtok"`
}

// PriceTable maps provider -> model -> rates. The "default" model key is the
// fallback for models without an explicit entry.
type PriceTable struct {
	Providers map[string]map[string]ModelPrice `yaml:"providers"`
}

func DefaultPrices() *PriceTable {
	return &PriceTable{Providers: map[string]map[string]ModelPrice{
		"openai": {
			"gpt-4o-mini": {InputPerMTok: 0.150, OutputPerMTok: 0.600},
			"default":     {InputPerMTok: 10, OutputPerMTok: 30},
		},
		"openrouter": {
			"openai/gpt-4o-mini": {InputPerMTok: 0.150, OutputPerMTok: 0.600},
			"default":            {InputPerMTok: 10, OutputPerMTok: 30},
		},
		"claude": {
			"claude-3-haiku-20240307": {InputPerMTok: 0.25, OutputPerMTok: 1.25},
			"default":                 {InputPerMTok: 3, OutputPerMTok: 15},
		},
		"mock": {
			"default": {},
		},
	}}
}

// LoadPrices reads a YAML price table, overlaying entries onto the embedded
// defaults. An empty path returns the defaults unchanged.
func LoadPrices(path string) (*PriceTable, error) {
	table := DefaultPrices()
	if path == "" {
		return table, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price table %s: %w", path, err)
	}
	var loaded PriceTable
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("parse price table %s: %w", path, err)
	}
	for provider, byModel := range loaded.Providers {
		if table.Providers[provider] == nil {
			table.Providers[provider] = map[string]ModelPrice{}
		}
		for model, price := range byModel {
			table.Providers[provider][model] = price
		}
	}
	return table, nil
}

func (t *PriceTable) Lookup(provider, model string) ModelPrice {
	byModel, ok := t.Providers[provider]
	if !ok {
		return ModelPrice{}
	}
	if price, ok := byModel[model]; ok {
		return price
	}
	return byModel["default"]
}

type CostEstimate struct {
	NumPapers    int     `json:"num_papers"`
	InputCost    float64 `json:"input_cost"`
	OutputCost   float64 `json:"output_cost"`
	TotalCost    float64 `json:"total_cost"`
	CostPerPaper float64 `json:"cost_per_paper"`
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
}

// EstimateCost is a pure pricing calculation for planning a batch; it
// performs no I/O.
func (s *Service) EstimateCost(numPapers int) CostEstimate {
	price := s.prices.Lookup(s.provider, s.model)
	papers := float64(numPapers)
	inputCost := papers * avgPromptTokens / 1_000_000 * price.InputPerMTok
	outputCost := papers * avgCompletionTokens / 1_000_000 * price.OutputPerMTok
	total := inputCost + outputCost
	perPaper := 0.0
	if numPapers > 0 {
		perPaper = total / papers
	}
	return CostEstimate{
		NumPapers:    numPapers,
		InputCost:    round(inputCost, 2),
		OutputCost:   round(outputCost, 2),
		TotalCost:    round(total, 2),
		CostPerPaper: round(perPaper, 4),
		Provider:     s.provider,
		Model:        s.model,
	}
}

func round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
