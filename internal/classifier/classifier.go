// Package classifier orchestrates prompt building, the remote LLM call with
// retry, response parsing, normalization, and caching.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fieldscope/internal/cache"
	"fieldscope/internal/config"
	"fieldscope/internal/models"
	"fieldscope/internal/providers"
	"fieldscope/internal/retry"
	"fieldscope/internal/taxonomy"
)

const (
	defaultFieldCount = 6
	maxResponseTokens = 300
	callTemperature   = 0.1
)

// Service is the single classification entry point. Construction-time
// configuration is never mutated afterwards.
type Service struct {
	backend    providers.Backend
	registry   *taxonomy.Registry
	store      cache.Store
	policy     retry.Policy
	prices     *PriceTable
	fieldCount int
	timeout    time.Duration
	provider   string
	model      string
}

func New(cfg config.Config, backend providers.Backend, store cache.Store) (*Service, error) {
	if backend == nil {
		b, err := providers.New(cfg.Provider, cfg.Model, time.Duration(cfg.TimeoutSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		backend = b
	}
	if store == nil {
		if cfg.CacheEnabled {
			store = cache.NewMemory()
		} else {
			store = cache.Nop{}
		}
	}
	prices, err := LoadPrices(cfg.PriceTablePath)
	if err != nil {
		return nil, err
	}
	policy := retry.DefaultPolicy()
	if cfg.MaxAttempts > 0 {
		policy.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.BackoffSeconds > 0 {
		policy.BaseDelay = time.Duration(cfg.BackoffSeconds) * time.Second
	}
	fieldCount := cfg.FieldCount
	if fieldCount <= 0 {
		fieldCount = defaultFieldCount
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	model := cfg.Model
	if model == "" {
		model = providers.DefaultModel(cfg.Provider)
	}
	return &Service{
		backend:    backend,
		registry:   taxonomy.Default(),
		store:      store,
		policy:     policy,
		prices:     prices,
		fieldCount: fieldCount,
		timeout:    timeout,
		provider:   cfg.Provider,
		model:      model,
	}, nil
}

// FieldCount reports the configured number of assignments per paper.
func (s *Service) FieldCount() int {
	return s.fieldCount
}

// Classify resolves one paper to exactly FieldCount assignments. All failure
// paths return an error-status result; nothing escapes as a raised error.
func (s *Service) Classify(ctx context.Context, title, abstract string) models.Result {
	key := cache.Key(title, abstract)
	if fields, ok, err := s.store.Get(ctx, key); err != nil {
		log.Printf("cache get failed, treating as miss: %v", err)
	} else if ok {
		return models.Result{
			Title:    title,
			Abstract: abstract,
			Fields:   fields,
			Status:   models.StatusSuccess,
			Cached:   true,
		}
	}

	prompt := BuildPrompt(title, abstract, s.registry, s.fieldCount)

	var raw string
	var info providers.ProviderInfo
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		var callErr error
		raw, info, callErr = s.backend.Complete(callCtx, providers.CompletionRequest{
			System:      SystemPrompt,
			Prompt:      prompt,
			MaxTokens:   maxResponseTokens,
			Temperature: callTemperature,
		})
		return callErr
	}, providers.IsRetryable)
	if err != nil {
		return s.errorResult(title, abstract, info, fmt.Sprintf("completion failed: %v", err))
	}

	pairs, perr := ParseResponse(raw, s.registry.CanonicalNames())
	if perr != nil {
		detail := perr.Error()
		var pe *ParseError
		if errors.As(perr, &pe) {
			// Keep the whole response around; the snippet in the log line
			// is rarely enough to see what the model actually sent.
			log.Printf("classify %q: %v", title, pe)
			detail = "response matched no known format: " + pe.Raw
		}
		return s.errorResult(title, abstract, info, detail)
	}
	if len(pairs) == 0 {
		return s.errorResult(title, abstract, info, "empty field list in response")
	}

	fields := s.resolve(Normalize(pairs, s.fieldCount))
	if err := s.store.Put(ctx, key, fields); err != nil {
		log.Printf("cache put failed: %v", err)
	}
	return models.Result{
		Title:    title,
		Abstract: abstract,
		Fields:   models.CloneFields(fields),
		Status:   models.StatusSuccess,
		Provider: info.Name,
		Model:    info.Model,
	}
}

// ClassifyBatch processes papers sequentially in input order. A failed item
// never aborts the batch; cancellation takes effect between items, and
// skipped items are reported as error results so output stays aligned with
// input.
func (s *Service) ClassifyBatch(ctx context.Context, papers []models.PaperInput) []models.Result {
	results := make([]models.Result, 0, len(papers))
	for i := 0; i < len(papers); i++ {
		if err := ctx.Err(); err != nil {
			for ; i < len(papers); i++ {
				p := papers[i]
				results = append(results, s.errorResult(p.Title, p.Abstract, providers.ProviderInfo{}, "batch cancelled: "+err.Error()))
			}
			break
		}
		p := papers[i]
		results = append(results, s.Classify(ctx, p.Title, p.Abstract))
	}
	return results
}

// resolve attaches human-readable names. Labels are matched as codes first,
// then as field names (freeform responses); anything else keeps its label as
// the code and renders with an Unknown name.
func (s *Service) resolve(pairs []RawField) []models.FieldAssignment {
	out := make([]models.FieldAssignment, 0, len(pairs))
	for _, p := range pairs {
		code := p.Label
		if _, ok := s.registry.Lookup(code); !ok {
			if f, ok := s.registry.MatchName(p.Label); ok {
				code = f.Code
			}
		}
		out = append(out, models.FieldAssignment{
			Code:       code,
			Name:       s.registry.Name(code),
			Percentage: p.Percentage,
		})
	}
	return out
}

// PlaceholderFields builds n placeholder assignments sharing the confidence
// budget equally. Failed classifications carry these so every result has the
// same number of fields regardless of outcome.
func PlaceholderFields(n int) []models.FieldAssignment {
	if n <= 0 {
		n = defaultFieldCount
	}
	placeholder := taxonomy.Default().Placeholder()
	equal := 100.0 / float64(n)
	fields := make([]models.FieldAssignment, n)
	for i := range fields {
		fields[i] = models.FieldAssignment{
			Code:       placeholder.Code,
			Name:       placeholder.Name,
			Percentage: equal,
		}
	}
	return fields
}

// errorResult builds the placeholder result for a failed classification.
func (s *Service) errorResult(title, abstract string, info providers.ProviderInfo, detail string) models.Result {
	return models.Result{
		Title:       title,
		Abstract:    abstract,
		Fields:      PlaceholderFields(s.fieldCount),
		Status:      models.StatusError,
		ErrorDetail: detail,
		Provider:    info.Name,
		Model:       info.Model,
	}
}
