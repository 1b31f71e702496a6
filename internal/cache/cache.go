// Package cache memoizes classification results keyed on paper content.
package cache

import (
	"context"
	"strings"

	"fieldscope/internal/models"
	"fieldscope/internal/util"
)

// Store is a read-through memo of classification results. Get never performs
// remote work; Put overwrites unconditionally. There is no eviction: batch
// jobs have bounded input, and long-running deployments should swap in a
// backend with a TTL policy.
type Store interface {
	Get(ctx context.Context, key string) ([]models.FieldAssignment, bool, error)
	Put(ctx context.Context, key string, fields []models.FieldAssignment) error
}

// Key derives the content digest for a paper. Casing and surrounding
// whitespace of title and abstract do not affect the key.
func Key(title, abstract string) string {
	content := strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(abstract))
	return util.SHA256Hex([]byte(content))
}

// Nop is the disabled-cache store: every lookup misses and writes vanish.
type Nop struct{}

func (Nop) Get(ctx context.Context, key string) ([]models.FieldAssignment, bool, error) {
	return nil, false, nil
}

func (Nop) Put(ctx context.Context, key string, fields []models.FieldAssignment) error {
	return nil
}
