package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fieldscope/internal/models"
)

// ClassificationRepo persists classification results and doubles as the
// postgres cache backend: Get/Put satisfy cache.Store.
type ClassificationRepo struct {
	db *DB
}

func NewClassificationRepo(db *DB) *ClassificationRepo {
	return &ClassificationRepo{db: db}
}

func (r *ClassificationRepo) Get(ctx context.Context, key string) ([]models.FieldAssignment, bool, error) {
	var raw []byte
	err := r.db.Pool.QueryRow(ctx, `
SELECT fields FROM classifications WHERE cache_key = $1 AND status = 'success'`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select classification: %w", err)
	}
	var fields []models.FieldAssignment
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false, fmt.Errorf("decode cached fields: %w", err)
	}
	return fields, true, nil
}

func (r *ClassificationRepo) Put(ctx context.Context, key string, fields []models.FieldAssignment) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	_, err = r.db.Pool.Exec(ctx, `
INSERT INTO classifications (cache_key, fields, status)
VALUES ($1, $2, 'success')
ON CONFLICT (cache_key)
DO UPDATE SET fields = EXCLUDED.fields, status = 'success', updated_at = NOW()`, key, raw)
	if err != nil {
		return fmt.Errorf("upsert classification: %w", err)
	}
	return nil
}

// UpsertResult stores the full per-paper outcome, including error results,
// for later review and export.
func (r *ClassificationRepo) UpsertResult(ctx context.Context, batchID, key string, res models.Result) error {
	raw, err := json.Marshal(res.Fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	_, err = r.db.Pool.Exec(ctx, `
INSERT INTO classifications (cache_key, batch_id, title, abstract, fields, status, error_detail, provider, model)
VALUES ($1, NULLIF($2,'')::uuid, NULLIF($3,''), NULLIF($4,''), $5, $6, NULLIF($7,''), NULLIF($8,''), NULLIF($9,''))
ON CONFLICT (cache_key)
DO UPDATE SET
  batch_id = EXCLUDED.batch_id,
  title = COALESCE(EXCLUDED.title, classifications.title),
  abstract = COALESCE(EXCLUDED.abstract, classifications.abstract),
  fields = EXCLUDED.fields,
  status = EXCLUDED.status,
  error_detail = EXCLUDED.error_detail,
  provider = COALESCE(EXCLUDED.provider, classifications.provider),
  model = COALESCE(EXCLUDED.model, classifications.model),
  updated_at = NOW()`,
		key, batchID, res.Title, res.Abstract, raw, res.Status, res.ErrorDetail, res.Provider, res.Model)
	if err != nil {
		return fmt.Errorf("upsert result: %w", err)
	}
	return nil
}
