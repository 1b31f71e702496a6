package storage

import (
	"context"
	"fmt"
)

// CallRecord is one audit row per remote classification attempt group.
type CallRecord struct {
	CallID    string
	BatchID   string
	Title     string
	Provider  string
	Model     string
	Status    string
	ErrorType string
}

type CallLogRepo struct {
	db *DB
}

func NewCallLogRepo(db *DB) *CallLogRepo {
	return &CallLogRepo{db: db}
}

func (r *CallLogRepo) Insert(ctx context.Context, rec CallRecord) error {
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO llm_calls(call_id, batch_id, title, provider_name, model, status, error_type)
VALUES (COALESCE(NULLIF($1,'')::uuid, gen_random_uuid()), NULLIF($2,'')::uuid, NULLIF($3,''), $4, $5, $6, NULLIF($7,''))`,
		rec.CallID, rec.BatchID, rec.Title, rec.Provider, rec.Model, rec.Status, rec.ErrorType)
	if err != nil {
		return fmt.Errorf("insert llm call: %w", err)
	}
	return nil
}
