package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"fieldscope/internal/models"
)

// SQLite persists classifications in a local file so repeated CLI runs over
// the same author list skip already-classified papers.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db %s: %w", path, err)
	}
	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS classifications (
	cache_key TEXT PRIMARY KEY,
	fields TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]models.FieldAssignment, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT fields FROM classifications WHERE cache_key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var fields []models.FieldAssignment
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, false, fmt.Errorf("decode cached fields: %w", err)
	}
	return fields, true, nil
}

func (s *SQLite) Put(ctx context.Context, key string, fields []models.FieldAssignment) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO classifications (cache_key, fields, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(cache_key) DO UPDATE SET fields = excluded.fields, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
