package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PostgresStore keeps documents in a single key/value table with a JSONB
// column. No migration tooling; the table is created on startup.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_documents (
		  key   TEXT PRIMARY KEY,
		  value JSONB NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	var raw []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM kv_documents WHERE key=$1`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (p *PostgresStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO kv_documents (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, raw)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
