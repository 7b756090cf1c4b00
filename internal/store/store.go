package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS reflections (
	id         UUID PRIMARY KEY,
	entry_id   TEXT NOT NULL,
	language   TEXT NOT NULL,
	fallback   BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS reflections_entry_id_idx ON reflections (entry_id);
CREATE TABLE IF NOT EXISTS reflection_masters (
	reflection_id UUID NOT NULL REFERENCES reflections (id) ON DELETE CASCADE,
	position      INT  NOT NULL,
	master_id     TEXT NOT NULL,
	name          TEXT NOT NULL,
	content       TEXT NOT NULL,
	PRIMARY KEY (reflection_id, position)
);`

// Migrate creates the reflection tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
