package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MikeSquared-Agency/wisdom/internal/guard"
	"github.com/MikeSquared-Agency/wisdom/internal/masters"
	"github.com/MikeSquared-Agency/wisdom/internal/wisdom"
)

// SaveReflection writes a reflection and its commentary in one transaction.
func (s *Store) SaveReflection(ctx context.Context, ref *wisdom.Reflection) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO reflections (id, entry_id, language, fallback, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		ref.ID, ref.EntryID, string(ref.Language), ref.Fallback, ref.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reflection: %w", err)
	}

	batch := &pgx.Batch{}
	for i, c := range ref.Masters {
		batch.Queue(`
			INSERT INTO reflection_masters (reflection_id, position, master_id, name, content)
			VALUES ($1, $2, $3, $4, $5)`,
			ref.ID, i, c.ID, c.Name, c.Content,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert reflection masters: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetReflection loads a reflection by ID.
func (s *Store) GetReflection(ctx context.Context, id uuid.UUID) (*wisdom.Reflection, error) {
	var (
		ref  wisdom.Reflection
		lang string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, entry_id, language, fallback, created_at
		FROM reflections WHERE id = $1`, id,
	).Scan(&ref.ID, &ref.EntryID, &lang, &ref.Fallback, &ref.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query reflection: %w", err)
	}
	ref.Language = guard.ParseLanguage(lang)

	rows, err := s.pool.Query(ctx, `
		SELECT master_id, name, content
		FROM reflection_masters WHERE reflection_id = $1
		ORDER BY position`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("query reflection masters: %w", err)
	}
	defer rows.Close()

	ref.Masters = []masters.Commentary{}
	for rows.Next() {
		var c masters.Commentary
		if err := rows.Scan(&c.ID, &c.Name, &c.Content); err != nil {
			return nil, fmt.Errorf("scan reflection master: %w", err)
		}
		ref.Masters = append(ref.Masters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reflection masters: %w", err)
	}
	return &ref, nil
}
