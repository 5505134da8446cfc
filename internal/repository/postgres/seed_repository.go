package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"charforge/internal/domain"
	"charforge/internal/repository"
)

const createSeedsTable = `
CREATE TABLE IF NOT EXISTS random_seeds (
	id BIGSERIAL PRIMARY KEY,
	category VARCHAR(50) NOT NULL,
	content TEXT NOT NULL,
	UNIQUE (category, content)
);
CREATE INDEX IF NOT EXISTS idx_random_seeds_category ON random_seeds(category);
`

type SeedRepository struct {
	pool *pgxpool.Pool
}

func NewSeedRepository(pool *pgxpool.Pool) repository.SeedRepository {
	return &SeedRepository{pool: pool}
}

func (r *SeedRepository) Init(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createSeedsTable); err != nil {
		return fmt.Errorf("create random_seeds table: %w", err)
	}
	return nil
}

func (r *SeedRepository) GetRandom(ctx context.Context, categories ...string) (string, error) {
	var content string
	err := r.pool.QueryRow(ctx, `
SELECT content
FROM random_seeds
WHERE category = ANY($1)
ORDER BY RANDOM()
LIMIT 1`,
		categories,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("seed categories %v: %w", categories, domain.ErrMissingSeedData)
		}
		return "", fmt.Errorf("random seed: %w", err)
	}
	return content, nil
}

func (r *SeedRepository) Insert(ctx context.Context, category, content string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
INSERT INTO random_seeds (category, content)
VALUES ($1, $2)
ON CONFLICT (category, content) DO NOTHING`,
		category,
		content,
	)
	if err != nil {
		return false, fmt.Errorf("insert seed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
