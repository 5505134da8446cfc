package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"charforge/internal/domain"
	"charforge/internal/repository"
)

const createCharactersTable = `
CREATE TABLE IF NOT EXISTS characters (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	race TEXT NOT NULL,
	gender TEXT NOT NULL,
	backstory TEXT NOT NULL DEFAULT '',
	stat_str INT NOT NULL DEFAULT 10,
	stat_dex INT NOT NULL DEFAULT 10,
	stat_con INT NOT NULL DEFAULT 10,
	stat_int INT NOT NULL DEFAULT 10,
	stat_wis INT NOT NULL DEFAULT 10,
	stat_cha INT NOT NULL DEFAULT 10,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_characters_user_id ON characters(user_id);
`

const characterColumns = `id, user_id, name, race, gender, backstory,
stat_str, stat_dex, stat_con, stat_int, stat_wis, stat_cha, created_at, updated_at`

type CharacterRepository struct {
	pool *pgxpool.Pool
}

func NewCharacterRepository(pool *pgxpool.Pool) repository.CharacterRepository {
	return &CharacterRepository{pool: pool}
}

func (r *CharacterRepository) Init(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createCharactersTable); err != nil {
		return fmt.Errorf("create characters table: %w", err)
	}
	return nil
}

func (r *CharacterRepository) Create(ctx context.Context, character *domain.Character, ownerID int64) (*domain.Character, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO characters (user_id, name, race, gender, backstory,
	stat_str, stat_dex, stat_con, stat_int, stat_wis, stat_cha)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING `+characterColumns,
		ownerID,
		character.Name,
		character.Race,
		character.Gender,
		character.Backstory,
		character.StatStr,
		character.StatDex,
		character.StatCon,
		character.StatInt,
		character.StatWis,
		character.StatCha,
	)
	return scanCharacter(row)
}

func (r *CharacterRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Character, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+characterColumns+`
FROM characters
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`,
		ownerID,
		repository.ListLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var characters []domain.Character
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		characters = append(characters, *character)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

func (r *CharacterRepository) Get(ctx context.Context, id, ownerID int64) (*domain.Character, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+characterColumns+`
FROM characters
WHERE id = $1 AND user_id = $2`,
		id,
		ownerID,
	)
	return scanCharacter(row)
}

func (r *CharacterRepository) Update(ctx context.Context, id, ownerID int64, update domain.CharacterUpdate) (*domain.Character, error) {
	if update.Empty() {
		// Nothing to change; hand back the current row without touching
		// updated_at.
		return r.Get(ctx, id, ownerID)
	}

	setClause, args := buildCharacterUpdate(update)
	args = append(args, id, ownerID)

	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
UPDATE characters
SET %s
WHERE id = $%d AND user_id = $%d
RETURNING `+characterColumns,
		setClause, len(args)-1, len(args)),
		args...,
	)
	return scanCharacter(row)
}

func (r *CharacterRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM characters WHERE id = $1 AND user_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("delete character: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// buildCharacterUpdate compiles the set fields of a partial update into a SET
// clause with positional args. updated_at is always refreshed when any field
// changes. The column set is fixed here; nothing is derived from request data.
func buildCharacterUpdate(update domain.CharacterUpdate) (string, []any) {
	var assignments []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Race != nil {
		add("race", *update.Race)
	}
	if update.Gender != nil {
		add("gender", *update.Gender)
	}
	if update.Backstory != nil {
		add("backstory", *update.Backstory)
	}
	if update.StatStr != nil {
		add("stat_str", *update.StatStr)
	}
	if update.StatDex != nil {
		add("stat_dex", *update.StatDex)
	}
	if update.StatCon != nil {
		add("stat_con", *update.StatCon)
	}
	if update.StatInt != nil {
		add("stat_int", *update.StatInt)
	}
	if update.StatWis != nil {
		add("stat_wis", *update.StatWis)
	}
	if update.StatCha != nil {
		add("stat_cha", *update.StatCha)
	}

	assignments = append(assignments, "updated_at = NOW()")
	return strings.Join(assignments, ", "), args
}

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var c domain.Character
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Race,
		&c.Gender,
		&c.Backstory,
		&c.StatStr,
		&c.StatDex,
		&c.StatCon,
		&c.StatInt,
		&c.StatWis,
		&c.StatCha,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("character: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan character: %w", err)
	}
	return &c, nil
}
