package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumematch/pkg/skill"
)

// SkillRepository: каталог навыков в Postgres.
type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) (*SkillRepository, error) {
	r := &SkillRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SkillRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS skills (
	name TEXT PRIMARY KEY,
	synonyms TEXT[] NOT NULL DEFAULT '{}',
	category TEXT NOT NULL DEFAULT 'General',
	negative_guards TEXT[] NOT NULL DEFAULT '{}',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`)
	return err
}

// FetchAll returns every definition ordered by name.
func (r *SkillRepository) FetchAll(ctx context.Context) ([]skill.Definition, error) {
	rows, err := r.pool.Query(ctx, `
SELECT name, synonyms, category, negative_guards
FROM skills
ORDER BY name
`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", skill.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	var out []skill.Definition
	for rows.Next() {
		var d skill.Definition
		if err := rows.Scan(&d.Name, &d.Synonyms, &d.Category, &d.NegativeGuards); err != nil {
			return nil, fmt.Errorf("%w: %v", skill.ErrCatalogUnavailable, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", skill.ErrCatalogUnavailable, err)
	}
	return out, nil
}

func (r *SkillRepository) Upsert(ctx context.Context, d skill.Definition) error {
	if err := skill.Validate(d); err != nil {
		return err
	}
	d = skill.Canonical(d)
	_, err := r.pool.Exec(ctx, `
INSERT INTO skills (name, synonyms, category, negative_guards, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (name) DO UPDATE
SET synonyms = EXCLUDED.synonyms,
	category = EXCLUDED.category,
	negative_guards = EXCLUDED.negative_guards,
	updated_at = now()
`, d.Name, textArray(d.Synonyms), d.Category, textArray(d.NegativeGuards))
	return err
}

func (r *SkillRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE name = $1`, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return skill.ErrNotFound
	}
	return nil
}
