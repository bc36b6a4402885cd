package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/artem13815/resumematch/pkg/skill"
)

// SkillRepository: каталог навыков в SQLite.
type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) (*SkillRepository, error) {
	r := &SkillRepository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SkillRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS skills (
	name TEXT PRIMARY KEY,
	synonyms TEXT NOT NULL DEFAULT '[]',
	category TEXT NOT NULL DEFAULT 'General',
	negative_guards TEXT NOT NULL DEFAULT '[]',
	updated_at INTEGER NOT NULL
);
`)
	return err
}

func (r *SkillRepository) FetchAll(ctx context.Context) ([]skill.Definition, error) {
	rows, err := r.db.QueryContext(ctx, `
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
		var synonyms, guards string
		if err := rows.Scan(&d.Name, &synonyms, &d.Category, &guards); err != nil {
			return nil, fmt.Errorf("%w: %v", skill.ErrCatalogUnavailable, err)
		}
		if d.Synonyms, err = decodeList(synonyms); err != nil {
			return nil, fmt.Errorf("%w: skill %q: %v", skill.ErrCatalogUnavailable, d.Name, err)
		}
		if d.NegativeGuards, err = decodeList(guards); err != nil {
			return nil, fmt.Errorf("%w: skill %q: %v", skill.ErrCatalogUnavailable, d.Name, err)
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
	synonyms, err := encodeList(d.Synonyms)
	if err != nil {
		return err
	}
	guards, err := encodeList(d.NegativeGuards)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO skills (name, synonyms, category, negative_guards, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (name) DO UPDATE
SET synonyms = excluded.synonyms,
	category = excluded.category,
	negative_guards = excluded.negative_guards,
	updated_at = excluded.updated_at
`, d.Name, synonyms, d.Category, guards, time.Now().UnixNano())
	return err
}

func (r *SkillRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE name = ?`, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return skill.ErrNotFound
	}
	return nil
}
