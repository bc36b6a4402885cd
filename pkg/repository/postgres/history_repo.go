package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumematch/pkg/analysis"
)

// HistoryRepository хранит результаты оценок в таблице match_history.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) (*HistoryRepository, error) {
	r := &HistoryRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *HistoryRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS match_history (
	id UUID PRIMARY KEY,
	filename TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	jd TEXT NOT NULL,
	matched TEXT[] NOT NULL DEFAULT '{}',
	missing TEXT[] NOT NULL DEFAULT '{}',
	score INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS match_history_created_at_idx ON match_history (created_at DESC);
`)
	return err
}

func (r *HistoryRepository) Create(ctx context.Context, rec analysis.Record) (analysis.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO match_history (id, filename, name, email, phone, skills, jd, matched, missing, score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, rec.ID, rec.Filename, rec.Name, rec.Email, rec.Phone, textArray(rec.Skills), rec.JD,
		textArray(rec.Matched), textArray(rec.Missing), rec.Score, rec.CreatedAt)
	if err != nil {
		return analysis.Record{}, err
	}
	return rec, nil
}

func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]analysis.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, filename, name, email, phone, skills, jd, matched, missing, score, created_at
FROM match_history
ORDER BY created_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []analysis.Record{}
	for rows.Next() {
		var rec analysis.Record
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.Name, &rec.Email, &rec.Phone, &rec.Skills,
			&rec.JD, &rec.Matched, &rec.Missing, &rec.Score, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
