package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resumematch/pkg/analysis"
)

// HistoryRepository: история оценок в SQLite. Списки навыков хранятся
// JSON-массивами, время создания в наносекундах Unix.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) (*HistoryRepository, error) {
	r := &HistoryRepository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *HistoryRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS match_history (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	skills TEXT NOT NULL DEFAULT '[]',
	jd TEXT NOT NULL,
	matched TEXT NOT NULL DEFAULT '[]',
	missing TEXT NOT NULL DEFAULT '[]',
	score INTEGER NOT NULL,
	created_at INTEGER NOT NULL
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
	skills, err := encodeList(rec.Skills)
	if err != nil {
		return analysis.Record{}, err
	}
	matched, err := encodeList(rec.Matched)
	if err != nil {
		return analysis.Record{}, err
	}
	missing, err := encodeList(rec.Missing)
	if err != nil {
		return analysis.Record{}, err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO match_history (id, filename, name, email, phone, skills, jd, matched, missing, score, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, rec.ID.String(), rec.Filename, rec.Name, rec.Email, rec.Phone, skills, rec.JD,
		matched, missing, rec.Score, rec.CreatedAt.UnixNano())
	if err != nil {
		return analysis.Record{}, err
	}
	return rec, nil
}

func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]analysis.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, filename, name, email, phone, skills, jd, matched, missing, score, created_at
FROM match_history
ORDER BY created_at DESC, rowid DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []analysis.Record{}
	for rows.Next() {
		var (
			rec                      analysis.Record
			id                       string
			skills, matched, missing string
			created                  int64
		)
		if err := rows.Scan(&id, &rec.Filename, &rec.Name, &rec.Email, &rec.Phone, &skills,
			&rec.JD, &matched, &missing, &rec.Score, &created); err != nil {
			return nil, err
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if rec.Skills, err = decodeList(skills); err != nil {
			return nil, err
		}
		if rec.Matched, err = decodeList(matched); err != nil {
			return nil, err
		}
		if rec.Missing, err = decodeList(missing); err != nil {
			return nil, err
		}
		rec.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func encodeList(s []string) (string, error) {
	if s == nil {
		s = []string{}
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func decodeList(s string) ([]string, error) {
	out := []string{}
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}
