package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMissingJobDescription: пустой текст вакансии в запросе на оценку.
	ErrMissingJobDescription = errors.New("job description is required")
	// ErrPersistence: результат посчитан, но запись в историю не сохранена.
	ErrPersistence = errors.New("match record was not persisted")
)

// Record: сохранённый результат одной оценки резюме относительно вакансии.
// Навыки хранятся по значению, без ссылок на каталог.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Skills    []string  `json:"skills"`
	JD        string    `json:"jd"`
	Matched   []string  `json:"matched"`
	Missing   []string  `json:"missing"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository: порт истории оценок.
type Repository interface {
	// Create stores the record and returns it with ID and CreatedAt assigned.
	Create(ctx context.Context, r Record) (Record, error)
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}

// SkillExtractor: порт поиска навыков каталога в тексте.
type SkillExtractor interface {
	Extract(text string) []string
}

// ResumeMeta: необязательные данные разобранного резюме для записи в историю.
type ResumeMeta struct {
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ScoreInput: запрос на оценку.
type ScoreInput struct {
	JobDescription string
	ResumeSkills   []string
	Resume         *ResumeMeta
}

// Result: посчитанная оценка. Persisted=false означает, что запись в историю
// не удалась, но сами цифры корректны.
type Result struct {
	ID        uuid.UUID `json:"id"`
	Score     int       `json:"score"`
	Matched   []string  `json:"matched"`
	Missing   []string  `json:"missing"`
	JDSkills  []string  `json:"jdSkills"`
	Persisted bool      `json:"persisted"`
}
